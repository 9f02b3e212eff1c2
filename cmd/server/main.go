package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/portfolio/backend/internal/config"
	"github.com/portfolio/backend/internal/handler"
	"github.com/portfolio/backend/internal/logging"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/pkg/mailer"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("failed to load configuration", "error", err)
	}

	smtpMailer := mailer.NewSMTP(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
	})

	contactService := service.NewContactService(smtpMailer, service.Identity{
		FromEmail:  cfg.EmailUser,
		OwnerEmail: cfg.OwnerEmail,
		OwnerName:  cfg.OwnerName,
		OwnerTitle: cfg.OwnerTitle,
		Phone:      cfg.OwnerPhone,
	})

	h := handler.New(cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/send-email", contactHandler.SendEmail)
	mux.HandleFunc("POST /api/send-auto-reply", contactHandler.SendAutoReply)

	chain := h.CORS(handler.SecurityHeaders(handler.RequestID(handler.RequestLogger(mux))))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      chain,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
