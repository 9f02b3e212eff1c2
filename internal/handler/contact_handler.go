package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
	"github.com/portfolio/backend/internal/validate"
	"github.com/portfolio/backend/pkg/mailer"
)

// ContactHandler handles the two contact form endpoints: the owner
// notification and the visitor auto-reply.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// errorResponse is the JSON body for every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// autoReplyResponse is the JSON body for a successful auto-reply.
type autoReplyResponse struct {
	Message         string `json:"message"`
	ReferenceNumber string `json:"referenceNumber"`
}

// SendEmail handles POST /api/send-email.
// Validates the submission, then relays a plain-text notification to the
// site owner. Validation failures return 400 before any dispatch attempt.
func (h *ContactHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var sub model.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "Validation failed", Details: "Request body must be valid JSON"})
		return
	}

	if verr := validate.Submission(sub); verr != nil {
		slog.Info("notification rejected", "kind", verr.Kind, "details", verr.Details)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "Validation failed", Details: verr.Details})
		return
	}

	if err := h.contactService.SendNotification(r.Context(), sub); err != nil {
		slog.Error("notification dispatch failed", "error", err)
		category, details := classifySendError(err, "Error sending email")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: category, Details: details})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Email sent successfully"})
}

// SendAutoReply handles POST /api/send-auto-reply.
// Validates the submission, then sends the HTML confirmation to the
// submitter and returns the generated reference number.
func (h *ContactHandler) SendAutoReply(w http.ResponseWriter, r *http.Request) {
	var sub model.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "Validation failed", Details: "Request body must be valid JSON"})
		return
	}

	if verr := validate.Submission(sub); verr != nil {
		slog.Info("auto-reply rejected", "kind", verr.Kind, "details", verr.Details)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "Validation failed", Details: verr.Details})
		return
	}

	receipt, err := h.contactService.SendAutoReply(r.Context(), sub)
	if err != nil {
		slog.Error("auto-reply dispatch failed", "error", err)
		category, details := classifySendError(err, "Error sending auto-reply")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: category, Details: details})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(autoReplyResponse{
		Message:         "Auto-reply sent successfully",
		ReferenceNumber: receipt.ReferenceNumber,
	})
}

// classifySendError maps a dispatch failure to the user-facing category and
// display detail. Classified kinds get a fixed display string; only the
// generic category passes the diagnostic through. Failures that are not
// SendErrors at all fall back to the generic category with an opaque detail.
func classifySendError(err error, genericCategory string) (category, details string) {
	var se *mailer.SendError
	if !errors.As(err, &se) {
		return genericCategory, "Unknown error occurred"
	}
	switch se.Kind {
	case mailer.KindAuth:
		return "Authentication failed", "Email service authentication error. Please try again later."
	case mailer.KindConnection:
		return "Connection failed", "Unable to connect to email server. Please try again later."
	case mailer.KindTimeout:
		return "Timeout error", "Email server request timed out. Please try again."
	default:
		return genericCategory, se.Error()
	}
}
