package service

import (
	"html/template"
	"strings"
)

// autoReplyData feeds the auto-reply HTML template. Name and MessagePreview
// are already escaped by the sanitizer for their embedding contexts, so they
// are typed template.HTML to keep the template engine from escaping them a
// second time. All other fields are trusted configuration or generated
// values and go through normal template escaping.
type autoReplyData struct {
	Name            template.HTML
	MessagePreview  template.HTML
	ReferenceNumber string
	Date            string
	OwnerName       string
	OwnerTitle      string
	ContactEmail    string
	Phone           string
}

// renderAutoReply produces the complete HTML document for the visitor
// confirmation email.
func renderAutoReply(data autoReplyData) (string, error) {
	var b strings.Builder
	if err := autoReplyTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

var autoReplyTmpl = template.Must(template.New("autoreply").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Message Received - {{.OwnerName}}</title>
    <style>
        body {
            font-family: 'JetBrains Mono', monospace;
            background-color: #f5f5f5;
            margin: 0;
            padding: 20px;
            line-height: 1.6;
        }

        .email-container {
            max-width: 600px;
            margin: 0 auto;
            background-color: #ffffff;
            border-radius: 12px;
            overflow: hidden;
            box-shadow: 0 4px 20px rgba(0, 0, 0, 0.1);
        }

        .header {
            background: linear-gradient(135deg, #1c1c22 0%, #00ff99 100%);
            color: white;
            padding: 30px;
            text-align: center;
        }

        .header h1 {
            margin: 0;
            font-size: 28px;
            font-weight: 700;
            letter-spacing: -0.5px;
        }

        .content {
            padding: 40px 30px;
            color: #1c1c22;
        }

        .greeting {
            font-size: 18px;
            margin-bottom: 20px;
            color: #1c1c22;
        }

        .message-box {
            background-color: #f8f9fa;
            border-left: 4px solid #00ff99;
            padding: 20px;
            margin: 25px 0;
            border-radius: 8px;
        }

        .message-box h3 {
            color: #00ff99;
            margin: 0 0 15px 0;
            font-size: 16px;
            font-weight: 600;
        }

        .reference-info {
            background-color: #f0f8ff;
            border: 1px solid #e0e7ff;
            padding: 15px;
            margin: 20px 0;
            border-radius: 8px;
            text-align: center;
        }

        .reference-number {
            font-size: 18px;
            font-weight: 700;
            color: #00ff99;
            margin-bottom: 5px;
        }

        .date-info {
            font-size: 14px;
            color: #666;
        }

        .next-steps {
            margin: 30px 0;
        }

        .next-steps h3 {
            color: #1c1c22;
            font-size: 18px;
            margin-bottom: 15px;
        }

        .next-steps ul {
            margin: 0;
            padding-left: 20px;
        }

        .next-steps li {
            margin-bottom: 8px;
            color: #1c1c22;
        }

        .closing {
            margin-top: 30px;
            font-style: italic;
            color: #666;
        }

        .signature {
            margin-top: 20px;
            font-weight: 600;
            color: #1c1c22;
        }

        .separator {
            border-top: 1px solid #e0e0e0;
            margin: 30px 0;
        }

        .disclaimer {
            font-size: 12px;
            color: #999;
            margin: 20px 30px 30px 30px;
            padding: 15px;
            font-style: italic;
            text-align: center;
        }

        @media (max-width: 600px) {
            .email-container {
                margin: 10px;
            }

            .header, .content {
                padding: 20px;
            }
        }
    </style>
</head>
<body>
    <div class="email-container">
        <div class="header">
            <h1>Message Received</h1>
        </div>

        <div class="content">
            <div class="greeting">
                Dear {{.Name}},
            </div>

            <p>Thank you for reaching out! I've successfully received your message and I'm excited to connect with you.</p>

            <div class="message-box">
                <h3>&#128231; Your Message Details:</h3>
                <p><strong>Subject:</strong> Portfolio Contact Form Inquiry</p>
                <p><strong>Message:</strong> {{.MessagePreview}}</p>
            </div>

            <div class="reference-info">
                <div class="reference-number">Reference #{{.ReferenceNumber}}</div>
                <div class="date-info">Received on {{.Date}}</div>
            </div>

            <div class="next-steps">
                <h3>&#128640; What happens next?</h3>
                <ul>
                    <li>I'll review your message within 24 hours</li>
                    <li>You'll receive a personalized response via email</li>
                    <li>If needed, we can schedule a call to discuss your project</li>
                    <li>I'm ready to help bring your ideas to life!</li>
                </ul>
            </div>

            <div class="closing">
                <p>I appreciate your interest in working together and look forward to collaborating with you.</p>
            </div>

            <div class="signature">
                Best regards,<br>
                {{.OwnerName}}<br>
                <em>{{.OwnerTitle}}</em>
            </div>
        </div>

        <div class="separator"></div>

        <div class="disclaimer">
            This is an automated message. Please do not reply to this email. For assistance, please contact us at {{.ContactEmail}}{{if .Phone}} or call {{.Phone}}{{end}}
        </div>
    </div>
</body>
</html>
`))
