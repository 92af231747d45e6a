package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultResendURL = "https://api.resend.com"

// ContactMessage is a visitor message submitted from the contact section.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10"`
}

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// resendErrorResponse represents an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer relays contact messages to the site owner through the Resend API.
type Mailer struct {
	apiKey  string
	from    string
	to      string
	baseURL string
	client  *http.Client
}

func NewMailer(apiKey, from, to string) Mailer {
	return Mailer{
		apiKey:  apiKey,
		from:    from,
		to:      to,
		baseURL: defaultResendURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// NewMailerWithBaseURL points the mailer at an alternative API endpoint.
func NewMailerWithBaseURL(apiKey, from, to, baseURL string) Mailer {
	m := NewMailer(apiKey, from, to)
	m.baseURL = baseURL
	return m
}

// Configured reports whether relay credentials were provided.
func (m Mailer) Configured() bool {
	return m.apiKey != "" && m.from != "" && m.to != ""
}

// Relay forwards a contact message to the configured recipient.
func (m Mailer) Relay(msg ContactMessage) error {
	if !m.Configured() {
		return fmt.Errorf("contact mailer is not configured")
	}

	payload := resendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Portfolio contact from %s", msg.Name),
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling contact email: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building contact email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var apiErr resendErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("resend API returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	log.Debug().Str("from", msg.Email).Msg("Contact message relayed")
	return nil
}
