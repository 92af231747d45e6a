package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailerRelay(t *testing.T) {
	msg := ContactMessage{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "I would like to talk about a project.",
	}

	t.Run("sends the message to the relay API", func(t *testing.T) {
		var got resendEmailRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/emails", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		mailer := NewMailerWithBaseURL("test-key", "site@example.com", "owner@example.com", server.URL)
		require.NoError(t, mailer.Relay(msg))

		assert.Equal(t, []string{"owner@example.com"}, got.To)
		assert.Equal(t, "visitor@example.com", got.ReplyTo)
		assert.Contains(t, got.Text, msg.Message)
	})

	t.Run("API failure surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid recipient"})
		}))
		defer server.Close()

		mailer := NewMailerWithBaseURL("test-key", "site@example.com", "owner@example.com", server.URL)
		err := mailer.Relay(msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid recipient")
	})

	t.Run("unconfigured mailer refuses to relay", func(t *testing.T) {
		err := NewMailer("", "", "").Relay(msg)
		require.Error(t, err)
	})
}
