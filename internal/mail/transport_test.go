package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionClient_Success(t *testing.T) {
	var received sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Email sent successfully",
		})
	}))
	defer srv.Close()

	client := NewFunctionClient(srv.URL)
	msg := Message{Recipient: "a@x.com", Subject: "New signup", HTML: "Hi Ann"}
	smtp := SMTPSettings{Host: "mail.example.com", Port: 587, User: "bot@example.com", Pass: "secret"}

	res, err := client.Send(context.Background(), msg, smtp)
	require.NoError(t, err)
	assert.True(t, res.Success)

	assert.Equal(t, "a@x.com", received.To)
	assert.Equal(t, "New signup", received.Subject)
	assert.Equal(t, "Hi Ann", received.HTML)
	assert.Equal(t, "mail.example.com", received.SMTP.Host)
}

func TestFunctionClient_DeliveryFailureIsResultNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "Incomplete SMTP configuration",
		})
	}))
	defer srv.Close()

	client := NewFunctionClient(srv.URL)
	res, err := client.Send(context.Background(), Message{Recipient: "a@x.com"}, SMTPSettings{})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Incomplete SMTP configuration", res.Detail)
}

func TestFunctionClient_UnreachableFunction(t *testing.T) {
	client := NewFunctionClient("http://127.0.0.1:1/send")
	_, err := client.Send(context.Background(), Message{Recipient: "a@x.com"}, SMTPSettings{})
	assert.Error(t, err)
}
