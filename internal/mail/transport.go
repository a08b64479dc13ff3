package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Result is the delivery function's verdict for a single message. A failed
// send is a Result with Success false, not a transport error; errors are
// reserved for not reaching the function at all.
type Result struct {
	Success bool
	Detail  string
}

// Transport attempts delivery of one message with the given SMTP settings.
type Transport interface {
	Send(ctx context.Context, msg Message, smtp SMTPSettings) (Result, error)
}

type sendRequest struct {
	To      string       `json:"to"`
	Subject string       `json:"subject"`
	HTML    string       `json:"html"`
	SMTP    SMTPSettings `json:"smtp"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// FunctionClient invokes the out-of-process delivery function over HTTP.
type FunctionClient struct {
	url    string
	client *http.Client
}

// NewFunctionClient builds a transport pointing at the delivery function URL.
func NewFunctionClient(url string) *FunctionClient {
	return &FunctionClient{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send posts one message to the delivery function and decodes its verdict.
func (c *FunctionClient) Send(ctx context.Context, msg Message, smtp SMTPSettings) (Result, error) {
	payload, err := json.Marshal(sendRequest{
		To:      msg.Recipient,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		SMTP:    smtp,
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("invoke delivery function: %w", err)
	}
	defer resp.Body.Close()

	var decoded sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("decode delivery response (status %d): %w", resp.StatusCode, err)
	}

	if !decoded.Success {
		detail := decoded.Error
		if detail == "" {
			detail = fmt.Sprintf("delivery function returned status %d", resp.StatusCode)
		}
		return Result{Success: false, Detail: detail}, nil
	}

	return Result{Success: true, Detail: decoded.Message}, nil
}
