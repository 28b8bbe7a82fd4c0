// Package appscript submits completed forms to the Apps Script web app
// endpoints that append rows to the backing spreadsheet.
package appscript

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

// statusSuccess is the only status value the endpoint treats as accepted.
const statusSuccess = "SUCCESS"

// SubmissionError carries the server-provided failure message so it can be
// surfaced to the user verbatim.
type SubmissionError struct {
	Message string
}

func (e *SubmissionError) Error() string {
	return e.Message
}

type result struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	// Apps Script cold starts are slow, so the write timeout is generous.
	return &Client{httpClient: &http.Client{Timeout: 60 * time.Second}}
}

// Submit posts fields as multipart form data to endpoint. Photos travel as
// data-URL string fields like every other value. A non-SUCCESS status
// returns a *SubmissionError with the server's message.
func (c *Client) Submit(ctx context.Context, endpoint string, fields map[string]string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to encode form field %q: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return fmt.Errorf("failed to build submission request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send submission: %w", err)
	}
	defer resp.Body.Close()

	var res result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("failed to decode submission response: %w", err)
	}

	if res.Status != statusSuccess {
		message := res.Message
		if message == "" {
			message = "Terjadi kesalahan pada server."
		}
		return &SubmissionError{Message: message}
	}
	return nil
}
