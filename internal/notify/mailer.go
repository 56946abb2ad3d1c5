package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPMailer delivers mail through a JSON-over-HTTP mail API.
type HTTPMailer struct {
	client *resty.Client
	from   string
}

// NewHTTPMailer constructs a mailer against the given API base URL.
func NewHTTPMailer(apiURL, apiKey, from string) *HTTPMailer {
	client := resty.New().
		SetBaseURL(strings.TrimRight(apiURL, "/")).
		SetAuthToken(apiKey).
		SetTimeout(3 * time.Second)
	return &HTTPMailer{client: client, from: from}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send posts one message to the mail API.
func (m *HTTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if strings.TrimSpace(to) == "" {
		return errors.New("recipient is required")
	}
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(sendRequest{From: m.from, To: to, Subject: subject, HTML: htmlBody}).
		Post("/send")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("mail api status %d", resp.StatusCode())
	}
	return nil
}
