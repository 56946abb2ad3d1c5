package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPMailerPostsMessage(t *testing.T) {
	var got sendRequest
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	mailer := NewHTTPMailer(server.URL, "api-key", "noreply@jobboard.test")
	if err := mailer.Send(context.Background(), "a@b.test", "Hello", "<p>Hi</p>"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.From != "noreply@jobboard.test" || got.To != "a@b.test" || got.Subject != "Hello" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if auth != "Bearer api-key" {
		t.Fatalf("expected bearer auth, got %q", auth)
	}
}

func TestHTTPMailerSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	mailer := NewHTTPMailer(server.URL, "", "noreply@jobboard.test")
	if err := mailer.Send(context.Background(), "a@b.test", "Hello", "body"); err == nil {
		t.Fatalf("expected an error for 502 response")
	}
}

func TestHTTPMailerRequiresRecipient(t *testing.T) {
	mailer := NewHTTPMailer("http://mail.invalid", "", "noreply@jobboard.test")
	if err := mailer.Send(context.Background(), " ", "Hello", "body"); err == nil {
		t.Fatalf("expected an error for blank recipient")
	}
}
