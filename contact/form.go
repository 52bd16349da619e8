// Package contact holds the contact form state and its submission to
// the site's /api/contact endpoint.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// User facing messages.
const (
	ErrMissingFields = "Please fill out all fields."
	ErrInvalidEmail  = "Please enter a valid email address."
	ErrSendFailed    = "Sorry, something went wrong sending your message."
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether addr looks like an e-mail address.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Message is the request body of POST /api/contact.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Sender delivers a message. Any error counts as a failed send.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// HTTPSender posts messages as JSON to Endpoint.
type HTTPSender struct {
	Client   *http.Client
	Endpoint string
}

func NewHTTPSender(baseURL string) *HTTPSender {
	return &HTTPSender{
		Client:   http.DefaultClient,
		Endpoint: strings.TrimRight(baseURL, "/") + "/api/contact",
	}
}

func (s *HTTPSender) Send(ctx context.Context, m Message) error {
	body, err := json.Marshal(m)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("post contact: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("post contact: unexpected status %s", resp.Status)
	}
	return nil
}

// Form is the contact form. Fields are edited directly; Submit validates
// and sends them.
type Form struct {
	Name    string
	Email   string
	Message string

	Loading bool
	Success bool
	Error   string

	sender Sender
}

func NewForm(s Sender) *Form {
	return &Form{sender: s}
}

// Submit validates the form and sends it once. It is a no-op while a
// previous submission is still in flight. There is no retry.
func (f *Form) Submit(ctx context.Context) {
	if f.Loading {
		return
	}
	if f.Name == "" || f.Email == "" || f.Message == "" {
		f.Error = ErrMissingFields
		f.Success = false
		return
	}
	if !ValidEmail(f.Email) {
		f.Error = ErrInvalidEmail
		f.Success = false
		return
	}

	f.Loading = true
	f.Error = ""
	f.Success = false
	defer func() { f.Loading = false }()

	err := f.sender.Send(ctx, Message{Name: f.Name, Email: f.Email, Message: f.Message})
	if err != nil {
		f.Error = ErrSendFailed
		return
	}
	f.Success = true
	f.Name, f.Email, f.Message = "", "", ""
}
