package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/email-otp-api/internal/config"
)

// Sender delivers verification codes through the EmailJS REST API.
// EmailJS fills a pre-configured template with template_params, so the
// service never builds email bodies itself.
type Sender struct {
	apiURL     string
	serviceID  string
	templateID string
	userID     string
	httpClient *http.Client
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{
		apiURL:     cfg.EmailJSAPIURL,
		serviceID:  cfg.EmailJSServiceID,
		templateID: cfg.EmailJSTemplateID,
		userID:     cfg.EmailJSUserID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sendPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts the code to EmailJS. Any non-200 response counts as a failed
// delivery; retries are the caller's concern.
func (s *Sender) Send(ctx context.Context, toEmail, code string) error {
	body, err := json.Marshal(sendPayload{
		ServiceID:  s.serviceID,
		TemplateID: s.templateID,
		UserID:     s.userID,
		TemplateParams: map[string]string{
			"to_email": toEmail,
			"code":     code,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal emailjs payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs responded %d: %s", resp.StatusCode, msg)
	}
	return nil
}
