package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vigilhub/attention-escalator/internal/domain"
)

// displayRequest is the JSON body posted to the notification relay.
type displayRequest struct {
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Icon           string   `json:"icon,omitempty"`
	Actions        []string `json:"actions,omitempty"`
	DismissAfterMS int64    `json:"dismiss_after_ms,omitempty"`
}

// WebhookNotifier delivers push notifications by POSTing to a relay
// endpoint that fans out to the user's devices. The relay has no prompt of
// its own: permission is granted exactly when a relay URL is configured,
// and RequestPermission re-reads that fact rather than caching it.
type WebhookNotifier struct {
	baseURL    string
	httpClient *http.Client
}

func NewWebhookNotifier(baseURL string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (w *WebhookNotifier) Available() bool {
	return w.baseURL != ""
}

func (w *WebhookNotifier) Permission() domain.PushPermission {
	if !w.Available() {
		return domain.PushDenied
	}
	return domain.PushGranted
}

func (w *WebhookNotifier) RequestPermission(_ context.Context) (domain.PushPermission, error) {
	if !w.Available() {
		return domain.PushDenied, domain.ErrPromptUnavailable
	}
	return domain.PushGranted, nil
}

// Display posts the notification to the relay and expects a 202 Accepted.
func (w *WebhookNotifier) Display(ctx context.Context, n Notification) error {
	if !w.Available() {
		return domain.ErrPromptUnavailable
	}

	body, err := json.Marshal(displayRequest{
		Title:          n.Title,
		Body:           n.Body,
		Icon:           n.Icon,
		Actions:        n.Actions,
		DismissAfterMS: n.DismissAfter.Milliseconds(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("unexpected relay status: %d", resp.StatusCode)
	}
	return nil
}

// compile-time check that WebhookNotifier implements Notifier
var _ Notifier = (*WebhookNotifier)(nil)
