// Package hud keeps the heads-up-display alert list.
package hud

import (
	"fmt"
	"time"

	"stardrift/internal/input"
)

// DefaultAlertTTL is how long an alert stays on screen.
const DefaultAlertTTL = 5 * time.Second

// Alert is a timed HUD message.
type Alert struct {
	Message string
	shown   time.Time
}

// HUD owns the alert list and a slot in the input consumer chain.
type HUD struct {
	alerts []Alert
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a HUD.
type Option func(*HUD)

// WithClock overrides the HUD's time source.
func WithClock(now func() time.Time) Option {
	return func(h *HUD) { h.now = now }
}

// WithAlertTTL sets how long alerts live.
func WithAlertTTL(ttl time.Duration) Option {
	return func(h *HUD) { h.ttl = ttl }
}

// New creates an empty HUD.
func New(opts ...Option) *HUD {
	h := &HUD{ttl: DefaultAlertTTL, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// AddAlert posts a formatted alert.
func (h *HUD) AddAlert(format string, args ...any) {
	h.alerts = append(h.alerts, Alert{
		Message: fmt.Sprintf(format, args...),
		shown:   h.now(),
	})
}

// Alerts returns the live alerts, oldest first.
func (h *HUD) Alerts() []Alert {
	out := make([]Alert, len(h.alerts))
	copy(out, h.alerts)
	return out
}

// Update expires alerts older than the TTL.
func (h *HUD) Update() {
	cutoff := h.now().Add(-h.ttl)
	live := h.alerts[:0]
	for _, a := range h.alerts {
		if a.shown.After(cutoff) {
			live = append(live, a)
		}
	}
	h.alerts = live
}

// HandleInput is the HUD's consumer-chain slot. The HUD claims no
// events; it exists in the chain so HUD-owned keys have a place to
// land when they grow bindings.
func (h *HUD) HandleInput(events []input.Event) []input.Event {
	return events
}
