package hud

import (
	"testing"
	"time"

	"stardrift/internal/input"
	"stardrift/internal/input/key"
)

func TestAlertsExpire(t *testing.T) {
	now := time.Unix(1000, 0)
	h := New(WithClock(func() time.Time { return now }), WithAlertTTL(2*time.Second))

	h.AddAlert("docking clamps %s", "released")
	now = now.Add(time.Second)
	h.AddAlert("shields at %d%%", 40)

	h.Update()
	if got := len(h.Alerts()); got != 2 {
		t.Fatalf("alerts = %d, want 2", got)
	}

	now = now.Add(1500 * time.Millisecond)
	h.Update()
	alerts := h.Alerts()
	if len(alerts) != 1 {
		t.Fatalf("alerts = %d, want 1 after expiry", len(alerts))
	}
	if alerts[0].Message != "shields at 40%" {
		t.Errorf("surviving alert = %q", alerts[0].Message)
	}

	now = now.Add(time.Hour)
	h.Update()
	if len(h.Alerts()) != 0 {
		t.Error("all alerts should expire")
	}
}

func TestHandleInputPassesThrough(t *testing.T) {
	h := New()
	batch := []input.Event{
		input.NewKeyEvent(key.StateDown, 'm'),
		input.NewMouseEvent(input.MouseMove, 1, 1),
	}
	rest := h.HandleInput(batch)
	if len(rest) != len(batch) {
		t.Errorf("HUD claimed events: %d of %d passed", len(rest), len(batch))
	}
}
