package key

import "testing"

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{'a', "a"},
		{'1', "1"},
		{Space, " "},
		{Escape, "escape"},
		{KeypadEnter, "kp-enter"},
		{Code(0x13f), "key(319)"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Code
	}{
		{"a", 'a'},
		{"escape", Escape},
		{"enter", Enter},
		{"lshift", LeftShift},
		{"nosuchkey", None},
	}
	for _, tt := range tests {
		if got := Lookup(tt.name); got != tt.want {
			t.Errorf("Lookup(%q) = %d, want %d", tt.name, int(got), int(tt.want))
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for code := range specialNames {
		if got := Lookup(code.String()); got != code {
			t.Errorf("Lookup(%q) = %d, want %d", code.String(), int(got), int(code))
		}
	}
}

func TestValid(t *testing.T) {
	if None.Valid() {
		t.Error("None should not be valid")
	}
	if !Escape.Valid() {
		t.Error("Escape should be valid")
	}
	if Code(MaxCode).Valid() {
		t.Error("MaxCode should not be valid")
	}
}
