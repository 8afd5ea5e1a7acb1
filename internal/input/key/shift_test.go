package key

import "testing"

func TestTypedShifted(t *testing.T) {
	tests := []struct {
		name  string
		code  Code
		shift bool
		want  Code
	}{
		{"lowercase letter", 'a', false, 'a'},
		{"uppercase letter", 'a', true, 'A'},
		{"digit unshifted", '1', false, '1'},
		{"digit one shifted", '1', true, '!'},
		{"digit zero shifted", '0', true, ')'},
		{"digit five shifted", '5', true, '%'},
		{"quote shifted", '\'', true, '"'},
		{"minus shifted", '-', true, '_'},
		{"slash shifted", '/', true, '?'},
		{"equals shifted", '=', true, '+'},
		{"backquote shifted", '`', true, '~'},
		{"punct unshifted", ',', false, ','},
		{"space shifted passes through", Space, true, Space},
		{"special key passes through", Left, true, Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Typed(tt.code, tt.shift); got != tt.want {
				t.Errorf("Typed(%q, %v) = %q, want %q", tt.code.String(), tt.shift, got.String(), tt.want.String())
			}
		})
	}
}

func TestTypedEnterAlwaysNewline(t *testing.T) {
	for _, code := range []Code{Enter, KeypadEnter} {
		for _, shift := range []bool{false, true} {
			if got := Typed(code, shift); got != '\n' {
				t.Errorf("Typed(%s, %v) = %d, want newline", code.String(), shift, int(got))
			}
		}
	}
}
