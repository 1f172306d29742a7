package models

import "testing"

func TestDeriveAccessCode(t *testing.T) {
	tests := []struct {
		rgm  string
		want string
	}{
		{rgm: "123456789", want: "6789"},
		{rgm: "98765", want: "8765"},
		{rgm: "1234", want: "1234"},
		{rgm: "123", want: "123"},
		{rgm: "7", want: "7"},
		{rgm: "", want: ""},
	}

	for _, tt := range tests {
		if got := DeriveAccessCode(tt.rgm); got != tt.want {
			t.Errorf("DeriveAccessCode(%q) = %q, want %q", tt.rgm, got, tt.want)
		}
	}
}
