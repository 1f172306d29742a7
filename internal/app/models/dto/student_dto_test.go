package dto

import (
	"encoding/json"
	"testing"
)

func TestRGMAcceptsStringAndNumber(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    RGM
		wantErr bool
	}{
		{name: "string", payload: `{"rgm": "123456789"}`, want: RGM("123456789")},
		{name: "number", payload: `{"rgm": 123456789}`, want: RGM("123456789")},
		{name: "boolean", payload: `{"rgm": true}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				RGM RGM `json:"rgm"`
			}
			err := json.Unmarshal([]byte(tt.payload), &body)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an unmarshal error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if body.RGM != tt.want {
				t.Errorf("rgm = %q, want %q", body.RGM, tt.want)
			}
		})
	}
}
