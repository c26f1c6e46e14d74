package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeNotes(t *testing.T) {
	tests := []struct {
		name  string
		shots int
		notes string
		want  string
	}{
		{"shots and notes", 2, "no sugar please", "extra shot x2; no sugar please"},
		{"shots only", 1, "", "extra shot x1"},
		{"notes only", 0, "oat milk", "oat milk"},
		{"empty", 0, "", ""},
		{"notes trimmed", 1, "  hot  ", "extra shot x1; hot"},
		{"shots clamped", 9, "", "extra shot x3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeNotes(tt.shots, tt.notes))
		})
	}
}

func TestParseExtraShots(t *testing.T) {
	tests := []struct {
		name      string
		notes     string
		wantShots int
		wantRest  string
	}{
		{"marker and notes", "extra shot x2; no sugar please", 2, "no sugar please"},
		{"marker only", "extra shot x1", 1, ""},
		{"no marker", "no sugar please", 0, "no sugar please"},
		{"empty", "", 0, ""},
		{"marker last", "iced; extra shot x3", 3, "iced"},
		{"case insensitive", "Extra Shot x2", 2, ""},
		{"compact spacing", "extrashot x1; decaf", 1, "decaf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shots, rest := ParseExtraShots(tt.notes)
			assert.Equal(t, tt.wantShots, shots)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestNotesRoundTrip(t *testing.T) {
	encoded := EncodeNotes(2, "no sugar please")
	shots, rest := ParseExtraShots(encoded)

	assert.Equal(t, 2, shots)
	assert.Equal(t, "no sugar please", rest)

	// Re-encoding the parsed values reproduces the original string.
	assert.Equal(t, encoded, EncodeNotes(shots, rest))
}
