package fsutils

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFormatMB(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{"zero", 0, "0.00"},
		{"one_mb", BytesPerMB, "1.00"},
		{"two_mb", 2 * BytesPerMB, "2.00"},
		{"one_and_half", BytesPerMB + BytesPerMB/2, "1.50"},
		{"tiny", 1, "0.00"},
		{"rounds_up", BytesPerMB - 1, "1.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMB(tt.size))
		})
	}
}

func TestToMB(t *testing.T) {
	assert.Equal(t, 0.5, ToMB(BytesPerMB/2))
	assert.Equal(t, 3.0, ToMB(3*BytesPerMB))
}
