package classify

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestEntropy(t *testing.T) {
	t.Parallel()

	uniform := make([]byte, 256)
	for i := range uniform {
		uniform[i] = byte(i)
	}

	tests := []struct {
		name     string
		data     []byte
		expected float64
	}{
		{"empty", nil, 0.0},
		{"all same", bytes.Repeat([]byte{0x42}, 256), 0.0},
		{"uniform", uniform, 8.0},
		{"two values", bytes.Repeat([]byte{0x00, 0xFF}, 128), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Entropy(tt.data))
		})
	}
}
