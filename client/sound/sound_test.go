package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		name        string
		notes       []Note
		sampleRate  int
		wantSamples int
	}{
		{name: "no notes", sampleRate: 8000, wantSamples: 0},
		{
			name:        "single note",
			notes:       []Note{{Frequency: 1000, Duration: 20 * time.Millisecond}},
			sampleRate:  8000,
			wantSamples: 160,
		},
		{
			name: "notes are concatenated",
			notes: []Note{
				{Frequency: 1000, Duration: 20 * time.Millisecond},
				{Frequency: 500, Duration: 50 * time.Millisecond},
			},
			sampleRate:  8000,
			wantSamples: 560,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Synthesize(tt.notes, tt.sampleRate)
			// two 16-bit channels per sample
			assert.Len(t, b, tt.wantSamples*4)
		})
	}
}

func TestSynthesize_waveform(t *testing.T) {
	b := Synthesize([]Note{{Frequency: 1000, Duration: 20 * time.Millisecond}}, 8000)
	require.Len(t, b, 160*4)

	sample := func(i int) (int16, int16) {
		left := int16(binary.LittleEndian.Uint16(b[i*4:]))
		right := int16(binary.LittleEndian.Uint16(b[i*4+2:]))
		return left, right
	}

	for i := 0; i < 160; i++ {
		left, right := sample(i)
		require.Equal(t, left, right, "sample %d", i)
	}

	// eight samples per period, high for the first half
	first, _ := sample(0)
	assert.Greater(t, first, int16(0))
	low, _ := sample(4)
	assert.Less(t, low, int16(0))

	// the note fades out
	last, _ := sample(159)
	assert.Less(t, abs(last), abs(first)/10)
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
