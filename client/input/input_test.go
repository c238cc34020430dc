package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTriggered(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		repeat   bool
		want     bool
	}{
		{name: "not pressed", duration: 0, repeat: true, want: false},
		{name: "first tick", duration: 1, want: true},
		{name: "first tick of a repeating key", duration: 1, repeat: true, want: true},
		{name: "held before the delay", duration: 2, repeat: true, want: false},
		{name: "just before the delay", duration: RepeatDelay - 1, repeat: true, want: false},
		{name: "delay reached", duration: RepeatDelay, repeat: true, want: true},
		{name: "between repeats", duration: RepeatDelay + 1, repeat: true, want: false},
		{name: "next repeat", duration: RepeatDelay + RepeatInterval, repeat: true, want: true},
		{name: "held without repeat", duration: RepeatDelay, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTriggered(tt.duration, tt.repeat))
		})
	}
}

func TestIsTriggered_heldKey(t *testing.T) {
	var fired []int
	for d := 1; d <= RepeatDelay+2*RepeatInterval; d++ {
		if IsTriggered(d, true) {
			fired = append(fired, d)
		}
	}
	assert.Equal(t, []int{1, RepeatDelay, RepeatDelay + RepeatInterval, RepeatDelay + 2*RepeatInterval}, fired)
}
