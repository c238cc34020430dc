package replay

import (
	"math"
	"sync"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/google/uuid"
)

// Frame is a single tick of a game: the time since the previous tick
// and the actions applied during it.
type Frame struct {
	DeltaUs uint32
	Actions []types.Action
}

// Delta returns the tick duration.
func (f Frame) Delta() time.Duration {
	return time.Duration(f.DeltaUs) * time.Microsecond
}

// Recording holds everything needed to replay a game.
type Recording struct {
	ID     uuid.UUID
	Seed   uint64
	Frames []Frame
}

// Duration returns the total play time of the recording.
func (r *Recording) Duration() time.Duration {
	var d time.Duration
	for _, f := range r.Frames {
		d += f.Delta()
	}
	return d
}

// Recorder captures the ticks of a game. It implements game.Recorder.
type Recorder struct {
	lock      sync.Mutex
	recording *Recording
}

func NewRecorder(seed uint64) *Recorder {
	return &Recorder{
		recording: &Recording{
			ID:     uuid.New(),
			Seed:   seed,
			Frames: make([]Frame, 0, 1024),
		},
	}
}

func (r *Recorder) Record(delta time.Duration, actions []types.Action) {
	us := delta.Microseconds()
	if us < 0 {
		us = 0
	}
	if us > math.MaxUint32 {
		us = math.MaxUint32
	}

	frame := Frame{DeltaUs: uint32(us)}
	if len(actions) > 0 {
		frame.Actions = make([]types.Action, len(actions))
		copy(frame.Actions, actions)
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	r.recording.Frames = append(r.recording.Frames, frame)
}

// Recording returns a copy of the frames recorded so far.
func (r *Recorder) Recording() *Recording {
	r.lock.Lock()
	defer r.lock.Unlock()

	c := &Recording{
		ID:     r.recording.ID,
		Seed:   r.recording.Seed,
		Frames: make([]Frame, len(r.recording.Frames)),
	}
	copy(c.Frames, r.recording.Frames)
	return c
}
