package replay

import (
	"testing"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/game"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/queue"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playGame plays a seeded game to the end, cycling through the given actions
// one per tick, and returns the recording and the final summary.
func playGame(t *testing.T, seed uint64, actions []types.Action) (*Recording, types.Summary) {
	actionQueue := queue.NewInMemoryQueue(8)
	recorder := NewRecorder(seed)
	gm := game.NewGameManager(game.NewGameManagerOptions{
		ActionQueue: actionQueue,
		Recorder:    recorder,
		Seed:        seed,
	})
	gm.Start()

	deltas := []time.Duration{16666666 * time.Nanosecond, 17 * time.Millisecond, 250 * time.Millisecond}
	for i := 0; gm.Status() != types.GameStatusOver; i++ {
		require.Less(t, i, 100000, "game did not end")
		require.NoError(t, actionQueue.Enqueue(actions[i%len(actions)]))
		require.NoError(t, gm.Tick(deltas[i%len(deltas)]))
	}

	return recorder.Recording(), gm.Summary()
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(99)
	actions := []types.Action{types.ActionLeft}
	r.Record(1500*time.Microsecond, actions)
	r.Record(time.Millisecond, nil)
	actions[0] = types.ActionRight

	rec := r.Recording()
	assert.Equal(t, uint64(99), rec.Seed)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, []Frame{
		{DeltaUs: 1500, Actions: []types.Action{types.ActionLeft}},
		{DeltaUs: 1000},
	}, rec.Frames)
	assert.Equal(t, 2500*time.Microsecond, rec.Duration())
}

func TestEncodeDecode(t *testing.T) {
	rec, _ := playGame(t, 1, []types.Action{types.ActionRotateRight, types.ActionLeft, types.ActionSoftDrop, types.ActionRight})

	b, err := Encode(rec)
	require.NoError(t, err)

	decoded, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, decoded.ID)
	assert.Equal(t, rec.Seed, decoded.Seed)
	require.Len(t, decoded.Frames, len(rec.Frames))
	for i := range rec.Frames {
		assert.Equal(t, rec.Frames[i].DeltaUs, decoded.Frames[i].DeltaUs, "frame %d", i)
		assert.Equal(t, rec.Frames[i].Actions, decoded.Frames[i].Actions, "frame %d", i)
	}
}

func TestDecode_invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not compressed", data: []byte("definitely not a replay")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestDeserializeRecordingFlatbuffer_malformed(t *testing.T) {
	_, err := DeserializeRecordingFlatbuffer([]byte{0xff, 0xff, 0xff, 0x7f, 0, 0, 0, 0})
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	rec, summary := playGame(t, 2024, []types.Action{types.ActionHardDrop, types.ActionLeft, types.ActionRight, types.ActionRotateLeft})

	b, err := Encode(rec)
	require.NoError(t, err)
	decoded, err := Decode(b)
	require.NoError(t, err)

	got, err := Verify(decoded)
	require.NoError(t, err)
	assert.Equal(t, summary.Account, got.Account)
	assert.Equal(t, summary.Pieces, got.Pieces)
}

func TestVerify_rejects(t *testing.T) {
	rec, _ := playGame(t, 7, []types.Action{types.ActionHardDrop})

	tests := []struct {
		name   string
		tamper func(r *Recording)
	}{
		{
			name:   "no frames",
			tamper: func(r *Recording) { r.Frames = nil },
		},
		{
			name:   "truncated",
			tamper: func(r *Recording) { r.Frames = r.Frames[:len(r.Frames)-1] },
		},
		{
			name: "extra frames",
			tamper: func(r *Recording) {
				r.Frames = append(r.Frames, Frame{DeltaUs: 1000})
			},
		},
		{
			name: "unknown action",
			tamper: func(r *Recording) {
				r.Frames[0].Actions = []types.Action{types.Action(200)}
			},
		},
		{
			name: "too many actions",
			tamper: func(r *Recording) {
				r.Frames[0].Actions = make([]types.Action, MaxActionsPerFrame+1)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := &Recording{ID: rec.ID, Seed: rec.Seed, Frames: make([]Frame, len(rec.Frames))}
			copy(tampered.Frames, rec.Frames)
			tt.tamper(tampered)

			_, err := Verify(tampered)
			assert.Error(t, err)
		})
	}
}
