package replay

import (
	"fmt"

	"github.com/cbodonnell/blockdrop/pkg/game"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/queue"
)

// MaxActionsPerFrame bounds the actions a single recorded tick may carry.
const MaxActionsPerFrame = 64

// Verify plays the recording on a new game and returns its summary.
// A valid recording ends the game on its last frame and never before.
func Verify(r *Recording) (*types.Summary, error) {
	if len(r.Frames) == 0 {
		return nil, fmt.Errorf("recording has no frames")
	}

	actionQueue := queue.NewInMemoryQueue(MaxActionsPerFrame)
	gm := game.NewGameManager(game.NewGameManagerOptions{
		ActionQueue: actionQueue,
		Seed:        r.Seed,
	})
	gm.Start()

	for i, f := range r.Frames {
		if gm.Status() == types.GameStatusOver {
			return nil, fmt.Errorf("recording continues after the game ended at frame %d", i)
		}
		if len(f.Actions) > MaxActionsPerFrame {
			return nil, fmt.Errorf("frame %d has %d actions", i, len(f.Actions))
		}

		for _, a := range f.Actions {
			if a == types.ActionNone || a > types.ActionQuit {
				return nil, fmt.Errorf("frame %d has unknown action %d", i, a)
			}
			if err := actionQueue.Enqueue(a); err != nil {
				return nil, fmt.Errorf("failed to enqueue action: %v", err)
			}
		}

		if err := gm.Tick(f.Delta()); err != nil {
			return nil, fmt.Errorf("failed to replay frame %d: %v", i, err)
		}
	}

	if gm.Status() != types.GameStatusOver {
		return nil, fmt.Errorf("recording ends before the game is over")
	}

	summary := gm.Summary()
	return &summary, nil
}
