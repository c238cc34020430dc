package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/queue"
)

// Recorder receives every tick applied to a game, in order.
type Recorder interface {
	Record(delta time.Duration, actions []types.Action)
}

// GameManager runs a single game: it applies queued player actions,
// drives gravity from the elapsed time and keeps score.
type GameManager struct {
	actionQueue queue.Queue
	eventQueue  queue.Queue
	recorder    Recorder
	seed        uint64

	board   *Board
	stats   *Stats
	account types.Account
	status  types.GameStatus
	quit    bool

	// interval is the current gravity interval, elapsed the time since the last drop
	interval time.Duration
	elapsed  time.Duration
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	// ActionQueue holds pending player actions
	ActionQueue queue.Queue
	// EventQueue receives game events, it is optional
	EventQueue queue.Queue
	// Recorder receives every tick, it is optional
	Recorder Recorder
	// Seed seeds the piece randomizer
	Seed uint64
	// Randomizer overrides the seeded randomizer when set
	Randomizer Randomizer
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	randomizer := opts.Randomizer
	if randomizer == nil {
		randomizer = NewUniformRandomizer(opts.Seed)
	}
	stats := NewStats()
	return &GameManager{
		actionQueue: opts.ActionQueue,
		eventQueue:  opts.EventQueue,
		recorder:    opts.Recorder,
		seed:        opts.Seed,
		board:       NewBoard(randomizer, stats),
		stats:       stats,
		status:      types.GameStatusIdle,
	}
}

// Start resets the account and the board and starts playing.
func (gm *GameManager) Start() {
	gm.account = types.Account{}
	gm.board.Reset()
	gm.interval = constants.LevelInterval(gm.account.Level)
	gm.elapsed = 0
	gm.quit = false
	gm.status = types.GameStatusPlaying
	log.Debug("Game started with seed %d", gm.seed)
}

// Tick runs one iteration of the game loop: pending actions are applied,
// then gravity drops the active piece once more than the level interval
// has elapsed since the previous drop.
func (gm *GameManager) Tick(delta time.Duration) error {
	delta = delta.Truncate(time.Microsecond)

	actions, err := gm.readActions()
	if err != nil {
		return fmt.Errorf("failed to read actions: %v", err)
	}

	if gm.recorder != nil && (gm.status == types.GameStatusPlaying || gm.status == types.GameStatusPaused) {
		gm.recorder.Record(delta, actions)
	}

	for _, action := range actions {
		gm.Apply(action)
	}

	if gm.status != types.GameStatusPlaying {
		return nil
	}

	gm.elapsed += delta
	if gm.elapsed > gm.interval {
		gm.elapsed = 0
		gm.drop()
	}

	return nil
}

func (gm *GameManager) readActions() ([]types.Action, error) {
	if gm.actionQueue == nil {
		return nil, nil
	}
	pending, err := gm.actionQueue.ReadAllMessages()
	if err != nil {
		return nil, err
	}
	actions := make([]types.Action, 0, len(pending))
	for _, item := range pending {
		action, ok := item.(types.Action)
		if !ok {
			log.Error("Unhandled action type: %T", item)
			continue
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// Apply applies a single player action.
func (gm *GameManager) Apply(action types.Action) {
	switch gm.status {
	case types.GameStatusPaused:
		switch action {
		case types.ActionPause:
			gm.status = types.GameStatusPlaying
			gm.publish(&types.ResumedEvent{})
		case types.ActionQuit:
			gm.quit = true
			gm.gameOver()
		}
		return
	case types.GameStatusPlaying:
	default:
		return
	}

	piece := gm.board.Piece()
	switch action {
	case types.ActionPause:
		gm.status = types.GameStatusPaused
		gm.publish(&types.PausedEvent{})
	case types.ActionQuit:
		gm.quit = true
		gm.gameOver()
	case types.ActionLeft, types.ActionRight:
		dx := -1
		if action == types.ActionRight {
			dx = 1
		}
		if gm.tryMove(piece, piece.Moved(dx, 0)) {
			gm.publish(&types.MovedEvent{Action: action})
		}
	case types.ActionSoftDrop:
		if gm.tryMove(piece, piece.Moved(0, 1)) {
			gm.account.Score += constants.PointsSoftDrop
			gm.publish(&types.MovedEvent{Action: action})
		}
	case types.ActionHardDrop:
		rows := 0
		for gm.tryMove(piece, piece.Moved(0, 1)) {
			gm.account.Score += constants.PointsHardDrop
			rows++
		}
		piece.HardDrop()
		gm.publish(&types.HardDroppedEvent{Rows: rows})
	case types.ActionRotateRight, types.ActionRotateLeft:
		dir := types.RotationRight
		if action == types.ActionRotateLeft {
			dir = types.RotationLeft
		}
		if gm.tryMove(piece, piece.Rotated(dir)) {
			gm.publish(&types.RotatedEvent{Direction: dir})
		}
	default:
		log.Warn("Unhandled action: %v", action)
	}
}

// tryMove moves the piece to the candidate when it is valid.
// A hard dropped piece never moves again.
func (gm *GameManager) tryMove(piece *types.Piece, candidate *types.Piece) bool {
	if piece.HardDropped || !gm.board.Valid(candidate) {
		return false
	}
	piece.Move(candidate)
	return true
}

// drop runs one gravity step and scores any cleared lines.
func (gm *GameManager) drop() {
	result := gm.board.Drop()
	if result.Moved {
		return
	}

	gm.publish(&types.LockedEvent{Piece: result.Locked})
	if result.Lines > 0 {
		gm.clearedLines(result.Lines)
	}

	if result.GameOver {
		gm.gameOver()
	}
}

func (gm *GameManager) clearedLines(lines int) {
	points := (gm.account.Level + 1) * constants.LinesClearedPoints(lines)
	gm.account.Score += points
	gm.account.Lines += lines
	gm.publish(&types.LinesClearedEvent{Lines: lines, Points: points})

	if gm.account.Lines >= constants.LinesPerLevel {
		gm.account.Level++
		gm.account.Lines -= constants.LinesPerLevel
		gm.interval = constants.LevelInterval(gm.account.Level)
		log.Debug("Level up to %d, drop interval %v", gm.account.Level, gm.interval)
		gm.publish(&types.LevelUpEvent{Level: gm.account.Level})
	}
}

func (gm *GameManager) gameOver() {
	gm.status = types.GameStatusOver
	summary := gm.Summary()
	log.Info("Game over with score %d at level %d", summary.Account.Score, summary.Account.Level)
	gm.publish(&types.GameOverEvent{Summary: summary})
}

func (gm *GameManager) publish(event interface{}) {
	if gm.eventQueue == nil {
		return
	}
	if err := gm.eventQueue.Enqueue(event); err != nil {
		log.Warn("Failed to publish %T: %v", event, err)
	}
}

// State returns a copy of the current game state.
func (gm *GameManager) State() *types.GameState {
	state := &types.GameState{
		Grid:    gm.board.Grid().Copy(),
		Account: gm.account,
		Status:  gm.status,
		Stats:   gm.stats.Map(),
	}
	if piece := gm.board.Piece(); piece != nil {
		state.Piece = piece.Copy()
	}
	if next := gm.board.Next(); next != nil {
		state.Next = next.Copy()
	}
	return state
}

func (gm *GameManager) Status() types.GameStatus {
	return gm.status
}

func (gm *GameManager) Account() types.Account {
	return gm.account
}

func (gm *GameManager) Seed() uint64 {
	return gm.seed
}

// Interval returns the current gravity interval.
func (gm *GameManager) Interval() time.Duration {
	return gm.interval
}

// Summary describes the game so far.
func (gm *GameManager) Summary() types.Summary {
	return types.Summary{
		Account: gm.account,
		Pieces:  gm.stats.Total(),
		Stats:   gm.stats.Map(),
		Quit:    gm.quit,
	}
}
