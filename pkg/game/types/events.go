package types

// Action is a player input applied to the game.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateRight
	ActionRotateLeft
	ActionPause
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionHardDrop:
		return "hard-drop"
	case ActionRotateRight:
		return "rotate-right"
	case ActionRotateLeft:
		return "rotate-left"
	case ActionPause:
		return "pause"
	case ActionQuit:
		return "quit"
	}
	return "none"
}

// Events published by the game manager to its event queue.

type MovedEvent struct {
	Action Action
}

type RotatedEvent struct {
	Direction RotationDirection
}

type HardDroppedEvent struct {
	Rows int
}

type LockedEvent struct {
	Piece PieceType
}

type LinesClearedEvent struct {
	Lines  int
	Points int
}

type LevelUpEvent struct {
	Level int
}

type PausedEvent struct{}

type ResumedEvent struct{}

type GameOverEvent struct {
	Summary Summary
}
