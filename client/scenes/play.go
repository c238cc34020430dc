package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/blockdrop/client/input"
	"github.com/cbodonnell/blockdrop/client/objects"
	"github.com/cbodonnell/blockdrop/client/sound"
	"github.com/cbodonnell/blockdrop/client/spritesheets"
	"github.com/cbodonnell/blockdrop/pkg/game"
	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/queue"
	"github.com/cbodonnell/blockdrop/pkg/replay"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// ActionQueueSize bounds the actions buffered between two ticks
	ActionQueueSize = 64
	// EventQueueSize bounds the events buffered between two ticks
	EventQueueSize = 256
)

var (
	pointsColor  = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	levelUpColor = color.RGBA{R: 120, G: 255, B: 160, A: 255}
)

// PlayScene runs a single game. Keyboard input is queued as actions and
// every update advances the game by one tick of ebiten's fixed time step.
type PlayScene struct {
	*BaseScene

	gameManager *game.GameManager
	actionQueue queue.Queue
	eventQueue  queue.Queue
	recorder    *replay.Recorder
	sound       *sound.Player
	sheet       *spritesheets.BlockSheet
	state       *types.GameState
	over        *types.Summary
	effects     int

	onGameOver func(summary types.Summary, recording *replay.Recording)
}

type PlaySceneOptions struct {
	// Seed seeds the piece randomizer
	Seed uint64
	// Sound plays the sound effects of game events
	Sound *sound.Player
	// OnGameOver is called once with the summary and the recording of the finished game.
	OnGameOver func(summary types.Summary, recording *replay.Recording)
}

var _ Scene = &PlayScene{}

func NewPlayScene(opts PlaySceneOptions) *PlayScene {
	actionQueue := queue.NewInMemoryQueue(ActionQueueSize)
	eventQueue := queue.NewInMemoryQueue(EventQueueSize)
	recorder := replay.NewRecorder(opts.Seed)
	return &PlayScene{
		BaseScene:   NewBaseScene(objects.NewSortedZIndexObject("play-root")),
		actionQueue: actionQueue,
		eventQueue:  eventQueue,
		recorder:    recorder,
		gameManager: game.NewGameManager(game.NewGameManagerOptions{
			ActionQueue: actionQueue,
			EventQueue:  eventQueue,
			Recorder:    recorder,
			Seed:        opts.Seed,
		}),
		sound:      opts.Sound,
		sheet:      spritesheets.NewBlockSheet(constants.BlockSize),
		onGameOver: opts.OnGameOver,
	}
}

func (s *PlayScene) Init() error {
	stateFunc := func() *types.GameState {
		return s.state
	}
	paused := func() bool {
		return s.state != nil && s.state.Status == types.GameStatusPaused
	}

	// children are initialized as they are added
	if err := s.BaseScene.Init(); err != nil {
		return fmt.Errorf("failed to initialize base scene: %v", err)
	}

	root := s.Root
	for id, obj := range map[string]objects.GameObject{
		"board":   objects.NewBoardObject("board", stateFunc, s.sheet),
		"preview": objects.NewPreviewObject("preview", stateFunc, s.sheet),
		"hud":     objects.NewHUDObject("hud", stateFunc, s.sheet),
		"paused":  objects.NewTextOverlayObject("paused", "Paused", paused),
	} {
		if err := root.AddChild(id, obj); err != nil {
			return fmt.Errorf("failed to add %s: %v", id, err)
		}
	}

	s.gameManager.Start()
	s.state = s.gameManager.State()
	return nil
}

func (s *PlayScene) Update() error {
	for _, action := range input.Actions(input.DefaultKeyBindings) {
		if err := s.actionQueue.Enqueue(action); err != nil {
			log.Warn("Failed to queue %s: %v", action, err)
		}
	}

	delta := time.Second / time.Duration(ebiten.TPS())
	if err := s.gameManager.Tick(delta); err != nil {
		return fmt.Errorf("failed to tick game: %v", err)
	}
	s.state = s.gameManager.State()

	if err := s.handleEvents(); err != nil {
		return fmt.Errorf("failed to handle game events: %v", err)
	}

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	if s.over != nil && s.onGameOver != nil {
		summary, onGameOver := *s.over, s.onGameOver
		s.over, s.onGameOver = nil, nil
		recording := s.recorder.Recording()
		log.Debug("Recorded %d frames over %v", len(recording.Frames), recording.Duration())
		onGameOver(summary, recording)
	}

	return nil
}

func (s *PlayScene) handleEvents() error {
	events, err := s.eventQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read events: %v", err)
	}

	for _, item := range events {
		switch event := item.(type) {
		case *types.MovedEvent:
			if event.Action != types.ActionSoftDrop {
				s.sound.Play(sound.EffectMove)
			}
		case *types.RotatedEvent:
			s.sound.Play(sound.EffectRotate)
		case *types.HardDroppedEvent:
			s.sound.Play(sound.EffectDrop)
		case *types.LockedEvent:
			s.sound.Play(sound.EffectLock)
		case *types.LinesClearedEvent:
			s.sound.Play(sound.EffectClear)
			s.addEffect(fmt.Sprintf("+%d", event.Points), pointsColor)
		case *types.LevelUpEvent:
			s.sound.Play(sound.EffectLevelUp)
			s.addEffect(fmt.Sprintf("Level %d", event.Level), levelUpColor)
		case *types.PausedEvent, *types.ResumedEvent:
			log.Debug("Game %T", event)
		case *types.GameOverEvent:
			s.sound.Play(sound.EffectGameOver)
			summary := event.Summary
			s.over = &summary
		default:
			log.Warn("Unhandled game event: %T", item)
		}
	}

	return nil
}

func (s *PlayScene) addEffect(text string, clr color.Color) {
	s.effects++
	id := fmt.Sprintf("effect-%d", s.effects)
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   text,
		X:      float64(objects.BoardX + objects.BoardWidth/2),
		Y:      float64(objects.BoardY + objects.BoardHeight/3),
		Color:  clr,
		Scroll: true,
		TTL:    1200,
		ZIndex: 5,
	})
	if err := s.Root.AddChild(id, effect); err != nil {
		log.Warn("Failed to add text effect: %v", err)
	}
}
