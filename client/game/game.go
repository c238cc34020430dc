package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/blockdrop/client/flow"
	"github.com/cbodonnell/blockdrop/client/input"
	"github.com/cbodonnell/blockdrop/client/scenes"
	"github.com/cbodonnell/blockdrop/client/sound"
	"github.com/cbodonnell/blockdrop/client/ui"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/queue"
	"github.com/cbodonnell/blockdrop/pkg/replay"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/cbodonnell/blockdrop/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	DefaultScreenWidth  = 560
	DefaultScreenHeight = 640

	// listTimeout bounds reading the local high score list
	listTimeout = 2 * time.Second
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene

	store        *highscores.Store
	localScores  []*models.HighScore
	online       bool
	onlineScores []*models.HighScore
	// liveMessageQueue receives the messages of the live high score feed
	liveMessageQueue queue.Queue
	saveChan         chan<- *workers.SaveHighScoreRequest
	resultChan       <-chan *workers.SaveHighScoreResult
	sound            *sound.Player

	menu     *scenes.MenuScene
	gameOver *scenes.GameOverScene
}

type NewGameOptions struct {
	Debug bool
	// Store holds the local high scores
	Store *highscores.Store
	// Online is true when a score service is configured
	Online bool
	// LiveMessageQueue receives the live feed of the score service, it is optional
	LiveMessageQueue queue.Queue
	// SaveChan receives named high scores to save
	SaveChan chan<- *workers.SaveHighScoreRequest
	// ResultChan reports saved high scores
	ResultChan <-chan *workers.SaveHighScoreResult
	Sound      *sound.Player
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:            opts.Debug,
		store:            opts.Store,
		online:           opts.Online,
		liveMessageQueue: opts.LiveMessageQueue,
		saveChan:         opts.SaveChan,
		resultChan:       opts.ResultChan,
		sound:            opts.Sound,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) refreshLocalScores() {
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()
	list, err := g.store.List(ctx)
	if err != nil {
		log.Error("Failed to load local high scores: %v", err)
		return
	}
	g.localScores = list
}

func (g *Game) loadMenu() error {
	g.refreshLocalScores()
	menu := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnPlay: func() {
			if err := g.loadPlay(); err != nil {
				log.Error("Failed to start game: %v", err)
			}
		},
		LocalScores:  g.localScores,
		Online:       g.online,
		OnlineScores: g.onlineScores,
	})
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.menu, g.gameOver = menu, nil
	g.mode = flow.GameModeMenu
	return nil
}

func (g *Game) loadPlay() error {
	seed := uint64(time.Now().UnixNano())
	play := scenes.NewPlayScene(scenes.PlaySceneOptions{
		Seed:  seed,
		Sound: g.sound,
		OnGameOver: func(summary types.Summary, recording *replay.Recording) {
			if err := g.handleGameOver(summary, recording); err != nil {
				log.Error("Failed to handle game over: %v", err)
			}
		},
	})
	if err := g.SetScene(play); err != nil {
		return fmt.Errorf("failed to set play scene: %v", err)
	}
	g.menu, g.gameOver = nil, nil
	g.mode = flow.GameModePlay
	log.Info("Started game with seed %d", seed)
	return nil
}

func (g *Game) handleGameOver(summary types.Summary, recording *replay.Recording) error {
	if !flow.ShouldEnterName(summary.Account.Score, g.localScores, g.onlineScores, g.online) {
		return g.loadGameOver(summary, recording.ID.String(), false)
	}

	nameEntry := scenes.NewNameEntryScene(scenes.NameEntrySceneOptions{
		Score: summary.Account.Score,
		OnSubmit: func(input string) error {
			name, err := flow.ResolveName(input)
			if err != nil {
				return &ui.ActionableError{
					Message: fmt.Sprintf("Use up to %d letters, digits or spaces.", highscores.MaxNameLength),
					Err:     err,
				}
			}
			return g.saveHighScore(name, summary, recording)
		},
	})
	if err := g.SetScene(nameEntry); err != nil {
		return fmt.Errorf("failed to set name entry scene: %v", err)
	}
	g.menu, g.gameOver = nil, nil
	g.mode = flow.GameModeNameEntry
	return nil
}

func (g *Game) saveHighScore(name string, summary types.Summary, recording *replay.Recording) error {
	encoded, err := replay.Encode(recording)
	if err != nil {
		log.Warn("Failed to encode replay, saving without it: %v", err)
	}

	entry := &models.HighScore{
		Name:     name,
		Score:    summary.Account.Score,
		Level:    summary.Account.Level,
		Lines:    summary.Account.Lines,
		ReplayID: recording.ID.String(),
	}

	select {
	case g.saveChan <- &workers.SaveHighScoreRequest{Entry: entry, Replay: encoded}:
	default:
		return &ui.ActionableError{Message: "Still saving the previous score. Please try again."}
	}

	return g.loadGameOver(summary, entry.ReplayID, true)
}

func (g *Game) loadGameOver(summary types.Summary, replayID string, saving bool) error {
	gameOver := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		Summary:  summary,
		ReplayID: replayID,
		Saving:   saving,
		Online:   g.online,
	})
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.menu, g.gameOver = nil, gameOver
	g.mode = flow.GameModeOver
	return nil
}

func (g *Game) Update() error {
	g.handleSaveResults()
	if err := g.handleLiveMessages(); err != nil {
		return fmt.Errorf("failed to handle live messages: %v", err)
	}

	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleSaveResults() {
	select {
	case result := <-g.resultChan:
		log.Debug("Saved high score %d: local rank %d, online rank %d", result.Entry.Score, result.LocalRank, result.RemoteRank)
		g.refreshLocalScores()
		if g.gameOver != nil {
			g.gameOver.SetResult(result)
		}
	default:
	}
}

func (g *Game) handleLiveMessages() error {
	if g.liveMessageQueue == nil {
		return nil
	}
	pending, err := g.liveMessageQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read live messages: %v", err)
	}
	if len(pending) == 0 {
		return nil
	}
	for _, msg := range pending {
		g.onlineScores = flow.ApplyLiveMessage(g.onlineScores, msg)
	}
	if g.menu != nil {
		g.menu.SetOnlineScores(g.onlineScores)
	}
	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case flow.GameModeMenu:
		if input.IsPositiveJustPressed() {
			if err := g.loadPlay(); err != nil {
				return fmt.Errorf("failed to load play scene: %v", err)
			}
		}
	case flow.GameModeOver:
		if input.IsPositiveJustPressed() || input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), DefaultScreenWidth-110, 0)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()), DefaultScreenWidth-110, 14)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Mode: %s", g.mode), DefaultScreenWidth-110, 28)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
