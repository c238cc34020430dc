package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cbodonnell/blockdrop/client/game"
	"github.com/cbodonnell/blockdrop/client/network"
	"github.com/cbodonnell/blockdrop/client/sound"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/queue"
	"github.com/cbodonnell/blockdrop/pkg/repositories"
	"github.com/cbodonnell/blockdrop/pkg/version"
	"github.com/cbodonnell/blockdrop/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// liveReconnectInterval is the wait between attempts to reach the live feed
	liveReconnectInterval = 10 * time.Second
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Enable debug mode")
	scores := flag.String("scores", defaultScoresPath(), "Path of the local high score file")
	apiURL := flag.String("api-url", "", "URL of the score service, scores stay local when empty")
	mute := flag.Bool("mute", false, "Disable sound effects")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repository, err := repositories.NewFileRepository(*scores)
	if err != nil {
		panic(fmt.Sprintf("Failed to open high score file: %v", err))
	}
	defer repository.Close(ctx)
	store := highscores.NewStore(repository)

	saveChan := make(chan *workers.SaveHighScoreRequest, 1)
	resultChan := make(chan *workers.SaveHighScoreResult, 1)
	saveOpts := workers.NewSaveHighScoreWorkerOptions{
		Store:      store,
		SaveChan:   saveChan,
		ResultChan: resultChan,
	}

	var liveMessageQueue queue.Queue
	if *apiURL != "" {
		apiClient := network.NewAPIClient(*apiURL)
		saveOpts.Submitter = apiClient

		liveURL, err := apiClient.LiveURL()
		if err != nil {
			panic(fmt.Sprintf("Failed to build live feed URL: %v", err))
		}
		liveMessageQueue = queue.NewInMemoryQueue(100)
		go followLiveHighScores(ctx, apiClient, network.NewLiveClient(liveURL, liveMessageQueue), liveMessageQueue)
	}

	saveHighScoreWorker := workers.NewSaveHighScoreWorker(saveOpts)
	go saveHighScoreWorker.Start(ctx)

	g, err := game.NewGame(game.NewGameOptions{
		Debug:            *debug,
		Store:            store,
		Online:           *apiURL != "",
		LiveMessageQueue: liveMessageQueue,
		SaveChan:         saveChan,
		ResultChan:       resultChan,
		Sound:            sound.NewPlayer(*mute),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("blockdrop")
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Game exited with error: %v", err)
		os.Exit(1)
	}
}

// followLiveHighScores keeps the live feed connected until ctx is done.
// While the feed is down the list is fetched once per attempt instead.
func followLiveHighScores(ctx context.Context, apiClient *network.APIClient, liveClient *network.LiveClient, messageQueue queue.Queue) {
	for {
		if err := liveClient.Connect(ctx); err != nil {
			log.Warn("Live high scores unavailable: %v", err)
			if err := apiClient.RefreshHighScores(ctx, messageQueue); err != nil {
				log.Warn("Failed to fetch online high scores: %v", err)
			}
		} else {
			err := liveClient.HandleMessages(ctx)
			var closed *network.ErrConnectionClosedByServer
			if err != nil && !errors.As(err, &closed) {
				log.Warn("Live high scores disconnected: %v", err)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(liveReconnectInterval):
		}
	}
}

func defaultScoresPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "highscores.json"
	}
	return filepath.Join(dir, "blockdrop", "highscores.json")
}
