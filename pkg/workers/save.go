package workers

import (
	"context"

	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
)

// HighScoreSubmitter posts finished games to a remote score service.
type HighScoreSubmitter interface {
	SubmitHighScore(ctx context.Context, submission *messages.SubmitHighScoreRequest) (*messages.SubmitHighScoreResponse, error)
}

// SaveHighScoreRequest is a named entry waiting to be saved, with the encoded replay of its game.
type SaveHighScoreRequest struct {
	Entry  *models.HighScore
	Replay []byte
}

// SaveHighScoreResult reports where an entry was saved.
// A rank of 0 means the entry did not make that list.
type SaveHighScoreResult struct {
	Entry      *models.HighScore
	LocalRank  int
	LocalErr   error
	RemoteRank int
	RemoteErr  error
}

type SaveHighScoreWorker struct {
	store      *highscores.Store
	submitter  HighScoreSubmitter
	saveChan   <-chan *SaveHighScoreRequest
	resultChan chan<- *SaveHighScoreResult
}

type NewSaveHighScoreWorkerOptions struct {
	Store *highscores.Store
	// Submitter is optional, entries are only saved locally without it
	Submitter HighScoreSubmitter
	SaveChan  <-chan *SaveHighScoreRequest
	// ResultChan is optional
	ResultChan chan<- *SaveHighScoreResult
}

// NewSaveHighScoreWorker creates a new SaveHighScoreWorker.
// The worker keeps disk and network writes out of the game loop.
func NewSaveHighScoreWorker(opts NewSaveHighScoreWorkerOptions) *SaveHighScoreWorker {
	return &SaveHighScoreWorker{
		store:      opts.Store,
		submitter:  opts.Submitter,
		saveChan:   opts.SaveChan,
		resultChan: opts.ResultChan,
	}
}

func (w *SaveHighScoreWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-w.saveChan:
			if !ok {
				return
			}
			result := w.save(ctx, req)
			if w.resultChan == nil {
				continue
			}
			select {
			case w.resultChan <- result:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *SaveHighScoreWorker) save(ctx context.Context, req *SaveHighScoreRequest) *SaveHighScoreResult {
	result := &SaveHighScoreResult{Entry: req.Entry}

	// the store sets the ID of the entry, the remote copy must not carry it
	submission := &messages.SubmitHighScoreRequest{
		Name:   req.Entry.Name,
		Score:  req.Entry.Score,
		Level:  req.Entry.Level,
		Lines:  req.Entry.Lines,
		Replay: req.Replay,
	}

	rank, err := w.store.Submit(ctx, req.Entry)
	switch {
	case err == nil:
		result.LocalRank = rank
	case highscores.IsNotQualified(err):
		log.Debug("Score %d did not make the local list: %v", req.Entry.Score, err)
	default:
		log.Error("Failed to save high score locally: %v", err)
		result.LocalErr = err
	}

	if w.submitter == nil {
		return result
	}

	resp, err := w.submitter.SubmitHighScore(ctx, submission)
	if err != nil {
		log.Error("Failed to submit high score: %v", err)
		result.RemoteErr = err
		return result
	}
	if !resp.Accepted {
		log.Debug("Score %d was not accepted by the score service: %s", req.Entry.Score, resp.Reason)
		return result
	}
	result.RemoteRank = resp.Rank

	return result
}
