package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cbodonnell/blockdrop/pkg/game/constants"
	"github.com/cbodonnell/blockdrop/pkg/game/types"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/replay"
	"github.com/cbodonnell/blockdrop/pkg/repositories"
	"github.com/cbodonnell/blockdrop/pkg/repositories/models"
	"github.com/gorilla/mux"
)

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func HandleListHighScores(store *highscores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := constants.NoOfHighScores
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > constants.NoOfHighScores {
				http.Error(w, fmt.Sprintf("Limit must be between 1 and %d", constants.NoOfHighScores), http.StatusBadRequest)
				return
			}
			limit = n
		}

		list, err := store.List(r.Context())
		if err != nil {
			log.Error("failed to list high scores: %v", err)
			http.Error(w, "Failed to list high scores", http.StatusInternalServerError)
			return
		}
		if len(list) > limit {
			list = list[:limit]
		}

		writeJSON(w, http.StatusOK, list)
	}
}

func HandleGetHighScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hs, ok := getHighScore(w, r, repository)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, hs)
	}
}

func HandleGetReplay(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hs, ok := getHighScore(w, r, repository)
		if !ok {
			return
		}
		if len(hs.Replay) == 0 {
			http.Error(w, "Replay not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", "attachment; filename=\""+hs.ReplayID+".replay\"")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(hs.Replay); err != nil {
			log.Error("failed to write replay: %v", err)
		}
	}
}

func getHighScore(w http.ResponseWriter, r *http.Request, repository repositories.Repository) (*models.HighScore, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Failed to parse high score id", http.StatusBadRequest)
		return nil, false
	}

	hs, err := repository.GetHighScore(r.Context(), id)
	if err != nil {
		if repositories.IsNotFound(err) {
			http.Error(w, "High score not found", http.StatusNotFound)
			return nil, false
		}
		log.Error("failed to get high score %d: %v", id, err)
		http.Error(w, "Failed to get high score", http.StatusInternalServerError)
		return nil, false
	}

	return hs, true
}

type NewSubmitHighScoreOptions struct {
	Store *highscores.Store
	// RequireReplay rejects submissions without a recording
	RequireReplay bool
	// BroadcastMessageChan receives accepted scores for the live feed, it is optional
	BroadcastMessageChan chan<- *messages.Message
}

func HandleSubmitHighScore(opts NewSubmitHighScoreOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, messages.MaxRequestSize)
		req := &messages.SubmitHighScoreRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Failed to decode request", http.StatusBadRequest)
			return
		}

		entry := &models.HighScore{
			Name:  req.Name,
			Score: req.Score,
			Level: req.Level,
			Lines: req.Lines,
		}

		if len(req.Replay) == 0 {
			if opts.RequireReplay {
				http.Error(w, "Replay is required", http.StatusBadRequest)
				return
			}
		} else {
			rec, err := replay.Decode(req.Replay)
			if err != nil {
				log.Warn("failed to decode replay: %v", err)
				http.Error(w, "Invalid replay", http.StatusBadRequest)
				return
			}
			summary, err := replay.Verify(rec)
			if err != nil {
				log.Warn("failed to verify replay %s: %v", rec.ID, err)
				http.Error(w, "Invalid replay", http.StatusBadRequest)
				return
			}
			claimed := types.Account{Score: req.Score, Level: req.Level, Lines: req.Lines}
			if summary.Account != claimed {
				log.Warn("replay %s scored %+v, submission claimed %+v", rec.ID, summary.Account, claimed)
				http.Error(w, "Replay does not match the submitted score", http.StatusBadRequest)
				return
			}
			entry.ReplayID = rec.ID.String()
			entry.Replay = req.Replay
		}

		rank, err := opts.Store.Submit(r.Context(), entry)
		if err != nil {
			if highscores.IsInvalidEntry(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if repositories.IsDuplicate(err) {
				log.Warn("rejected resubmitted replay %s", entry.ReplayID)
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			if highscores.IsNotQualified(err) {
				writeJSON(w, http.StatusOK, &messages.SubmitHighScoreResponse{
					Accepted: false,
					Reason:   err.Error(),
				})
				return
			}
			log.Error("failed to submit high score: %v", err)
			http.Error(w, "Failed to submit high score", http.StatusInternalServerError)
			return
		}

		entry.Replay = nil
		writeJSON(w, http.StatusCreated, &messages.SubmitHighScoreResponse{
			Accepted:  true,
			Rank:      rank,
			HighScore: entry,
		})

		broadcastHighScore(opts.BroadcastMessageChan, rank, entry)
	}
}

func broadcastHighScore(broadcastChan chan<- *messages.Message, rank int, entry *models.HighScore) {
	if broadcastChan == nil {
		return
	}

	msg, err := messages.NewMessage(messages.MessageTypeServerHighScore, &messages.ServerHighScore{
		Rank:      rank,
		HighScore: entry,
	})
	if err != nil {
		log.Error("failed to create high score message: %v", err)
		return
	}

	select {
	case broadcastChan <- msg:
	default:
		log.Warn("Broadcast channel is full, dropping high score %d", entry.ID)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
	}
}
