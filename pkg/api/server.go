package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/blockdrop/pkg/api/handlers"
	"github.com/cbodonnell/blockdrop/pkg/api/middleware"
	"github.com/cbodonnell/blockdrop/pkg/clients"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port          int
	TLS           *TLSConfig
	AllowOrigin   string
	RequireReplay bool
	Repository    repositories.Repository
	Store         *highscores.Store
	ClientManager *clients.ClientManager
	// BroadcastMessageChan receives accepted scores for the live feed
	BroadcastMessageChan chan<- *messages.Message
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter returns the handler serving the score service routes
func NewRouter(opts NewAPIServerOptions) http.Handler {
	allowOrigin := opts.AllowOrigin
	if allowOrigin == "" {
		allowOrigin = "*"
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", handlers.HandleHealthz()).Methods(http.MethodGet)
	r.HandleFunc("/highscores", handlers.HandleListHighScores(opts.Store)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/highscores", handlers.HandleSubmitHighScore(handlers.NewSubmitHighScoreOptions{
		Store:                opts.Store,
		RequireReplay:        opts.RequireReplay,
		BroadcastMessageChan: opts.BroadcastMessageChan,
	})).Methods(http.MethodPost)
	r.HandleFunc("/highscores/live", handlers.HandleLiveHighScores(opts.Store, opts.ClientManager, allowOrigin)).Methods(http.MethodGet)
	r.HandleFunc("/highscores/{id:[0-9]+}", handlers.HandleGetHighScore(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/highscores/{id:[0-9]+}/replay", handlers.HandleGetReplay(opts.Repository)).Methods(http.MethodGet, http.MethodOptions)

	r.Use(mux.CORSMethodMiddleware(r))
	r.Use(middleware.NewCORSMiddleware(allowOrigin))
	r.Use(middleware.NewLoggingMiddleware())

	return r
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
