package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/cbodonnell/blockdrop/pkg/api"
	"github.com/cbodonnell/blockdrop/pkg/clients"
	"github.com/cbodonnell/blockdrop/pkg/highscores"
	"github.com/cbodonnell/blockdrop/pkg/log"
	"github.com/cbodonnell/blockdrop/pkg/messages"
	"github.com/cbodonnell/blockdrop/pkg/repositories"
	"github.com/cbodonnell/blockdrop/pkg/version"
	"github.com/cbodonnell/blockdrop/pkg/workers"
)

func main() {
	port := flag.Int("port", 9090, "port to listen on")
	allowOrigin := flag.String("allow-origin", "*", "allowed origin for cross-origin requests")
	logLevel := flag.String("log-level", "info", "Log level")
	migrations := flag.String("migrations", "./migrations", "directory holding the sqlite and postgres migrations")
	requireReplay := flag.Bool("require-replay", false, "reject high scores submitted without a replay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting score server version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connStr := os.Getenv("BLOCKDROP_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://blockdrop.db"
	}

	u, err := url.Parse(connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse connection string: %v", err))
	}

	var repository repositories.Repository
	switch u.Scheme {
	case "sqlite":
		path := strings.TrimPrefix(connStr, "sqlite://")
		repository, err = repositories.NewSQLiteRepository(ctx, path, filepath.Join(*migrations, "sqlite"))
		if err != nil {
			panic(fmt.Sprintf("Failed to create SQLite repository: %v", err))
		}
	case "postgres", "postgresql":
		repository, err = repositories.NewPostgresRepository(ctx, u.String(), filepath.Join(*migrations, "postgres"))
		if err != nil {
			panic(fmt.Sprintf("Failed to create Postgres repository: %v", err))
		}
	default:
		panic(fmt.Sprintf("Unknown database type %s", u.Scheme))
	}
	defer repository.Close(context.Background())

	clientManager := clients.NewClientManager()
	broadcastMessageChan := make(chan *messages.Message, 100)
	broadcastMessageWorker := workers.NewBroadcastMessageWorker(workers.NewBroadcastMessageWorkerOptions{
		ClientManager:        clientManager,
		BroadcastMessageChan: broadcastMessageChan,
	})
	go broadcastMessageWorker.Start(ctx)

	apiServerOpts := api.NewAPIServerOptions{
		Port:                 *port,
		AllowOrigin:          *allowOrigin,
		RequireReplay:        *requireReplay,
		Repository:           repository,
		Store:                highscores.NewStore(repository),
		ClientManager:        clientManager,
		BroadcastMessageChan: broadcastMessageChan,
	}
	tlsCertFile := os.Getenv("BLOCKDROP_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("BLOCKDROP_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
