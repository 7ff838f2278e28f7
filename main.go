package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/consensusvote/consensus/cliparse"
	"github.com/consensusvote/consensus/election"
	"github.com/consensusvote/consensus/handlers"
	"github.com/consensusvote/consensus/router"
	"github.com/consensusvote/consensus/store"
	"github.com/consensusvote/consensus/voting"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	s, err := store.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	if err := s.Init(); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Lifecycle observers: audit log persistence and in-process
	// notifications
	emitter := election.NewEmitter()
	audit := election.NewAuditLogger(s)
	emitter.Subscribe(audit)
	emitter.Subscribe(election.NewNotifier())

	elections := election.NewService(s, s, emitter)
	votes := voting.NewService(s, s, s, s, s)
	ties := election.NewTieResolver(s, s, votes.CalculateResults)

	// Auto-close elections whose end date has passed
	scheduler := election.NewScheduler(elections, cfg.SchedulerInterval)
	scheduler.Start()
	defer scheduler.Stop()

	mux := router.NewRouter(elections, votes, ties, audit, s, cfg)

	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	slog.Info("Registry admin key", "key", handlers.RegistryAdminKey(cfg))
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
