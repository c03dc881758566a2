package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"storybot/backend"
	"storybot/config"
	"storybot/handler"
	"storybot/logging"
	"storybot/metrics"
)

func main() {
	log := logging.GetLogger()

	if err := config.ParseArgs(os.Args[1:]); err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}
	if config.CliArgs.Version {
		fmt.Println(config.Version)
		return
	}

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	if config.CliArgs.Debug {
		level = logrus.DebugLevel
	}
	logging.InitLogger(level)
	if cfg.LogFile != "" {
		logging.AddFileOutput(cfg.LogFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := backend.NewClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer client.Close()

	server := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: handler.NewRouter(client, metrics.New()),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Shutdown failed: %v", err)
		}
	}()

	log.Infof("Starting server on %s (model %s)", cfg.ListenAddress, cfg.Model)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed to start: %v", err)
	}
	log.Infoln("Server stopped")
}
