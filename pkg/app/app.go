package app

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/result-management/pkg/config"
	"github.com/xiaomi388/result-management/pkg/form"
	"github.com/xiaomi388/result-management/pkg/persistence"
	"github.com/xiaomi388/result-management/pkg/roster"
)

// DataPath overrides the storage path from the config when set.
var DataPath string

// App is everything a command needs, built once per process.
type App struct {
	Config     *config.Config
	Store      *roster.Store
	Controller *form.Controller

	logFile io.Closer
}

// Open loads the config and the roster. Interactive sessions log to the
// configured log file so records do not draw over the form.
func Open(interactive bool) (*App, error) {
	path := config.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logFile, err := configureLogging(cfg, interactive)
	if err != nil {
		return nil, err
	}

	storage := cfg.Storage
	if DataPath != "" {
		storage.Path = DataPath
	}

	backend, err := persistence.NewStore(storage)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	store := roster.Open(backend)
	return &App{
		Config:     cfg,
		Store:      store,
		Controller: form.NewController(store, cfg.ClassIDs()),
		logFile:    logFile,
	}, nil
}

func (a *App) Close() error {
	err := a.Store.Close()
	if a.logFile != nil {
		logrus.SetOutput(os.Stderr)
		if cerr := a.logFile.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func configureLogging(cfg *config.Config, interactive bool) (io.Closer, error) {
	logrus.SetLevel(cfg.Level())

	if !interactive {
		logrus.SetOutput(os.Stderr)
		return nil, nil
	}

	if cfg.LogFile == "" {
		logrus.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logrus.SetOutput(f)
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return f, nil
}
