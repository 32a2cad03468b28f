package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"taskbook/internal/adapter/cli"
	dbadapter "taskbook/internal/adapter/db"
	fileadapter "taskbook/internal/adapter/file"
	"taskbook/internal/app/service"
	"taskbook/internal/config"
	"taskbook/internal/core/ports"
	"taskbook/pkg/translator"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup happens before exit.
func run() int {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		return 1
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: cfg.SupportedLanguages,
	})
	lang := translator.ResolveLanguage(cfg.AppLang, cfg.SupportedLanguages)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open task book storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
		return 1
	}
	defer closeStore()

	snapshot, err := store.Load(ctx)
	if err != nil {
		logger.Error("failed to load task book", zap.Error(err))
		return 1
	}
	registry := service.NewRegistryFromSnapshot(snapshot)
	logger.Info("task book loaded",
		zap.Int("persons", len(snapshot.Persons)),
		zap.Int("tasks", len(snapshot.Tasks)),
		zap.String("lang", lang),
	)

	session := cli.NewSession(registry, store, lang, os.Stdout, logger)
	if err := session.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Error("session ended with error", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.WarnLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if len(cfg.LogOutput) > 0 {
		zcfg.OutputPaths = cfg.LogOutput
	}
	return zcfg.Build()
}

func openStore(ctx context.Context, cfg *config.Config) (ports.SnapshotStore, func(), error) {
	if cfg.StorageDriver != config.StorageMySQL {
		return fileadapter.NewSnapshotStore(cfg.DataFile), func() {}, nil
	}

	repo, err := dbadapter.OpenSnapshotRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeRepo := func() {
		if err := repo.Close(); err != nil {
			zap.L().Warn("failed to close mysql connection", zap.Error(err))
		}
	}
	return repo, closeRepo, nil
}
