package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/letsssgooo/studyApp/internal/app"
	"github.com/letsssgooo/studyApp/internal/config"
	"github.com/letsssgooo/studyApp/internal/lib/slogcustom"
	"github.com/letsssgooo/studyApp/internal/quiz"
	"github.com/letsssgooo/studyApp/internal/storage"
	"github.com/letsssgooo/studyApp/internal/storage/postgres"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := setupLogger(cfg.LogLevel)
	slog.SetDefault(log)
	slog.Debug("starting study app...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source quiz.QuestionSource = storage.NewFileStorage(cfg.QuestionsFile, cfg.DefinitionsFile)
	if cfg.DSN != "" {
		st, err := postgres.NewStorage(ctx, cfg.DSN)
		if err != nil {
			slog.Error("can not connect to postgres", "err", err)
			os.Exit(1)
		}
		defer st.Close()
		source = st
	}

	input := quiz.NewLineReader(os.Stdin)
	defer input.Close()

	a := app.New(source, input, os.Stdout, log, quiz.WithTimeout(cfg.DrillTimeout))
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("study app stopped", "err", err)
		os.Exit(1)
	}
}

func setupLogger(level slog.Level) *slog.Logger {
	return slog.New(slogcustom.NewCustomHandler(os.Stderr, level))
}
