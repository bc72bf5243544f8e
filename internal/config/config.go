package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/letsssgooo/studyApp/internal/lib/slogcustom"
	"github.com/letsssgooo/studyApp/internal/quiz"
	"github.com/spf13/pflag"
)

// Config содержит настройки запуска приложения.
type Config struct {
	QuestionsFile   string
	DefinitionsFile string
	DrillTimeout    time.Duration
	DSN             string
	LogLevel        slog.Level
}

// ErrHelp возвращается, если пользователь запросил справку.
var ErrHelp = pflag.ErrHelp

// Parse разбирает аргументы командной строки. Справка и ошибки пишутся в output.
func Parse(args []string, output io.Writer) (*Config, error) {
	flags := pflag.NewFlagSet("studyapp", pflag.ContinueOnError)
	flags.SetOutput(output)

	cfg := &Config{}
	flags.StringVar(&cfg.QuestionsFile, "mc-file", "multipleChoice.json", "question bank for Multiple Choice mode (.json or .yaml)")
	flags.StringVar(&cfg.DefinitionsFile, "drill-file", "definitions.json", "definitions for Vocabulary Drill mode (.json or .yaml)")
	flags.DurationVar(&cfg.DrillTimeout, "drill-timeout", quiz.DefaultDrillTimeout, "time to answer one definition in Vocabulary Drill mode")
	flags.StringVar(&cfg.DSN, "dsn", "", "PostgreSQL DSN; when set question banks are loaded from the database")
	logLevel := flags.String("log-level", "warn", "log level: debug, info, warn or error")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if cfg.DrillTimeout <= 0 {
		return nil, errors.New("drill-timeout must be positive")
	}

	level, err := slogcustom.ParseLevel(*logLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return cfg, nil
}
