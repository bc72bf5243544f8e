package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Drill проводит сессию Vocabulary Drill: случайный порядок без повторов
// правильно отвеченных карточек и ограничение времени на ответ.
type Drill struct {
	input   InputSource
	out     io.Writer
	clock   Clock
	rnd     Rand
	timeout time.Duration
	log     *slog.Logger
}

// DrillOption настраивает Drill.
type DrillOption func(*Drill)

// WithClock задаёт часы для таймера ответа.
func WithClock(clock Clock) DrillOption {
	return func(d *Drill) {
		d.clock = clock
	}
}

// WithRand задаёт источник случайности для выбора карточек.
func WithRand(rnd Rand) DrillOption {
	return func(d *Drill) {
		d.rnd = rnd
	}
}

// WithTimeout задаёт время на ответ.
func WithTimeout(timeout time.Duration) DrillOption {
	return func(d *Drill) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithLogger задаёт логгер.
func WithLogger(log *slog.Logger) DrillOption {
	return func(d *Drill) {
		if log != nil {
			d.log = log
		}
	}
}

// NewDrill создаёт новый Drill.
func NewDrill(input InputSource, out io.Writer, opts ...DrillOption) *Drill {
	d := &Drill{
		input:   input,
		out:     out,
		clock:   RealClock(),
		timeout: DefaultDrillTimeout,
		log:     slog.Default(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Run тренирует карточки, пока пул не опустеет или пользователь не введёт "q".
// Ошибка возвращается только при сбое ввода или отмене ctx.
func (d *Drill) Run(ctx context.Context, items []DefinitionItem) (Result, error) {
	log := d.log.With("session", uuid.NewString(), "mode", "vocabulary_drill")
	log.Info("session started", "definitions", len(items))

	pool := NewDrillPool(items, d.rnd)

	var score ScoreTracker
	result := Result{Total: len(items)}

	for pool.Len() > 0 && !result.Quit {
		idx, item := pool.Draw()
		d.present(item)

		outcome, err := d.awaitOutcome(ctx)
		if err != nil {
			result.Score = score.Value()
			return result, err
		}

		switch pool.Apply(idx, outcome) {
		case VerdictCorrect:
			result.Attempts++
			score.Inc()
			fmt.Fprint(d.out, msgCorrect)
		case VerdictIncorrect:
			result.Attempts++
			fmt.Fprint(d.out, msgIncorrect)
		case VerdictTimeout:
			result.Timeouts++
			fmt.Fprintf(d.out, msgTimeout, d.timeoutSeconds())
		case VerdictQuit:
			result.Quit = true
		case VerdictInvalid:
			log.Debug("invalid term", "input", outcome.Raw)
			fmt.Fprint(d.out, msgInvalidTerm)
		}
	}

	result.Score = score.Value()
	if result.Quit {
		fmt.Fprintf(d.out, msgDrillIncomplete, result.Score, result.Total)
	} else {
		fmt.Fprintf(d.out, msgDrillComplete, result.Score, result.Total)
	}

	log.Info("session finished",
		"score", result.Score,
		"total", result.Total,
		"attempts", result.Attempts,
		"timeouts", result.Timeouts,
		"quit", result.Quit,
	)

	return result, nil
}

// awaitOutcome ждёт строку ввода или срабатывание таймера, что наступит раньше.
// Таймер отменяет контекст чтения, поэтому раунд завершается ровно одним событием:
// тем, что вернул ReadLine.
func (d *Drill) awaitOutcome(ctx context.Context) (Outcome, error) {
	roundCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var expired atomic.Bool
	timer := d.clock.AfterFunc(d.timeout, func() {
		expired.Store(true)
		cancel()
	})

	line, err := d.input.ReadLine(roundCtx)
	timer.Stop()

	switch {
	case err == nil:
		return ClassifyDrillInput(line), nil
	case ctx.Err() != nil:
		return Outcome{}, ctx.Err()
	case expired.Load() && errors.Is(err, context.Canceled):
		return TimeoutOutcome(), nil
	default:
		return Outcome{}, err
	}
}

// timeoutSeconds округляет время на ответ вверх до целых секунд.
func (d *Drill) timeoutSeconds() int {
	return int((d.timeout + time.Second - 1) / time.Second)
}

func (d *Drill) present(item DefinitionItem) {
	fmt.Fprintf(d.out, msgDefinition, item.Definition)
	for i, term := range item.Terms {
		if i == MaxTerms {
			break
		}
		fmt.Fprintf(d.out, msgOption, i+1, term)
	}
	fmt.Fprint(d.out, Prompt)
}
