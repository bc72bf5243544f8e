package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/letsssgooo/studyApp/internal/quiz"
)

const msgMainMenu = "Study App\nModes:\n1. Multiple Choice\n2. Vocabulary Drill\n3. Exit\n"

const msgInvalidChoice = "Invalid choice. Please enter a number between 1-3 or 'q' to quit.\n"

const msgLoadError = "Error: %v\n"

// Пункты главного меню
const (
	choiceMultipleChoice = "1"
	choiceDrill          = "2"
	choiceExit           = "3"
)

// App — главное меню: выбирает режим и запускает соответствующую сессию.
type App struct {
	source    quiz.QuestionSource
	input     quiz.InputSource
	out       io.Writer
	log       *slog.Logger
	drillOpts []quiz.DrillOption
}

// New создаёт новое приложение.
func New(source quiz.QuestionSource, input quiz.InputSource, out io.Writer, log *slog.Logger, drillOpts ...quiz.DrillOption) *App {
	if log == nil {
		log = slog.Default()
	}

	return &App{
		source:    source,
		input:     input,
		out:       out,
		log:       log,
		drillOpts: append([]quiz.DrillOption{quiz.WithLogger(log)}, drillOpts...),
	}
}

// Run показывает меню до выбора "Exit" или окончания ввода.
func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprint(a.out, msgMainMenu)
		fmt.Fprint(a.out, quiz.Prompt)

		choice, err := a.input.ReadLine(ctx)
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case choiceMultipleChoice:
			err = a.multipleChoice(ctx)
		case choiceDrill:
			err = a.vocabularyDrill(ctx)
		case choiceExit, quiz.QuitCommand:
			return nil
		default:
			fmt.Fprint(a.out, msgInvalidChoice)
		}

		if err != nil {
			return endOfInput(err)
		}
	}
}

func (a *App) multipleChoice(ctx context.Context) error {
	questions, err := a.source.Questions(ctx)
	if err != nil {
		a.loadFailed("multiple_choice", err)
		return nil
	}

	_, err = quiz.NewSequentialQuiz(a.input, a.out, a.log).Run(ctx, questions)
	return err
}

func (a *App) vocabularyDrill(ctx context.Context) error {
	items, err := a.source.Definitions(ctx)
	if err != nil {
		a.loadFailed("vocabulary_drill", err)
		return nil
	}

	_, err = quiz.NewDrill(a.input, a.out, a.drillOpts...).Run(ctx, items)
	return err
}

func (a *App) loadFailed(mode string, err error) {
	a.log.Error("can not load question bank", "mode", mode, "err", err)
	fmt.Fprintf(a.out, msgLoadError, err)
}

// endOfInput считает закрытие ввода штатным завершением.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
