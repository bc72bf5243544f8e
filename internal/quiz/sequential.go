package quiz

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
)

// SequentialQuiz проводит сессию Multiple Choice: вопросы по порядку, без таймера,
// при некорректном вводе вопрос задаётся повторно.
type SequentialQuiz struct {
	input InputSource
	out   io.Writer
	log   *slog.Logger
}

// NewSequentialQuiz создаёт новый SequentialQuiz.
func NewSequentialQuiz(input InputSource, out io.Writer, log *slog.Logger) *SequentialQuiz {
	if log == nil {
		log = slog.Default()
	}

	return &SequentialQuiz{
		input: input,
		out:   out,
		log:   log,
	}
}

// ParseChoice переводит ввод "1".."numOptions" в индекс варианта (0-based).
func ParseChoice(line string, numOptions int) (int, bool) {
	n, err := strconv.Atoi(line)
	if err != nil {
		return -1, false
	}

	idx := n - 1
	if idx < 0 || idx >= numOptions {
		return -1, false
	}

	return idx, true
}

// Run задаёт вопросы до последнего или до ввода "q".
// Ошибка возвращается только при сбое ввода или отмене ctx.
func (s *SequentialQuiz) Run(ctx context.Context, questions []Question) (Result, error) {
	log := s.log.With("session", uuid.NewString(), "mode", "multiple_choice")
	log.Info("session started", "questions", len(questions))

	var score ScoreTracker
	result := Result{Total: len(questions)}

	for i := 0; i < len(questions); {
		question := questions[i]
		s.present(question)

		line, err := s.input.ReadLine(ctx)
		if err != nil {
			result.Score = score.Value()
			return result, err
		}

		if line == QuitCommand {
			result.Quit = true
			break
		}

		choice, ok := ParseChoice(line, len(question.Options))
		if !ok {
			log.Debug("invalid option", "question", i, "input", line)
			fmt.Fprint(s.out, msgInvalidOption)
			continue
		}

		result.Attempts++
		if choice == question.Correct {
			score.Inc()
			fmt.Fprint(s.out, msgCorrect)
		} else {
			fmt.Fprintf(s.out, msgIncorrectWithAnswer, question.Correct+1)
		}

		i++
	}

	result.Score = score.Value()
	fmt.Fprintf(s.out, msgScore, result.Score, result.Total)
	log.Info("session finished", "score", result.Score, "total", result.Total, "quit", result.Quit)

	return result, nil
}

func (s *SequentialQuiz) present(question Question) {
	fmt.Fprintf(s.out, msgQuestion, question.Prompt)
	for i, option := range question.Options {
		fmt.Fprintf(s.out, msgOption, i+1, option)
	}
	fmt.Fprint(s.out, Prompt)
}
