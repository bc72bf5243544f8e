package quiz

import (
	"context"
	"errors"
	"time"
)

// Question представляет вопрос режима Multiple Choice.
type Question struct {
	Prompt  string   `json:"question" yaml:"question"`
	Options []string `json:"possibleAnswers" yaml:"possibleAnswers"`
	Correct int      `json:"correctAnswer" yaml:"correctAnswer"`
}

// DefinitionItem представляет карточку режима Vocabulary Drill.
type DefinitionItem struct {
	Definition string   `json:"definition" yaml:"definition"`
	Terms      []string `json:"possibleTerms" yaml:"possibleTerms"`
	Correct    int      `json:"correctDefinition" yaml:"correctDefinition"`
}

// QuestionSource определяет интерфейс источника вопросов.
type QuestionSource interface {
	// Questions возвращает вопросы режима Multiple Choice в исходном порядке.
	Questions(ctx context.Context) ([]Question, error)

	// Definitions возвращает карточки режима Vocabulary Drill.
	Definitions(ctx context.Context) ([]DefinitionItem, error)
}

// InputSource определяет интерфейс источника пользовательского ввода.
type InputSource interface {
	// ReadLine блокируется до получения строки или отмены ctx.
	// Прочитанная строка возвращается без перевода строки и пробелов по краям.
	ReadLine(ctx context.Context) (string, error)
}

// Result содержит итог одной сессии.
type Result struct {
	Score    int
	Total    int
	Attempts int
	Timeouts int
	Quit     bool
}

// Ошибки загрузки вопросов
var ErrValidation = errors.New("validation error")

// Prompt печатается перед каждым запросом ввода.
const Prompt = " > "

// QuitCommand — команда досрочного выхода.
const QuitCommand = "q"

// MaxTerms — максимальное количество терминов в карточке.
const MaxTerms = 4

// DefaultDrillTimeout — время на ответ в режиме Vocabulary Drill.
const DefaultDrillTimeout = 5000 * time.Millisecond
