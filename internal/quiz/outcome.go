package quiz

import (
	"strconv"
	"strings"
)

// OutcomeKind — тип события, завершившего раунд тренировки.
type OutcomeKind int

const (
	OutcomeAnswer OutcomeKind = iota
	OutcomeTimeout
	OutcomeQuit
	OutcomeInvalid
)

// Outcome описывает результат раунда до проверки ответа.
type Outcome struct {
	Kind   OutcomeKind
	Choice int    // индекс термина для OutcomeAnswer
	Raw    string // исходный ввод для OutcomeInvalid
}

// Verdict — решение по раунду.
type Verdict int

const (
	VerdictCorrect Verdict = iota
	VerdictIncorrect
	VerdictTimeout
	VerdictInvalid
	VerdictQuit
)

// TimeoutOutcome возвращает Outcome для истёкшего таймера.
func TimeoutOutcome() Outcome {
	return Outcome{Kind: OutcomeTimeout}
}

// ClassifyDrillInput разбирает строку ввода режима Vocabulary Drill.
// Пробелы по краям игнорируются, "q" не зависит от регистра; номера 1..MaxTerms
// считаются ответом независимо от количества терминов в карточке.
func ClassifyDrillInput(line string) Outcome {
	line = strings.TrimSpace(line)

	if strings.EqualFold(line, QuitCommand) {
		return Outcome{Kind: OutcomeQuit}
	}

	n, err := strconv.Atoi(line)
	if err != nil || n-1 < 0 || n-1 >= MaxTerms {
		return Outcome{Kind: OutcomeInvalid, Raw: line}
	}

	return Outcome{Kind: OutcomeAnswer, Choice: n - 1}
}

// Judge сопоставляет Outcome с карточкой.
func Judge(item DefinitionItem, outcome Outcome) Verdict {
	switch outcome.Kind {
	case OutcomeAnswer:
		if outcome.Choice == item.Correct {
			return VerdictCorrect
		}
		return VerdictIncorrect
	case OutcomeTimeout:
		return VerdictTimeout
	case OutcomeQuit:
		return VerdictQuit
	default:
		return VerdictInvalid
	}
}
