package quiz

import "fmt"

// ValidateQuestions проверяет, что индекс правильного ответа не выходит за границы вариантов.
func ValidateQuestions(questions []Question) error {
	for i, question := range questions {
		if len(question.Options) == 0 {
			return fmt.Errorf("%w, missing field possibleAnswers of %d question", ErrValidation, i)
		}

		if question.Correct < 0 {
			return fmt.Errorf("%w, index of correct answer must not be negative in %d question", ErrValidation, i)
		}

		if question.Correct >= len(question.Options) {
			return fmt.Errorf("%w, index of correct answer in %d question is out of range", ErrValidation, i)
		}
	}

	return nil
}

// ValidateDefinitions проверяет карточки: не больше MaxTerms терминов и корректный индекс.
func ValidateDefinitions(items []DefinitionItem) error {
	for i, item := range items {
		if len(item.Terms) == 0 {
			return fmt.Errorf("%w, missing field possibleTerms of %d definition", ErrValidation, i)
		}

		if len(item.Terms) > MaxTerms {
			return fmt.Errorf("%w, amount of terms must be at most %d in %d definition", ErrValidation, MaxTerms, i)
		}

		if item.Correct < 0 {
			return fmt.Errorf("%w, index of correct term must not be negative in %d definition", ErrValidation, i)
		}

		if item.Correct >= len(item.Terms) {
			return fmt.Errorf("%w, index of correct term in %d definition is out of range", ErrValidation, i)
		}
	}

	return nil
}
