package storage

import (
	"context"
	"sync"

	"github.com/letsssgooo/studyApp/internal/quiz"
)

// MemoryStorage реализует quiz.QuestionSource в памяти.
type MemoryStorage struct {
	questions   []quiz.Question
	definitions []quiz.DefinitionItem
	err         error
	mu          sync.RWMutex
}

// NewMemoryStorage создаёт новый MemoryStorage.
func NewMemoryStorage(questions []quiz.Question, definitions []quiz.DefinitionItem) *MemoryStorage {
	return &MemoryStorage{
		questions:   questions,
		definitions: definitions,
	}
}

// SetError заставляет последующие загрузки возвращать err.
func (s *MemoryStorage) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err
}

// Questions возвращает копию вопросов.
func (s *MemoryStorage) Questions(ctx context.Context) ([]quiz.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}

	questions := make([]quiz.Question, len(s.questions))
	copy(questions, s.questions)

	return questions, nil
}

// Definitions возвращает копию карточек.
func (s *MemoryStorage) Definitions(ctx context.Context) ([]quiz.DefinitionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}

	definitions := make([]quiz.DefinitionItem, len(s.definitions))
	copy(definitions, s.definitions)

	return definitions, nil
}
