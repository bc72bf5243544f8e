package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/letsssgooo/studyApp/internal/quiz"
	"gopkg.in/yaml.v3"
)

// FileStorage реализует quiz.QuestionSource поверх файлов JSON или YAML.
type FileStorage struct {
	questionsPath   string
	definitionsPath string
}

// NewFileStorage создаёт новый FileStorage.
func NewFileStorage(questionsPath, definitionsPath string) *FileStorage {
	return &FileStorage{
		questionsPath:   questionsPath,
		definitionsPath: definitionsPath,
	}
}

// Questions читает и проверяет вопросы режима Multiple Choice.
func (s *FileStorage) Questions(ctx context.Context) ([]quiz.Question, error) {
	var questions []quiz.Question
	if err := loadFile(s.questionsPath, &questions); err != nil {
		return nil, err
	}

	if questions == nil {
		return nil, fmt.Errorf("can not load questions from %s, %w, expected a list of questions", s.questionsPath, quiz.ErrValidation)
	}

	if err := quiz.ValidateQuestions(questions); err != nil {
		return nil, fmt.Errorf("can not load questions from %s, %w", s.questionsPath, err)
	}

	return questions, nil
}

// Definitions читает и проверяет карточки режима Vocabulary Drill.
func (s *FileStorage) Definitions(ctx context.Context) ([]quiz.DefinitionItem, error) {
	var items []quiz.DefinitionItem
	if err := loadFile(s.definitionsPath, &items); err != nil {
		return nil, err
	}

	if items == nil {
		return nil, fmt.Errorf("can not load definitions from %s, %w, expected a list of definitions", s.definitionsPath, quiz.ErrValidation)
	}

	if err := quiz.ValidateDefinitions(items); err != nil {
		return nil, fmt.Errorf("can not load definitions from %s, %w", s.definitionsPath, err)
	}

	return items, nil
}

func loadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read question bank: %w", err)
	}

	if err := decode(data, path, v); err != nil {
		return fmt.Errorf("error parsing file %s: %w", path, err)
	}

	return nil
}

// decode выбирает формат по расширению: .yaml и .yml — YAML, остальное — JSON.
func decode(data []byte, path string, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data, v)
	default:
		return decodeJSON(data, v)
	}
}

func decodeJSON(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}

	return nil
}

func decodeYAML(data []byte, v any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return fmt.Errorf("parse yaml: %w", err)
	}

	return nil
}
