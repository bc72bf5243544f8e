package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/letsssgooo/studyApp/internal/quiz"
)

// Таймаут загрузки банка вопросов
const timeoutLoad = 5 * time.Second

// Storage реализует quiz.QuestionSource поверх PostgreSQL.
type Storage struct {
	pool *pgxpool.Pool
}

func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.ConnectConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

// Questions читает вопросы режима Multiple Choice в порядке id.
func (s *Storage) Questions(ctx context.Context) ([]quiz.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutLoad)
	defer cancel()

	query := `
	SELECT question, possible_answers, correct_answer FROM multiple_choice_questions ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []quiz.Question
	for rows.Next() {
		var q quiz.Question
		if err := rows.Scan(&q.Prompt, &q.Options, &q.Correct); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	if err := quiz.ValidateQuestions(questions); err != nil {
		return nil, fmt.Errorf("can not load questions, %w", err)
	}

	return questions, nil
}

// Definitions читает карточки режима Vocabulary Drill в порядке id.
func (s *Storage) Definitions(ctx context.Context) ([]quiz.DefinitionItem, error) {
	ctx, cancel := context.WithTimeout(ctx, timeoutLoad)
	defer cancel()

	query := `
	SELECT definition, possible_terms, correct_definition FROM definitions ORDER BY id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query definitions: %w", err)
	}
	defer rows.Close()

	var items []quiz.DefinitionItem
	for rows.Next() {
		var item quiz.DefinitionItem
		if err := rows.Scan(&item.Definition, &item.Terms, &item.Correct); err != nil {
			return nil, fmt.Errorf("scan definition: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}

	if err := quiz.ValidateDefinitions(items); err != nil {
		return nil, fmt.Errorf("can not load definitions, %w", err)
	}

	return items, nil
}
