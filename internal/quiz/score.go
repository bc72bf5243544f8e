package quiz

// ScoreTracker считает правильные ответы в рамках одной сессии.
type ScoreTracker struct {
	correct int
}

// Inc засчитывает один правильный ответ.
func (s *ScoreTracker) Inc() {
	s.correct++
}

// Value возвращает текущее количество правильных ответов.
func (s *ScoreTracker) Value() int {
	return s.correct
}
