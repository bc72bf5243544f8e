package quiz

import (
	"math/rand"
	"time"
)

// Rand — источник случайных индексов. *rand.Rand подходит.
type Rand interface {
	Intn(n int) int
}

// DrillPool хранит карточки, на которые ещё не дан правильный ответ.
// Порядок элементов не сохраняется.
type DrillPool struct {
	items []DefinitionItem
	rnd   Rand
}

// NewDrillPool копирует items в новый пул. При rnd == nil используется генератор,
// инициализированный текущим временем.
func NewDrillPool(items []DefinitionItem, rnd Rand) *DrillPool {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pool := make([]DefinitionItem, len(items))
	copy(pool, items)

	return &DrillPool{items: pool, rnd: rnd}
}

// Len возвращает количество оставшихся карточек.
func (p *DrillPool) Len() int {
	return len(p.items)
}

// Draw выбирает карточку равновероятно среди оставшихся.
// Пул не должен быть пустым.
func (p *DrillPool) Draw() (int, DefinitionItem) {
	idx := p.rnd.Intn(len(p.items))
	return idx, p.items[idx]
}

// Apply выносит решение по раунду для карточки idx и удаляет её из пула,
// если ответ правильный. Остальные исходы пул не меняют.
func (p *DrillPool) Apply(idx int, outcome Outcome) Verdict {
	verdict := Judge(p.items[idx], outcome)
	if verdict == VerdictCorrect {
		p.Remove(idx)
	}

	return verdict
}

// Remove удаляет карточку с индексом idx, перенося на её место последнюю.
func (p *DrillPool) Remove(idx int) {
	last := len(p.items) - 1
	p.items[idx] = p.items[last]
	p.items[last] = DefinitionItem{}
	p.items = p.items[:last]
}
