package memory

import (
	"sync"

	"octofit-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// table is one in-process collection. Rows are stored by value and iterated
// in insertion order. Errors mirror what gorm returns for the same situation
// so services handle both stores identically.
type table[T any] struct {
	mu    sync.RWMutex
	order []uuid.UUID
	rows  map[uuid.UUID]T

	base     func(*T) *models.BaseModel
	conflict func(existing, candidate *T) bool // unique-index stand-in
	onCreate func(*T)
}

func newTable[T any](base func(*T) *models.BaseModel) *table[T] {
	return &table[T]{
		rows: make(map[uuid.UUID]T),
		base: base,
	}
}

func (t *table[T]) insert(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(row)
}

func (t *table[T]) insertLocked(row *T) error {
	b := t.base(row)
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if _, exists := t.rows[b.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	if t.conflictsLocked(b.ID, row) {
		return gorm.ErrDuplicatedKey
	}
	if t.onCreate != nil {
		t.onCreate(row)
	}
	t.rows[b.ID] = *row
	t.order = append(t.order, b.ID)
	return nil
}

func (t *table[T]) conflictsLocked(self uuid.UUID, row *T) bool {
	if t.conflict == nil {
		return false
	}
	for id, existing := range t.rows {
		if id == self {
			continue
		}
		if t.conflict(&existing, row) {
			return true
		}
	}
	return false
}

func (t *table[T]) get(id uuid.UUID) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

// find returns the first row in insertion order matching keep
func (t *table[T]) find(keep func(*T) bool) (*T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, id := range t.order {
		row := t.rows[id]
		if keep(&row) {
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// save replaces the stored row, inserting it when absent (gorm Save semantics)
func (t *table[T]) save(row *T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	b := t.base(row)
	if _, exists := t.rows[b.ID]; !exists || b.ID == uuid.Nil {
		return t.insertLocked(row)
	}
	if t.conflictsLocked(b.ID, row) {
		return gorm.ErrDuplicatedKey
	}
	t.rows[b.ID] = *row
	return nil
}

// modify applies fn to a stored row in place
func (t *table[T]) modify(id uuid.UUID, fn func(*T)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	fn(&row)
	t.rows[id] = row
	return nil
}

// remove deletes a row; a missing id is not an error, matching gorm Delete
func (t *table[T]) remove(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

func (t *table[T]) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = make(map[uuid.UUID]T)
	t.order = nil
}

// list returns copies of the rows matching keep, in insertion order. A nil keep matches all.
func (t *table[T]) list(keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(&row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *table[T]) count(keep func(*T) bool) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var n int64
	for _, row := range t.rows {
		if keep(&row) {
			n++
		}
	}
	return n
}
