package memory

import (
	"animal-training/internal/platform/pagination"
	"animal-training/internal/ports/store"
)

// ordered guarda registros por id y recuerda el orden de inserción,
// que es el orden natural de los listados. No es seguro para uso concurrente:
// cada repo lo protege con su propio mutex.
type ordered[T any] struct {
	order []string
	byID  map[string]T
}

func newOrdered[T any]() ordered[T] {
	return ordered[T]{byID: make(map[string]T)}
}

func (o *ordered[T]) insert(id string, v T) {
	o.byID[id] = v
	o.order = append(o.order, id)
}

func (o *ordered[T]) get(id string) (T, error) {
	v, ok := o.byID[id]
	if !ok {
		var zero T
		return zero, store.ErrNotFound
	}
	return v, nil
}

func (o *ordered[T]) has(id string) bool {
	_, ok := o.byID[id]
	return ok
}

func (o *ordered[T]) page(p pagination.Page) []T {
	start := p.Offset()
	if start < 0 || start >= len(o.order) {
		return []T{}
	}
	end := len(o.order)
	if p.Limit < end-start {
		end = start + p.Limit
	}

	out := make([]T, 0, end-start)
	for _, id := range o.order[start:end] {
		out = append(out, o.byID[id])
	}
	return out
}
