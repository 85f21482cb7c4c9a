package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-registry/internal/domain/owners"
)

var (
	ErrNotFound = errors.New("not found")
)

type ownersRepo struct {
	mu   sync.RWMutex
	byID map[string]owners.Owner
}

func NewOwnersRepo() owners.Repository {
	return &ownersRepo{
		byID: make(map[string]owners.Owner),
	}
}

func (r *ownersRepo) Create(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; exists {
		return errors.New("owner already exists")
	}
	r.byID[o.ID] = clone(o)
	return nil
}

func (r *ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("owner id required")
	}
	if _, exists := r.byID[o.ID]; !exists {
		return ErrNotFound
	}
	r.byID[o.ID] = clone(o)
	return nil
}

func (r *ownersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return owners.Owner{}, ErrNotFound
	}
	return clone(o), nil
}

func (r *ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]owners.Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, clone(o))
	}

	// Orden estable por created_at asc (consistencia entre lecturas)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *ownersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// clone copia el slice de direcciones para que el caller no pueda
// mutar lo guardado por referencia compartida.
func clone(o owners.Owner) owners.Owner {
	if len(o.Addresses) > 0 {
		o.Addresses = append([]owners.Address(nil), o.Addresses...)
	}
	return o
}
