package memory

import (
	"context"
	"sort"
	"sync"

	"pet-web-api/internal/domain/cachorros"
)

type CachorrosRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]cachorros.Cachorro
}

func NewCachorrosRepo() *CachorrosRepo {
	return &CachorrosRepo{byID: make(map[int64]cachorros.Cachorro)}
}

func (r *CachorrosRepo) Create(ctx context.Context, c cachorros.Cachorro) (cachorros.Cachorro, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// mesma regra do UNIQUE (user_id, nome_pet) do schema
	if r.pairExistsLocked(c.UserID, c.NomePet, 0) {
		return cachorros.Cachorro{}, cachorros.ErrDuplicado
	}

	r.nextID++
	c.ID = r.nextID
	r.byID[c.ID] = c
	return c, nil
}

func (r *CachorrosRepo) GetByID(ctx context.Context, id int64) (cachorros.Cachorro, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return cachorros.Cachorro{}, cachorros.ErrNotFound
	}
	return c, nil
}

func (r *CachorrosRepo) GetByOwnerAndNome(ctx context.Context, userID int64, nomePet string) (cachorros.Cachorro, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		// match exato, case-sensitive
		if c.UserID == userID && c.NomePet == nomePet {
			return c, nil
		}
	}
	return cachorros.Cachorro{}, cachorros.ErrNotFound
}

func (r *CachorrosRepo) ListByOwner(ctx context.Context, userID int64) ([]cachorros.Cachorro, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cachorros.Cachorro, 0)
	for _, c := range r.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}

	// ordem estável só para consistência em dev/testes
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CachorrosRepo) Update(ctx context.Context, c cachorros.Cachorro) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; !ok {
		return cachorros.ErrNotFound
	}
	if r.pairExistsLocked(c.UserID, c.NomePet, c.ID) {
		return cachorros.ErrDuplicado
	}
	r.byID[c.ID] = c
	return nil
}

func (r *CachorrosRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return cachorros.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// deleteByOwnerLocked remove todos os cachorros de um usuário; é o braço
// do cascade do repositório de usuários. O chamador já segura r.mu.
func (r *CachorrosRepo) deleteByOwnerLocked(userID int64) {
	for id, c := range r.byID {
		if c.UserID == userID {
			delete(r.byID, id)
		}
	}
}

func (r *CachorrosRepo) pairExistsLocked(userID int64, nomePet string, excludeID int64) bool {
	for _, c := range r.byID {
		if c.UserID == userID && c.NomePet == nomePet && c.ID != excludeID {
			return true
		}
	}
	return false
}
