// Package memory implementa os repositórios em mapas na memória.
// É o modo usado em desenvolvimento sem banco e nos testes; as regras de
// unicidade são as mesmas que o schema do Postgres impõe.
package memory

import (
	"context"
	"sync"

	"pet-web-api/internal/domain/racas"
)

type RacasRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]racas.Raca
}

func NewRacasRepo() *RacasRepo {
	return &RacasRepo{byID: make(map[int64]racas.Raca)}
}

// Seed carrega o catálogo de raças, pulando nomes já cadastrados
// (mesmo comportamento do seeder de banco).
func (r *RacasRepo) Seed(items []racas.Raca) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rc := range items {
		if r.nomeExistsLocked(rc.Nome) {
			continue
		}
		r.nextID++
		rc.ID = r.nextID
		r.byID[rc.ID] = rc
	}
}

func (r *RacasRepo) List(ctx context.Context) ([]racas.Raca, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]racas.Raca, 0, len(r.byID))
	for _, rc := range r.byID {
		out = append(out, rc)
	}
	return out, nil
}

func (r *RacasRepo) GetByID(ctx context.Context, id int64) (racas.Raca, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rc, ok := r.byID[id]
	if !ok {
		return racas.Raca{}, racas.ErrNotFound
	}
	return rc, nil
}

func (r *RacasRepo) GetByNome(ctx context.Context, nome string) (racas.Raca, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rc := range r.byID {
		if rc.Nome == nome {
			return rc, nil
		}
	}
	return racas.Raca{}, racas.ErrNotFound
}

func (r *RacasRepo) nomeExistsLocked(nome string) bool {
	for _, rc := range r.byID {
		if rc.Nome == nome {
			return true
		}
	}
	return false
}
