package memory

import (
	"context"

	"pet-web-api/internal/domain/users"
)

// UsersRepo compartilha o mutex do repositório de cachorros: remover o
// usuário e cascatear os cachorros dele acontece numa seção crítica só,
// como o ON DELETE CASCADE faz no Postgres.
type UsersRepo struct {
	nextID int64
	byID   map[int64]users.User

	dogs *CachorrosRepo
}

func NewUsersRepo(dogs *CachorrosRepo) *UsersRepo {
	return &UsersRepo{
		byID: make(map[int64]users.User),
		dogs: dogs,
	}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.dogs.mu.Lock()
	defer r.dogs.mu.Unlock()

	if r.emailExistsLocked(u.Email, 0) {
		return users.User{}, users.ErrEmailEmUso
	}

	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.dogs.mu.RLock()
	defer r.dogs.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.dogs.mu.RLock()
	defer r.dogs.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	r.dogs.mu.RLock()
	defer r.dogs.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	r.dogs.mu.Lock()
	defer r.dogs.mu.Unlock()

	if _, ok := r.byID[u.ID]; !ok {
		return users.ErrNotFound
	}
	if r.emailExistsLocked(u.Email, u.ID) {
		return users.ErrEmailEmUso
	}
	r.byID[u.ID] = u
	return nil
}

// Delete remove o usuário e os cachorros dele sob o mesmo lock: nenhum
// leitor observa o usuário removido com cachorros ainda presentes.
func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	r.dogs.mu.Lock()
	defer r.dogs.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return users.ErrNotFound
	}
	delete(r.byID, id)
	r.dogs.deleteByOwnerLocked(id)
	return nil
}

func (r *UsersRepo) emailExistsLocked(email string, excludeID int64) bool {
	for _, u := range r.byID {
		if u.Email == email && u.ID != excludeID {
			return true
		}
	}
	return false
}
