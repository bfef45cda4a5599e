package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pet-web-api/internal/adapters/storage/memory"
	"pet-web-api/internal/domain/cachorros"
	"pet-web-api/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Remover o usuário e cascatear os cachorros acontece sob o mesmo lock:
// um leitor que já não vê o usuário também não pode ver cachorro dele.
func TestDelete_CascadeIsAtomic(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		dogs := memory.NewCachorrosRepo()
		repo := memory.NewUsersRepo(dogs)

		u, err := repo.Create(ctx, users.User{NomeCompleto: "Ana", Email: fmt.Sprintf("ana%d@x.com", i)})
		require.NoError(t, err)
		_, err = dogs.Create(ctx, cachorros.Cachorro{NomePet: "Rex", UserID: u.ID, RacaID: 1})
		require.NoError(t, err)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = repo.Delete(ctx, u.ID)
		}()

		for {
			if _, err := repo.GetByID(ctx, u.ID); errors.Is(err, users.ErrNotFound) {
				list, lerr := dogs.ListByOwner(ctx, u.ID)
				require.NoError(t, lerr)
				assert.Empty(t, list, "usuário removido não pode ter cachorros sobrando")
				break
			}
		}
		<-done
	}
}

func TestDelete_OnlyOwnDogsRemoved(t *testing.T) {
	ctx := context.Background()
	dogs := memory.NewCachorrosRepo()
	repo := memory.NewUsersRepo(dogs)

	ana, err := repo.Create(ctx, users.User{NomeCompleto: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)
	bia, err := repo.Create(ctx, users.User{NomeCompleto: "Bia", Email: "bia@x.com"})
	require.NoError(t, err)

	_, err = dogs.Create(ctx, cachorros.Cachorro{NomePet: "Rex", UserID: ana.ID, RacaID: 1})
	require.NoError(t, err)
	bob, err := dogs.Create(ctx, cachorros.Cachorro{NomePet: "Bob", UserID: bia.ID, RacaID: 1})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, ana.ID))

	_, err = dogs.GetByID(ctx, bob.ID)
	assert.NoError(t, err, "cachorro de outro dono não pode cair no cascade")
}
