package users_test

import (
	"context"
	"testing"

	"pet-web-api/internal/adapters/storage/memory"
	"pet-web-api/internal/domain/cachorros"
	"pet-web-api/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() (*users.Service, *memory.CachorrosRepo) {
	dogs := memory.NewCachorrosRepo()
	return users.NewService(memory.NewUsersRepo(dogs)), dogs
}

func TestCreate_RequiredFields(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, users.CreateInput{Email: "ana@x.com"})
	assert.ErrorIs(t, err, users.ErrInvalidInput)

	_, err = svc.Create(ctx, users.CreateInput{NomeCompleto: "Ana"})
	assert.ErrorIs(t, err, users.ErrInvalidInput)

	// nada deve ter sido persistido
	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_SetsUTCTimestamp(t *testing.T) {
	svc, _ := newService()

	u, err := svc.Create(context.Background(), users.CreateInput{NomeCompleto: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.False(t, u.DataCadastro.IsZero())
	assert.Equal(t, "UTC", u.DataCadastro.Location().String())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, users.CreateInput{NomeCompleto: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, users.CreateInput{NomeCompleto: "Outra Ana", Email: "ana@x.com"})
	assert.ErrorIs(t, err, users.ErrEmailEmUso)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdate_Partial(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	u, err := svc.Create(ctx, users.CreateInput{NomeCompleto: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)

	tel := "(11) 99999-0000"
	got, err := svc.Update(ctx, u.ID, users.UpdateInput{Telefone: &tel})
	require.NoError(t, err)

	// só o telefone muda; nome e e-mail ficam como estavam
	assert.Equal(t, "Ana", got.NomeCompleto)
	assert.Equal(t, "ana@x.com", got.Email)
	require.NotNil(t, got.Telefone)
	assert.Equal(t, tel, *got.Telefone)
}

func TestUpdate_EmailConflict(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, users.CreateInput{NomeCompleto: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, users.CreateInput{NomeCompleto: "Bia", Email: "bia@x.com"})
	require.NoError(t, err)

	email := "ana@x.com"
	_, err = svc.Update(ctx, b.ID, users.UpdateInput{Email: &email})
	assert.ErrorIs(t, err, users.ErrEmailEmUso)

	// atualizar mantendo o próprio e-mail não conflita
	own := "bia@x.com"
	_, err = svc.Update(ctx, b.ID, users.UpdateInput{Email: &own})
	assert.NoError(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newService()

	nome := "X"
	_, err := svc.Update(context.Background(), 123, users.UpdateInput{NomeCompleto: &nome})
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestDelete_CascadesToDogs(t *testing.T) {
	svc, dogsRepo := newService()
	dogsSvc := cachorros.NewService(dogsRepo)
	ctx := context.Background()

	u, err := svc.Create(ctx, users.CreateInput{NomeCompleto: "Ana", Email: "ana@x.com"})
	require.NoError(t, err)

	rex, err := dogsSvc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: u.ID, RacaID: 1})
	require.NoError(t, err)
	_, err = dogsSvc.Create(ctx, cachorros.CreateInput{NomePet: "Bob", UserID: u.ID, RacaID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))

	_, err = svc.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, users.ErrNotFound)

	// nenhum cachorro órfão sobra
	_, err = dogsSvc.GetByID(ctx, rex.ID)
	assert.ErrorIs(t, err, cachorros.ErrNotFound)
	list, err := dogsSvc.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
