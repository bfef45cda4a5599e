package cachorros_test

import (
	"context"
	"testing"

	"pet-web-api/internal/adapters/storage/memory"
	"pet-web-api/internal/domain/cachorros"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *cachorros.Service {
	return cachorros.NewService(memory.NewCachorrosRepo())
}

func TestCreate_RequiredFields(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, cachorros.CreateInput{UserID: 1, RacaID: 1})
	assert.ErrorIs(t, err, cachorros.ErrInvalidInput)

	_, err = svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", RacaID: 1})
	assert.ErrorIs(t, err, cachorros.ErrInvalidInput)

	_, err = svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: 1})
	assert.ErrorIs(t, err, cachorros.ErrInvalidInput)
}

func TestCreate_DuplicatePairPerOwner(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: 1, RacaID: 1})
	require.NoError(t, err)

	// mesmo dono, mesmo nome: conflito
	_, err = svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: 1, RacaID: 2})
	assert.ErrorIs(t, err, cachorros.ErrDuplicado)

	// outro dono pode ter um Rex
	_, err = svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: 2, RacaID: 1})
	assert.NoError(t, err)

	// mesmo dono, outro nome
	_, err = svc.Create(ctx, cachorros.CreateInput{NomePet: "Bob", UserID: 1, RacaID: 1})
	assert.NoError(t, err)
}

func TestGetByOwnerAndNome_CaseSensitive(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: 1, RacaID: 1})
	require.NoError(t, err)

	// diferente da busca de raça por slug, aqui não há normalização
	got, err := svc.GetByOwnerAndNome(ctx, 1, "Rex")
	require.NoError(t, err)
	assert.Equal(t, "Rex", got.NomePet)

	_, err = svc.GetByOwnerAndNome(ctx, 1, "rex")
	assert.ErrorIs(t, err, cachorros.ErrNotFound)
}

func TestUpdate_Partial(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	idade := 3
	c, err := svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: 1, RacaID: 1, Idade: &idade})
	require.NoError(t, err)

	peso := 12.5
	got, err := svc.Update(ctx, c.ID, cachorros.UpdateInput{Peso: &peso})
	require.NoError(t, err)

	assert.Equal(t, "Rex", got.NomePet)
	require.NotNil(t, got.Idade)
	assert.Equal(t, 3, *got.Idade)
	require.NotNil(t, got.Peso)
	assert.Equal(t, 12.5, *got.Peso)
}

func TestUpdate_RenameCollision(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: 1, RacaID: 1})
	require.NoError(t, err)
	bob, err := svc.Create(ctx, cachorros.CreateInput{NomePet: "Bob", UserID: 1, RacaID: 1})
	require.NoError(t, err)

	nome := "Rex"
	_, err = svc.Update(ctx, bob.ID, cachorros.UpdateInput{NomePet: &nome})
	assert.ErrorIs(t, err, cachorros.ErrDuplicado)

	// renomear para o próprio nome não conflita
	own := "Bob"
	_, err = svc.Update(ctx, bob.ID, cachorros.UpdateInput{NomePet: &own})
	assert.NoError(t, err)
}

func TestDelete(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	c, err := svc.Create(ctx, cachorros.CreateInput{NomePet: "Rex", UserID: 1, RacaID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), cachorros.ErrNotFound)
}
