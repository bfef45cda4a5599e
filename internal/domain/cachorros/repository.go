package cachorros

import "context"

type Repository interface {
	Create(ctx context.Context, c Cachorro) (Cachorro, error)
	GetByID(ctx context.Context, id int64) (Cachorro, error)

	// GetByOwnerAndNome faz match exato e case-sensitive do nome do pet.
	GetByOwnerAndNome(ctx context.Context, userID int64, nomePet string) (Cachorro, error)

	ListByOwner(ctx context.Context, userID int64) ([]Cachorro, error)
	Update(ctx context.Context, c Cachorro) error
	Delete(ctx context.Context, id int64) error
}
