package racas

import "context"

type Repository interface {
	List(ctx context.Context) ([]Raca, error)
	GetByID(ctx context.Context, id int64) (Raca, error)
	GetByNome(ctx context.Context, nome string) (Raca, error)
}
