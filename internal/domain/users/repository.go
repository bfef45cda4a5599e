package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error

	// Delete remove o usuário e, em cascata, todos os cachorros dele.
	Delete(ctx context.Context, id int64) error
}
