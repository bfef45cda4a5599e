package users

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")
	ErrEmailEmUso   = errors.New("email already registered")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	NomeCompleto string
	Email        string
	Telefone     *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	if strings.TrimSpace(in.NomeCompleto) == "" {
		return User{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Email) == "" {
		return User{}, ErrInvalidInput
	}

	// Checagem de duplicidade; a constraint UNIQUE do banco é quem decide
	// de verdade (o repo mapeia a violação para ErrEmailEmUso).
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return User{}, ErrEmailEmUso
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	u := User{
		NomeCompleto: strings.TrimSpace(in.NomeCompleto),
		Email:        strings.TrimSpace(in.Email),
		Telefone:     in.Telefone,
		DataCadastro: s.now().UTC(),
	}
	return s.repo.Create(ctx, u)
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// UpdateInput usa ponteiros para update parcial: nil = não alterar.
type UpdateInput struct {
	NomeCompleto *string
	Email        *string
	Telefone     *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.NomeCompleto != nil {
		if strings.TrimSpace(*in.NomeCompleto) == "" {
			return User{}, ErrInvalidInput
		}
		u.NomeCompleto = strings.TrimSpace(*in.NomeCompleto)
	}
	if in.Email != nil {
		novo := strings.TrimSpace(*in.Email)
		if novo == "" {
			return User{}, ErrInvalidInput
		}
		if novo != u.Email {
			if outro, err := s.repo.GetByEmail(ctx, novo); err == nil && outro.ID != id {
				return User{}, ErrEmailEmUso
			} else if err != nil && !errors.Is(err, ErrNotFound) {
				return User{}, err
			}
		}
		u.Email = novo
	}
	if in.Telefone != nil {
		u.Telefone = in.Telefone
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
