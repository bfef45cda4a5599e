package cachorros

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("cachorro not found")
	ErrDuplicado    = errors.New("cachorro already registered for this user")
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
	NomePet   string
	UserID    int64
	RacaID    int64
	Idade     *int
	Peso      *float64
	InfoExtra *string
}

// Create registra um cachorro. A existência do dono e da raça é checada na
// camada HTTP (que tem acesso aos outros serviços); aqui validamos os campos
// e a duplicidade (UserID, NomePet). A checagem prévia é só uma otimização:
// quem garante a unicidade numa corrida é a constraint do banco, que o repo
// mapeia para ErrDuplicado.
func (s *Service) Create(ctx context.Context, in CreateInput) (Cachorro, error) {
	if strings.TrimSpace(in.NomePet) == "" || in.UserID <= 0 || in.RacaID <= 0 {
		return Cachorro{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByOwnerAndNome(ctx, in.UserID, in.NomePet); err == nil {
		return Cachorro{}, ErrDuplicado
	} else if !errors.Is(err, ErrNotFound) {
		return Cachorro{}, err
	}

	c := Cachorro{
		NomePet:      in.NomePet,
		Idade:        in.Idade,
		Peso:         in.Peso,
		InfoExtra:    in.InfoExtra,
		DataRegistro: s.now().UTC(),
		UserID:       in.UserID,
		RacaID:       in.RacaID,
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Cachorro, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByOwnerAndNome(ctx context.Context, userID int64, nomePet string) (Cachorro, error) {
	return s.repo.GetByOwnerAndNome(ctx, userID, nomePet)
}

func (s *Service) ListByOwner(ctx context.Context, userID int64) ([]Cachorro, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// UpdateInput usa ponteiros para update parcial: nil = não alterar.
// UserID e RacaID, quando presentes, já chegam validados pela camada HTTP.
type UpdateInput struct {
	NomePet   *string
	Idade     *int
	Peso      *float64
	InfoExtra *string
	UserID    *int64
	RacaID    *int64
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Cachorro, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Cachorro{}, err
	}

	if in.NomePet != nil {
		if strings.TrimSpace(*in.NomePet) == "" {
			return Cachorro{}, ErrInvalidInput
		}
		c.NomePet = *in.NomePet
	}
	if in.Idade != nil {
		c.Idade = in.Idade
	}
	if in.Peso != nil {
		c.Peso = in.Peso
	}
	if in.InfoExtra != nil {
		c.InfoExtra = in.InfoExtra
	}
	if in.UserID != nil {
		c.UserID = *in.UserID
	}
	if in.RacaID != nil {
		c.RacaID = *in.RacaID
	}

	// Renomear (ou trocar de dono) pode colidir com outro registro.
	if in.NomePet != nil || in.UserID != nil {
		if outro, err := s.repo.GetByOwnerAndNome(ctx, c.UserID, c.NomePet); err == nil && outro.ID != c.ID {
			return Cachorro{}, ErrDuplicado
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return Cachorro{}, err
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Cachorro{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
