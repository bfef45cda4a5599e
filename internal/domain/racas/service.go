package racas

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNotFound = errors.New("raca not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Raca, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Raca, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug busca uma raça pelo slug da URL (ex: "bulldog-frances").
// A busca no repositório é feita pelo nome convertido; o match é exato.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Raca, error) {
	nome := NomeFromSlug(slug)
	if nome == "" {
		return Raca{}, ErrNotFound
	}
	return s.repo.GetByNome(ctx, nome)
}

// NomeFromSlug converte o slug da URL para o nome como está cadastrado:
// hífens viram espaços e cada palavra é capitalizada.
// Ex: "bulldog-frances" -> "Bulldog Frances".
// Nomes com caracteres fora desse esquema não são endereçáveis por slug.
func NomeFromSlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return ""
	}
	t := cases.Title(language.BrazilianPortuguese)
	return t.String(strings.ReplaceAll(slug, "-", " "))
}
