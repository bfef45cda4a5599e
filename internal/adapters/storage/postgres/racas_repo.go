package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-web-api/internal/domain/racas"
)

type RacasRepo struct {
	db *sql.DB
}

func NewRacasRepo(db *sql.DB) *RacasRepo {
	return &RacasRepo{db: db}
}

const racaColumns = `
	id, nome, porte, grupo, imagem, cuidados, comportamento, racao
`

func (r *RacasRepo) List(ctx context.Context) ([]racas.Raca, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+racaColumns+` FROM raca`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]racas.Raca, 0)
	for rows.Next() {
		rc, err := scanRaca(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

func (r *RacasRepo) GetByID(ctx context.Context, id int64) (racas.Raca, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *RacasRepo) GetByNome(ctx context.Context, nome string) (racas.Raca, error) {
	return r.get(ctx, `WHERE nome = $1`, nome)
}

func (r *RacasRepo) get(ctx context.Context, where string, arg any) (racas.Raca, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+racaColumns+` FROM raca `+where, arg)

	rc, err := scanRaca(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return racas.Raca{}, racas.ErrNotFound
		}
		return racas.Raca{}, err
	}
	return rc, nil
}

// Upsert insere uma raça do catálogo, ignorando nomes já cadastrados.
// Só o seeder usa isso; a API não muta raças.
func (r *RacasRepo) Upsert(ctx context.Context, rc racas.Raca) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO raca (nome, porte, grupo, imagem, cuidados, comportamento, racao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (nome) DO NOTHING
	`,
		rc.Nome,
		toNullString(rc.Porte),
		toNullString(rc.Grupo),
		toNullString(rc.Imagem),
		toNullString(rc.Cuidados),
		toNullString(rc.Comportamento),
		toNullString(rc.Racao),
	)
	return err
}

// colunas NULL viram ponteiro nil, preservando o null no JSON da API
func scanRaca(s scanner) (racas.Raca, error) {
	var rc racas.Raca
	var porte, grupo, imagem, cuidados, comportamento, racao sql.NullString

	err := s.Scan(&rc.ID, &rc.Nome, &porte, &grupo, &imagem, &cuidados, &comportamento, &racao)
	if err != nil {
		return racas.Raca{}, err
	}

	rc.Porte = fromNullString(porte)
	rc.Grupo = fromNullString(grupo)
	rc.Imagem = fromNullString(imagem)
	rc.Cuidados = fromNullString(cuidados)
	rc.Comportamento = fromNullString(comportamento)
	rc.Racao = fromNullString(racao)
	return rc, nil
}

func fromNullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
