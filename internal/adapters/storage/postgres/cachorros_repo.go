package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-web-api/internal/domain/cachorros"
)

type CachorrosRepo struct {
	db *sql.DB
}

func NewCachorrosRepo(db *sql.DB) *CachorrosRepo {
	return &CachorrosRepo{db: db}
}

func (r *CachorrosRepo) Create(ctx context.Context, c cachorros.Cachorro) (cachorros.Cachorro, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO cachorro (nome_pet, idade, peso, info_extra, data_registro, user_id, raca_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		c.NomePet,
		toNullInt(c.Idade),
		toNullFloat(c.Peso),
		toNullString(c.InfoExtra),
		c.DataRegistro,
		c.UserID,
		c.RacaID,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return cachorros.Cachorro{}, cachorros.ErrDuplicado
		}
		return cachorros.Cachorro{}, err
	}
	return c, nil
}

func (r *CachorrosRepo) GetByID(ctx context.Context, id int64) (cachorros.Cachorro, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByOwnerAndNome: comparação de TEXT no Postgres é case-sensitive, que é
// exatamente o contrato dessa busca.
func (r *CachorrosRepo) GetByOwnerAndNome(ctx context.Context, userID int64, nomePet string) (cachorros.Cachorro, error) {
	return r.get(ctx, `WHERE user_id = $1 AND nome_pet = $2`, userID, nomePet)
}

func (r *CachorrosRepo) get(ctx context.Context, where string, args ...any) (cachorros.Cachorro, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome_pet, idade, peso, info_extra, data_registro, user_id, raca_id
		FROM cachorro `+where, args...)

	c, err := scanCachorro(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cachorros.Cachorro{}, cachorros.ErrNotFound
		}
		return cachorros.Cachorro{}, err
	}
	return c, nil
}

func (r *CachorrosRepo) ListByOwner(ctx context.Context, userID int64) ([]cachorros.Cachorro, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome_pet, idade, peso, info_extra, data_registro, user_id, raca_id
		FROM cachorro
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cachorros.Cachorro, 0)
	for rows.Next() {
		c, err := scanCachorro(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CachorrosRepo) Update(ctx context.Context, c cachorros.Cachorro) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cachorro
		SET nome_pet = $2, idade = $3, peso = $4, info_extra = $5, user_id = $6, raca_id = $7
		WHERE id = $1
	`,
		c.ID,
		c.NomePet,
		toNullInt(c.Idade),
		toNullFloat(c.Peso),
		toNullString(c.InfoExtra),
		c.UserID,
		c.RacaID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return cachorros.ErrDuplicado
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cachorros.ErrNotFound
	}
	return nil
}

func (r *CachorrosRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cachorro WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cachorros.ErrNotFound
	}
	return nil
}

func scanCachorro(s scanner) (cachorros.Cachorro, error) {
	var c cachorros.Cachorro
	var idade sql.NullInt64
	var peso sql.NullFloat64
	var info sql.NullString

	if err := s.Scan(&c.ID, &c.NomePet, &idade, &peso, &info, &c.DataRegistro, &c.UserID, &c.RacaID); err != nil {
		return cachorros.Cachorro{}, err
	}

	if idade.Valid {
		v := int(idade.Int64)
		c.Idade = &v
	}
	if peso.Valid {
		v := peso.Float64
		c.Peso = &v
	}
	if info.Valid {
		v := info.String
		c.InfoExtra = &v
	}
	c.DataRegistro = c.DataRegistro.UTC()
	return c, nil
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
