package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-web-api/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO usuario (nome_completo, email, telefone, data_cadastro)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		u.NomeCompleto,
		u.Email,
		toNullString(u.Telefone),
		u.DataCadastro,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrEmailEmUso
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) get(ctx context.Context, where string, arg any) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, nome_completo, email, telefone, data_cadastro
		FROM usuario `+where, arg)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, nome_completo, email, telefone, data_cadastro
		FROM usuario
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE usuario
		SET nome_completo = $2, email = $3, telefone = $4
		WHERE id = $1
	`,
		u.ID,
		u.NomeCompleto,
		u.Email,
		toNullString(u.Telefone),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailEmUso
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

// Delete remove o usuário; os cachorros dele caem junto via
// ON DELETE CASCADE, numa única transação implícita.
func (r *UsersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM usuario WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (users.User, error) {
	var u users.User
	var tel sql.NullString
	if err := s.Scan(&u.ID, &u.NomeCompleto, &u.Email, &tel, &u.DataCadastro); err != nil {
		return users.User{}, err
	}
	if tel.Valid {
		t := tel.String
		u.Telefone = &t
	}
	u.DataCadastro = u.DataCadastro.UTC()
	return u, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
