package users

import "time"

// User é um usuário cadastrado, dono de zero ou mais cachorros.
// Excluir um usuário remove também os cachorros dele (cascade).
type User struct {
	ID           int64
	NomeCompleto string
	Email        string // único no sistema
	Telefone     *string
	DataCadastro time.Time // sempre em UTC
}
