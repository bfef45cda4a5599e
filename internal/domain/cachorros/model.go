package cachorros

import "time"

// Cachorro é um pet registrado por um usuário.
// Invariante: o par (UserID, NomePet) é único — o mesmo usuário não pode
// registrar dois cachorros com o mesmo nome.
type Cachorro struct {
	ID      int64
	NomePet string

	Idade     *int     // idade em anos, opcional
	Peso      *float64 // peso em kg, opcional
	InfoExtra *string

	DataRegistro time.Time // sempre em UTC

	UserID int64 // dono (FK obrigatória)
	RacaID int64 // raça (FK obrigatória)
}
