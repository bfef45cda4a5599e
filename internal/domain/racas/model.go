package racas

// Raca é um registro de referência de raça de cachorro.
// O catálogo é carregado via seed; a API só oferece leitura.
// Só o nome é obrigatório; os demais campos são opcionais e saem como
// null no JSON quando ausentes.
type Raca struct {
	ID   int64
	Nome string

	Porte *string // Pequeno, Médio, Grande
	Grupo *string // Companhia, Farejadores, Trabalho...

	Imagem        *string // nome do arquivo de imagem usado pelo frontend
	Cuidados      *string
	Comportamento *string
	Racao         *string
}
