package cachorros

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-web-api/internal/domain/racas"
	"pet-web-api/internal/domain/users"
	"pet-web-api/internal/httpx"
	"pet-web-api/internal/validator"

	"github.com/go-chi/chi/v5"
)

const (
	msgDadosIncompletos   = "Dados incompletos para cadastro de cachorro."
	msgNaoEncontrado      = "Cachorro não encontrado."
	msgUserNaoEncontrado  = "Usuário não encontrado."
	msgRacaNaoEncontrada  = "Raça não encontrada."
	msgJaRegistrado       = "Cachorro já registrado para este usuário."
	msgRemovidoComSucesso = "Cachorro removido com sucesso."
)

// RegisterRoutes registra as rotas de cachorros, incluindo as aninhadas em
// /usuarios. As checagens de existência de dono/raça são feitas aqui nos
// handlers, usando os serviços dos outros módulos.
func RegisterRoutes(r chi.Router, svc *Service, usersSvc *users.Service, racasSvc *racas.Service) {
	r.Route("/cachorros", func(cr chi.Router) {
		cr.Post("/", createCachorroHandler(svc, usersSvc, racasSvc))
		cr.Get("/{cachorroID}", getCachorroByIDHandler(svc, racasSvc))
		cr.Put("/{cachorroID}", updateCachorroHandler(svc, usersSvc, racasSvc))
		cr.Delete("/{cachorroID}", deleteCachorroHandler(svc))
	})

	r.Get("/usuarios/{userID}/cachorros", listCachorrosByUserHandler(svc, usersSvc, racasSvc))
	r.Get("/usuarios/{userID}/cachorros/{nomePet}", getCachorroByUserAndNomeHandler(svc, usersSvc, racasSvc))
}

type createCachorroRequest struct {
	NomePet   string   `json:"nome_pet" validate:"required"`
	UserID    int64    `json:"user_id" validate:"required"`
	RacaID    int64    `json:"raca_id" validate:"required"`
	Idade     *int     `json:"idade"`
	Peso      *float64 `json:"peso"`
	InfoExtra *string  `json:"info_extra"`
}

type updateCachorroRequest struct {
	// Ponteiros para update parcial: campo ausente = não alterar.
	NomePet   *string  `json:"nome_pet"`
	Idade     *int     `json:"idade"`
	Peso      *float64 `json:"peso"`
	InfoExtra *string  `json:"info_extra"`
	UserID    *int64   `json:"user_id"`
	RacaID    *int64   `json:"raca_id"`
}

type cachorroResponse struct {
	ID           int64           `json:"id"`
	NomePet      string          `json:"nome_pet"`
	Idade        *int            `json:"idade"`
	Peso         *float64        `json:"peso"`
	InfoExtra    *string         `json:"info_extra"`
	DataRegistro time.Time       `json:"data_registro"`
	UserID       int64           `json:"user_id"`
	RacaID       int64           `json:"raca_id"`
	Breed        *racas.Response `json:"breed,omitempty"`
}

// conflictResponse é o corpo do 409 de cadastro duplicado: devolve o
// registro já existente (com a raça) em vez de só uma mensagem genérica.
type conflictResponse struct {
	Message  string           `json:"message"`
	Cachorro cachorroResponse `json:"cachorro"`
}

func toCachorroResponse(c Cachorro, breed *racas.Raca) cachorroResponse {
	resp := cachorroResponse{
		ID:           c.ID,
		NomePet:      c.NomePet,
		Idade:        c.Idade,
		Peso:         c.Peso,
		InfoExtra:    c.InfoExtra,
		DataRegistro: c.DataRegistro,
		UserID:       c.UserID,
		RacaID:       c.RacaID,
	}
	if breed != nil {
		b := racas.ToResponse(*breed)
		resp.Breed = &b
	}
	return resp
}

// withBreed busca a raça do cachorro para embutir na resposta.
// Se a raça não existir (dado órfão), a resposta sai sem o campo breed.
func withBreed(r *http.Request, racasSvc *racas.Service, c Cachorro) cachorroResponse {
	rc, err := racasSvc.GetByID(r.Context(), c.RacaID)
	if err != nil {
		return toCachorroResponse(c, nil)
	}
	return toCachorroResponse(c, &rc)
}

// createCachorroHandler godoc
// @Summary Cadastrar cachorro
// @Description Registra um cachorro para um usuário. Ordem de validação: campos obrigatórios, dono existe, raça existe, duplicidade (dono, nome_pet). No conflito o corpo inclui o registro existente.
// @Tags cachorros
// @Accept json
// @Produce json
// @Param payload body createCachorroRequest true "Dados do cachorro"
// @Success 201 {object} cachorroResponse
// @Failure 400 {object} httpx.Message "dados incompletos"
// @Failure 404 {object} httpx.Message "usuário ou raça não encontrados"
// @Failure 409 {object} conflictResponse "já registrado para este usuário"
// @Router /cachorros [post]
func createCachorroHandler(svc *Service, usersSvc *users.Service, racasSvc *racas.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCachorroRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, msgDadosIncompletos)
			return
		}
		if err := validator.GetValidator().Struct(req); err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, msgDadosIncompletos)
			return
		}

		if _, err := usersSvc.GetByID(r.Context(), req.UserID); err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgUserNaoEncontrado)
			return
		}
		breed, err := racasSvc.GetByID(r.Context(), req.RacaID)
		if err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgRacaNaoEncontrada)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			NomePet:   req.NomePet,
			UserID:    req.UserID,
			RacaID:    req.RacaID,
			Idade:     req.Idade,
			Peso:      req.Peso,
			InfoExtra: req.InfoExtra,
		})
		switch {
		case errors.Is(err, ErrDuplicado):
			// Devolve o registro existente junto com o conflito.
			existente, gerr := svc.GetByOwnerAndNome(r.Context(), req.UserID, req.NomePet)
			if gerr != nil {
				httpx.WriteMessage(w, http.StatusConflict, msgJaRegistrado)
				return
			}
			httpx.WriteJSON(w, http.StatusConflict, conflictResponse{
				Message:  msgJaRegistrado,
				Cachorro: withBreed(r, racasSvc, existente),
			})
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteMessage(w, http.StatusBadRequest, msgDadosIncompletos)
		case err != nil:
			httpx.WriteMessage(w, http.StatusInternalServerError, "Erro interno.")
		default:
			httpx.WriteJSON(w, http.StatusCreated, toCachorroResponse(c, &breed))
		}
	}
}

func getCachorroByIDHandler(svc *Service, racasSvc *racas.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseCachorroID(w, r)
		if !ok {
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, withBreed(r, racasSvc, c))
	}
}

func updateCachorroHandler(svc *Service, usersSvc *users.Service, racasSvc *racas.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseCachorroID(w, r)
		if !ok {
			return
		}
		if _, err := svc.GetByID(r.Context(), id); err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
			return
		}

		var req updateCachorroRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		// Troca de raça ou de dono exige que o novo registro exista.
		if req.RacaID != nil {
			if _, err := racasSvc.GetByID(r.Context(), *req.RacaID); err != nil {
				httpx.WriteMessage(w, http.StatusNotFound, msgRacaNaoEncontrada)
				return
			}
		}
		if req.UserID != nil {
			if _, err := usersSvc.GetByID(r.Context(), *req.UserID); err != nil {
				httpx.WriteMessage(w, http.StatusNotFound, msgUserNaoEncontrado)
				return
			}
		}

		c, err := svc.Update(r.Context(), id, UpdateInput{
			NomePet:   req.NomePet,
			Idade:     req.Idade,
			Peso:      req.Peso,
			InfoExtra: req.InfoExtra,
			UserID:    req.UserID,
			RacaID:    req.RacaID,
		})
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
		case errors.Is(err, ErrDuplicado):
			httpx.WriteMessage(w, http.StatusConflict, msgJaRegistrado)
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteMessage(w, http.StatusBadRequest, msgDadosIncompletos)
		case err != nil:
			httpx.WriteMessage(w, http.StatusInternalServerError, "Erro interno.")
		default:
			httpx.WriteJSON(w, http.StatusOK, withBreed(r, racasSvc, c))
		}
	}
}

func deleteCachorroHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseCachorroID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
			return
		}
		httpx.WriteMessage(w, http.StatusOK, msgRemovidoComSucesso)
	}
}

// listCachorrosByUserHandler godoc
// @Summary Listar cachorros de um usuário
// @Tags cachorros
// @Produce json
// @Param userID path int true "ID do usuário"
// @Success 200 {array} cachorroResponse
// @Failure 404 {object} httpx.Message "usuário não encontrado"
// @Router /usuarios/{userID}/cachorros [get]
func listCachorrosByUserHandler(svc *Service, usersSvc *users.Service, racasSvc *racas.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parsePathID(w, r, "userID", msgUserNaoEncontrado)
		if !ok {
			return
		}
		if _, err := usersSvc.GetByID(r.Context(), userID); err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgUserNaoEncontrado)
			return
		}

		items, err := svc.ListByOwner(r.Context(), userID)
		if err != nil {
			httpx.WriteMessage(w, http.StatusInternalServerError, "Erro interno.")
			return
		}

		out := make([]cachorroResponse, 0, len(items))
		for _, c := range items {
			out = append(out, withBreed(r, racasSvc, c))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getCachorroByUserAndNomeHandler busca pelo nome exato do pet.
// Diferente da busca de raça por slug, aqui não há normalização nenhuma:
// o match é case-sensitive, como cadastrado.
func getCachorroByUserAndNomeHandler(svc *Service, usersSvc *users.Service, racasSvc *racas.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := parsePathID(w, r, "userID", msgUserNaoEncontrado)
		if !ok {
			return
		}
		if _, err := usersSvc.GetByID(r.Context(), userID); err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgUserNaoEncontrado)
			return
		}

		c, err := svc.GetByOwnerAndNome(r.Context(), userID, chi.URLParam(r, "nomePet"))
		if err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, withBreed(r, racasSvc, c))
	}
}

func parseCachorroID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return parsePathID(w, r, "cachorroID", msgNaoEncontrado)
}

func parsePathID(w http.ResponseWriter, r *http.Request, param, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteMessage(w, http.StatusNotFound, notFoundMsg)
		return 0, false
	}
	return id, true
}
