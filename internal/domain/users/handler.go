package users

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pet-web-api/internal/httpx"
	"pet-web-api/internal/validator"

	"github.com/go-chi/chi/v5"
)

const (
	msgDadosIncompletos = "Dados incompletos para cadastro de usuário."
	msgEmailCadastrado  = "Este e-mail já está cadastrado."
	msgNaoEncontrado    = "Usuário não encontrado."
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/usuarios", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc))
		ur.Get("/", listUsersHandler(svc))

		// rota estática antes da rota com parâmetro
		ur.Get("/email/{email}", getUserByEmailHandler(svc))

		ur.Get("/{userID}", getUserByIDHandler(svc))
		ur.Put("/{userID}", updateUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

type createUserRequest struct {
	NomeCompleto string  `json:"nome_completo" validate:"required"`
	Email        string  `json:"email" validate:"required,email"`
	Telefone     *string `json:"telefone"`
}

type updateUserRequest struct {
	// Ponteiros para update parcial: campo ausente = não alterar.
	NomeCompleto *string `json:"nome_completo"`
	Email        *string `json:"email"`
	Telefone     *string `json:"telefone"`
}

type userResponse struct {
	ID           int64     `json:"id"`
	NomeCompleto string    `json:"nome_completo"`
	Email        string    `json:"email"`
	Telefone     *string   `json:"telefone"`
	DataCadastro time.Time `json:"data_cadastro"`
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:           u.ID,
		NomeCompleto: u.NomeCompleto,
		Email:        u.Email,
		Telefone:     u.Telefone,
		DataCadastro: u.DataCadastro,
	}
}

// createUserHandler godoc
// @Summary Cadastrar usuário
// @Description Cria um novo usuário. `nome_completo` e `email` são obrigatórios; `telefone` é opcional.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param payload body createUserRequest true "Dados do usuário"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpx.Message "dados incompletos"
// @Failure 409 {object} httpx.Message "e-mail já cadastrado"
// @Router /usuarios [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, msgDadosIncompletos)
			return
		}
		if err := validator.GetValidator().Struct(req); err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, msgDadosIncompletos)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			NomeCompleto: req.NomeCompleto,
			Email:        req.Email,
			Telefone:     req.Telefone,
		})
		switch {
		case errors.Is(err, ErrEmailEmUso):
			httpx.WriteMessage(w, http.StatusConflict, msgEmailCadastrado)
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteMessage(w, http.StatusBadRequest, msgDadosIncompletos)
		case err != nil:
			httpx.WriteMessage(w, http.StatusInternalServerError, "Erro interno.")
		default:
			httpx.WriteJSON(w, http.StatusCreated, toUserResponse(u))
		}
	}
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteMessage(w, http.StatusInternalServerError, "Erro interno.")
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

func getUserByIDHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseUserID(w, r)
		if !ok {
			return
		}

		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

// getUserByEmailHandler godoc
// @Summary Buscar usuário por e-mail
// @Tags usuarios
// @Produce json
// @Param email path string true "E-mail do usuário"
// @Success 200 {object} userResponse
// @Failure 404 {object} httpx.Message
// @Router /usuarios/email/{email} [get]
func getUserByEmailHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByEmail(r.Context(), chi.URLParam(r, "email"))
		if err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseUserID(w, r)
		if !ok {
			return
		}

		var req updateUserRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteMessage(w, http.StatusBadRequest, "JSON inválido.")
			return
		}

		u, err := svc.Update(r.Context(), id, UpdateInput{
			NomeCompleto: req.NomeCompleto,
			Email:        req.Email,
			Telefone:     req.Telefone,
		})
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
		case errors.Is(err, ErrEmailEmUso):
			httpx.WriteMessage(w, http.StatusConflict, msgEmailCadastrado)
		case errors.Is(err, ErrInvalidInput):
			httpx.WriteMessage(w, http.StatusBadRequest, msgDadosIncompletos)
		case err != nil:
			httpx.WriteMessage(w, http.StatusInternalServerError, "Erro interno.")
		default:
			httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
		}
	}
}

// deleteUserHandler godoc
// @Summary Remover usuário
// @Description Remove o usuário e todos os cachorros dele (cascade).
// @Tags usuarios
// @Produce json
// @Param userID path int true "ID do usuário"
// @Success 200 {object} httpx.Message
// @Failure 404 {object} httpx.Message
// @Router /usuarios/{userID} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseUserID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
			return
		}
		httpx.WriteMessage(w, http.StatusOK, "Usuário removido com sucesso.")
	}
}

// parseUserID lê o {userID} da rota. ID não numérico vira 404, igual ao
// comportamento de um conversor de rota que não casa.
func parseUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteMessage(w, http.StatusNotFound, msgNaoEncontrado)
		return 0, false
	}
	return id, true
}
