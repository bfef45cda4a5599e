package racas

import (
	"net/http"

	"pet-web-api/internal/httpx"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/racas", func(rr chi.Router) {
		rr.Get("/", listRacasHandler(svc))
		rr.Get("/{slug}", getRacaBySlugHandler(svc))
	})
}

// Response é a representação JSON de uma raça.
// Exportado porque o módulo de cachorros embute a raça nas suas respostas.
// Campos opcionais ausentes saem como null, não como string vazia.
type Response struct {
	ID            int64   `json:"id"`
	Nome          string  `json:"nome"`
	Porte         *string `json:"porte"`
	Grupo         *string `json:"grupo"`
	Imagem        *string `json:"imagem"`
	Cuidados      *string `json:"cuidados"`
	Comportamento *string `json:"comportamento"`
	Racao         *string `json:"racao"`
}

func ToResponse(rc Raca) Response {
	return Response{
		ID:            rc.ID,
		Nome:          rc.Nome,
		Porte:         rc.Porte,
		Grupo:         rc.Grupo,
		Imagem:        rc.Imagem,
		Cuidados:      rc.Cuidados,
		Comportamento: rc.Comportamento,
		Racao:         rc.Racao,
	}
}

// listRacasHandler godoc
// @Summary Listar raças
// @Description Retorna todas as raças do catálogo, sem ordem garantida.
// @Tags racas
// @Produce json
// @Success 200 {array} Response
// @Router /racas [get]
func listRacasHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteMessage(w, http.StatusInternalServerError, "Erro interno.")
			return
		}

		out := make([]Response, 0, len(items))
		for _, rc := range items {
			out = append(out, ToResponse(rc))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// getRacaBySlugHandler godoc
// @Summary Buscar raça pelo slug
// @Description Busca uma raça pelo nome em forma de slug (ex: "bulldog-frances").
// @Tags racas
// @Produce json
// @Param slug path string true "Nome da raça em forma de slug"
// @Success 200 {object} Response
// @Failure 404 {object} httpx.Message
// @Router /racas/{slug} [get]
func getRacaBySlugHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc, err := svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			httpx.WriteMessage(w, http.StatusNotFound, "Raça não encontrada.")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToResponse(rc))
	}
}
