package router

import (
	"database/sql"
	"net/http"
	"os"

	"pet-web-api/api"
	mem "pet-web-api/internal/adapters/storage/memory"
	pg "pet-web-api/internal/adapters/storage/postgres"
	"pet-web-api/internal/domain/cachorros"
	"pet-web-api/internal/domain/racas"
	"pet-web-api/internal/domain/users"
	"pet-web-api/internal/httpx"
	"pet-web-api/internal/middleware"
	"pet-web-api/internal/platform/logger"
	"pet-web-api/internal/seed"
	"pet-web-api/internal/spa"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Se DB vier nil (e DB_DSN não estiver setado), usa os repositórios
	// em memória com o catálogo de raças pré-carregado.
	DB *sql.DB

	// FrontendDir ativa o catch-all que serve a SPA.
	FrontendDir string

	Logger logger.Logger

	// SeedRacas substitui o catálogo default no modo memória (testes).
	SeedRacas []racas.Raca
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.New(logger.Options{Level: logger.ParseLevel(os.Getenv("LOG_LEVEL"))})
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	// CORS permissivo: o frontend roda em outra origem em desenvolvimento.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))
	r.Use(middleware.Logging(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger UI lendo o swagger.yaml embutido.
	r.Get("/swagger.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.SwaggerYAML)
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger.yaml")))

	var (
		usersRepo     users.Repository
		racasRepo     racas.Repository
		cachorrosRepo cachorros.Repository
	)

	// Se não veio DB explícito, tenta por env (dev/handoff).
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			if opened, err := pg.Open(dsn); err == nil {
				db = opened
			} else {
				log.Error("postgres indisponível, caindo para memória", map[string]any{"err": err.Error()})
			}
		}
	}

	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		racasRepo = pg.NewRacasRepo(db)
		cachorrosRepo = pg.NewCachorrosRepo(db)
	} else {
		dogs := mem.NewCachorrosRepo()
		rr := mem.NewRacasRepo()

		catalogo := opts.SeedRacas
		if catalogo == nil {
			catalogo = seed.Racas()
		}
		rr.Seed(catalogo)

		usersRepo = mem.NewUsersRepo(dogs)
		racasRepo = rr
		cachorrosRepo = dogs
	}

	usersSvc := users.NewService(usersRepo)
	racasSvc := racas.NewService(racasRepo)
	cachorrosSvc := cachorros.NewService(cachorrosRepo)

	racas.RegisterRoutes(r, racasSvc)
	users.RegisterRoutes(r, usersSvc)
	cachorros.RegisterRoutes(r, cachorrosSvc, usersSvc, racasSvc)

	// Catch-all: serve o frontend como SPA quando configurado.
	frontendDir := opts.FrontendDir
	if frontendDir == "" {
		frontendDir = os.Getenv("FRONTEND_DIR")
	}
	if frontendDir != "" {
		r.NotFound(spa.Handler(frontendDir))
	} else {
		r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			httpx.WriteMessage(w, http.StatusNotFound, "Rota não encontrada.")
		})
	}

	return r
}
