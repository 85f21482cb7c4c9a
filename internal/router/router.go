package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-registry/docs" // registra el spec generado por swag

	mem "pet-registry/internal/adapters/storage/memory"
	pg "pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/domain/owners"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si es nil se crea uno desde env.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	var (
		ownersRepo owners.Repository
		petsRepo   pets.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres open failed, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		ownersRepo = pg.NewOwnersRepo(db)
		petsRepo = pg.NewPetsRepo(db)
	} else {
		ownersRepo = mem.NewOwnersRepo()
		petsRepo = mem.NewPetsRepo()
	}

	// Services por módulo; pets resuelve owners a través del service de owners.
	ownersSvc := owners.NewService(ownersRepo)
	petsSvc := pets.NewService(petsRepo, ownersSvc)

	owners.RegisterRoutes(r, ownersSvc)
	pets.RegisterRoutes(r, petsSvc)

	return r
}
