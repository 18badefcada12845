package router

import (
	"database/sql"
	"net/http"

	blobmem "shelter-dogs/internal/adapters/blob/memory"
	mem "shelter-dogs/internal/adapters/storage/memory"
	pg "shelter-dogs/internal/adapters/storage/postgres"
	"shelter-dogs/internal/domain/dogs"
	"shelter-dogs/internal/domain/photos"
	"shelter-dogs/internal/i18n"
	"shelter-dogs/internal/middleware"
	"shelter-dogs/internal/platform/logger"
	"shelter-dogs/internal/platform/metrics"
	"shelter-dogs/internal/ports/auth"
	"shelter-dogs/internal/ports/blob"

	_ "shelter-dogs/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si no viene, fotos en memoria.
	Blob blob.Store

	Catalogs *i18n.Registry
	Log      logger.Logger
	Metrics  *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	catalogs := opts.Catalogs
	if catalogs == nil {
		catalogs = i18n.MustLoad()
	}
	store := opts.Blob
	if store == nil {
		store = blobmem.NewStore("")
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(middleware.Metrics(m))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var dogRepo dogs.Repository
	if opts.DB != nil {
		dogRepo = pg.NewDogsRepo(opts.DB)
	} else {
		dogRepo = mem.NewDogRepo()
	}

	photosSvc := photos.NewService(store, log.With(map[string]any{"module": "photos"}), m)
	dogsSvc := dogs.NewService(dogRepo, photosSvc, catalogs, log.With(map[string]any{"module": "dogs"}), m)

	dogs.RegisterRoutes(r, dogsSvc)

	r.Route("/admin", func(ar chi.Router) {
		ar.Use(middleware.RequireAuth)
		dogs.RegisterAdminRoutes(ar, dogsSvc)
	})

	return r
}
