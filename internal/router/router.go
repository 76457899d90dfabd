package router

import (
	"net/http"

	"animal-training/internal/adapters/auth/password"
	"animal-training/internal/adapters/auth/token"
	mem "animal-training/internal/adapters/storage/memory"
	pg "animal-training/internal/adapters/storage/postgres"
	_ "animal-training/internal/docs"
	"animal-training/internal/domain/animals"
	"animal-training/internal/domain/training"
	"animal-training/internal/domain/users"
	"animal-training/internal/middleware"
	"animal-training/internal/platform/config"
	"animal-training/internal/platform/metrics"
	"animal-training/internal/platform/respond"
	"animal-training/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	Config config.Config
	Logger *zap.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB pg.DB
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tokens, err := token.NewService(token.Config{
		Secret: opts.Config.Auth.Secret,
		TTL:    opts.Config.Auth.TokenTTL,
	})
	if err != nil {
		return nil, err
	}
	hasher := password.NewBcryptHasher(opts.Config.Auth.BcryptCost)

	var (
		userRepo     users.Repository
		animalRepo   animals.Repository
		trainingRepo training.Repository
	)
	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		animalRepo = pg.NewAnimalsRepo(opts.DB)
		trainingRepo = pg.NewTrainingRepo(opts.DB)
	} else {
		userRepo = mem.NewUserRepo()
		animalRepo = mem.NewAnimalRepo()
		trainingRepo = mem.NewTrainingRepo()
	}

	// Services por módulo
	usersSvc := users.NewService(userRepo, hasher, tokens, users.Options{
		AdminEmails: opts.Config.Auth.AdminEmails,
	})
	animalsSvc := animals.NewService(animalRepo, usersSvc)
	trainingSvc := training.NewService(trainingRepo, usersSvc, animalsSvc)

	m := metrics.NewHTTP("animal_training")

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(m.Middleware)
	r.Use(middleware.Recover)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respond.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler)

		users.RegisterRoutes(api, usersSvc)

		requireToken := middleware.RequireToken(tokens)

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Pipeline(requireToken))
			animals.RegisterRoutes(pr, animalsSvc)
			training.RegisterRoutes(pr, trainingSvc)
		})

		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.Pipeline(requireToken, middleware.RequireRole(auth.RoleAdmin)))
			users.RegisterAdminRoutes(ar, usersSvc)
			animals.RegisterAdminRoutes(ar, animalsSvc)
			training.RegisterAdminRoutes(ar, trainingSvc)
		})
	})

	return r, nil
}

// healthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]bool{"healthy": true})
}

