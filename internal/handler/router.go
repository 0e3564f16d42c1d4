package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mockforge/mockforge/internal/handler/generate"
	"github.com/mockforge/mockforge/internal/handler/inspect"
	"github.com/mockforge/mockforge/internal/handler/mock"
	middlewarePkg "github.com/mockforge/mockforge/internal/middleware"
	"github.com/mockforge/mockforge/internal/model/mockapi"
	"github.com/mockforge/mockforge/internal/service/mockdata"
	"github.com/mockforge/mockforge/internal/service/requestlog"
	"github.com/mockforge/mockforge/internal/service/schemagen"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(store mockapi.Store, schemaSvc *schemagen.Service, generator *mockdata.Generator, reqLog *requestlog.Log, publicBaseURL string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	generateHandler := generate.New(schemaSvc, generator, store, publicBaseURL)
	mockHandler := mock.New(store, reqLog)
	inspectHandler := inspect.New(store, reqLog)

	r.Route("/api", func(api chi.Router) {
		generateHandler.RegisterRoutes(api)
		mockHandler.RegisterRoutes(api)
		inspectHandler.RegisterRoutes(api)
	})

	return r
}
