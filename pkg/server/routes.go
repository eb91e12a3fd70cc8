package server

import (
	"fmt"
	"io/fs"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/riandyrn/otelchi"

	"github.com/newsner/newsner/internal"
	"github.com/newsner/newsner/pkg/auth"
	"github.com/newsner/newsner/pkg/models"
	"github.com/newsner/newsner/pkg/server/apihandlers"
	"github.com/newsner/newsner/pkg/server/webhandlers"
	"github.com/newsner/newsner/pkg/web"
)

var log = internal.GetLogger()

const (
	ReadHeaderTimeout = 5 * time.Second
	RouterName        = "newsner"
)

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) (*http.Server, error) {
	router, err := setupRouter(appState)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr: fmt.Sprintf(
			"%s:%d",
			appState.Config.Server.Host,
			appState.Config.Server.Port,
		),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}, nil
}

// @title			newsner API
// @version		0.x
// @BasePath		/api/v1
// @schemes		http https
// @securityDefinitions.apikey	Bearer
// @in				header
// @name			Authorization
// @description	Type "Bearer" followed by a space and JWT token.
func setupRouter(appState *models.AppState) (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(otelchi.Middleware(RouterName, otelchi.WithChiRoutes(router)))

	router.NotFound(web.NotFoundHandler())

	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, err
	}
	router.Handle(
		"/static/*",
		http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
	)

	router.Get("/", webhandlers.GetInferenceHandler(appState))
	router.Post("/ner", webhandlers.PostInferenceHandler(appState))
	router.Get("/docs", webhandlers.GetDocsHandler)

	var verifier func(http.Handler) http.Handler
	if appState.Config.Auth.Required {
		log.Info("JWT authentication required for /api/v1")
		verifier, err = auth.JWTVerifier(appState.Config)
		if err != nil {
			return nil, err
		}
	}

	router.Route("/api/v1", func(r chi.Router) {
		if verifier != nil {
			r.Use(verifier)
			r.Use(jwtauth.Authenticator)
		}
		r.Get("/models", apihandlers.GetModelsHandler(appState))
		r.Post("/entities", apihandlers.PostEntitiesHandler(appState))
	})

	return router, nil
}
