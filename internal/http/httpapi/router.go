package httpapi

import (
	"net/http"

	"relay/internal/http/handlers"
	"relay/internal/infra"
	mw "relay/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		mw.RequestID,
		chimw.RealIP,
		mw.Recover(logger),
		mw.Logger(logger),
		mw.CORS,
	)

	r.Get("/", app.Health)
	r.Post("/retouch", app.Retouch)

	return r
}
