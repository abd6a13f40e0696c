package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"relay/internal/infra"
	"relay/internal/providers/falai"
)

// Editor is the slice of the fal.ai client the handlers need. Declared here
// so tests can substitute a stub upstream.
type Editor interface {
	Edit(ctx context.Context, req falai.EditRequest) (string, error)
	HasCredentials() bool
}

// App carries the request-scoped handlers' shared read-only dependencies.
type App struct {
	Cfg    *infra.Config
	Log    infra.Logger
	Editor Editor
}

func NewApp(cfg *infra.Config, log infra.Logger, editor Editor) *App {
	return &App{Cfg: cfg, Log: log, Editor: editor}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func (a *App) error(w http.ResponseWriter, code int, msg string, details any) {
	a.json(w, code, errorBody{Error: msg, Details: details})
}
