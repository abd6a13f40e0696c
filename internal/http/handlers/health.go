package handlers

import (
	"net/http"
)

// Health is the liveness probe. It never fails; hasFalKey tells operators
// whether /retouch calls can currently succeed.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{
		"ok":        true,
		"message":   "retouch relay is running",
		"hasFalKey": a.Editor.HasCredentials(),
	})
}
