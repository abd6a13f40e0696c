package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"relay/internal/providers/falai"
	"relay/internal/retouch"
)

type retouchRequest struct {
	ImageBase64    string `json:"imageBase64"`
	BackgroundID   string `json:"backgroundId"`
	ResolutionHint string `json:"resolutionHint"`
	Prompt         string `json:"prompt"`
	PromptOverride string `json:"promptOverride"`
}

type retouchResponse struct {
	ImageURL     string    `json:"imageUrl"`
	Prompt       string    `json:"prompt"`
	Resolution   string    `json:"resolution"`
	BackgroundID string    `json:"backgroundId,omitempty"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

// Retouch accepts an image plus a background-style selection, forwards one
// edit request upstream, and returns the resulting image URL. Every failure
// branch is terminal; there are no retries.
func (a *App) Retouch(w http.ResponseWriter, r *http.Request) {
	if !a.Editor.HasCredentials() {
		a.Log.Error().Msg("retouch rejected: FAL_KEY is not configured")
		a.error(w, http.StatusInternalServerError, "FAL_KEY is not configured",
			"set FAL_KEY in the server environment")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, a.Cfg.MaxBodyBytes)
	var req retouchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if strings.TrimSpace(req.ImageBase64) == "" {
		a.error(w, http.StatusBadRequest, "imageBase64 is required", nil)
		return
	}

	override := req.PromptOverride
	if strings.TrimSpace(override) == "" {
		override = req.Prompt
	}
	prompt := retouch.ResolvePrompt(override, req.BackgroundID)
	resolution := retouch.NormalizeResolution(req.ResolutionHint)

	imageURL, err := a.Editor.Edit(r.Context(), falai.EditRequest{
		Prompt:     prompt,
		ImageURL:   req.ImageBase64,
		Resolution: resolution,
	})
	if err != nil {
		a.upstreamError(w, r, err)
		return
	}

	a.json(w, http.StatusOK, retouchResponse{
		ImageURL:     imageURL,
		Prompt:       prompt,
		Resolution:   resolution,
		BackgroundID: req.BackgroundID,
		GeneratedAt:  time.Now().UTC(),
	})
}

// upstreamError maps client errors onto the response taxonomy. Raw upstream
// bodies pass through as diagnostic detail without reinterpretation.
func (a *App) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	log := a.Log.Error().Str("path", r.URL.Path)

	var statusErr *falai.StatusError
	var decodeErr *falai.DecodeError
	var noImageErr *falai.NoImageError
	switch {
	case errors.As(err, &statusErr):
		log.Int("upstream_status", statusErr.Code).Str("upstream_body", statusErr.Body).
			Msg("upstream returned non-success status")
		a.error(w, http.StatusInternalServerError, "upstream request failed", statusErr.Body)
	case errors.As(err, &decodeErr):
		log.Str("upstream_body", decodeErr.Body).Err(decodeErr.Err).
			Msg("upstream body is not valid JSON")
		a.error(w, http.StatusInternalServerError, "upstream returned invalid JSON", map[string]any{
			"parseError": decodeErr.Err.Error(),
			"body":       decodeErr.Body,
		})
	case errors.As(err, &noImageErr):
		log.Str("upstream_body", noImageErr.Body).
			Msg("no image url found in upstream response")
		a.error(w, http.StatusInternalServerError, "no image URL in upstream response", noImageErr.Body)
	default:
		log.Err(err).Msg("upstream call failed")
		a.error(w, http.StatusInternalServerError, "upstream request failed", err.Error())
	}
}
