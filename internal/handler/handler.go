package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/GagstyCommunity/Minutely.xyz/internal/auth"
	"github.com/GagstyCommunity/Minutely.xyz/internal/logger"
	"github.com/GagstyCommunity/Minutely.xyz/internal/services"
	"github.com/GagstyCommunity/Minutely.xyz/internal/store"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
)

// ContentGenerator is what the generate endpoints need from the OpenAI
// service.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt, contentType string) (string, error)
	AnalyzeContent(ctx context.Context, text string) (*services.ContentAnalysis, error)
}

// Handler owns the HTTP surface. The store, session manager, and generator
// are injected at construction so tests can swap any of them.
type Handler struct {
	store    store.Store
	sessions *auth.Sessions
	ai       ContentGenerator
}

func New(st store.Store, sessions *auth.Sessions, ai ContentGenerator) *Handler {
	return &Handler{store: st, sessions: sessions, ai: ai}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// storeError maps a storage failure onto the response: ErrNotFound becomes a
// 404 with notFoundMsg, anything else a 500 with failMsg. Backend faults are
// logged but never leaked.
func storeError(w http.ResponseWriter, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(w, http.StatusNotFound, notFoundMsg)
		return
	}
	logger.Error("%s: %v", failMsg, err)
	utils.Error(w, http.StatusInternalServerError, failMsg)
}
