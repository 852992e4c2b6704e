package handler

import (
	"net/http"

	"github.com/GagstyCommunity/Minutely.xyz/internal/logger"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
)

// GenerateContent drafts content for the editor UI: {prompt, type} in,
// {content} out.
func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Prompt string `json:"prompt"`
		Type   string `json:"type"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Prompt == "" || payload.Type == "" {
		utils.Error(w, http.StatusBadRequest, "Prompt and type are required")
		return
	}

	content, err := h.ai.GenerateContent(r.Context(), payload.Prompt, payload.Type)
	if err != nil {
		logger.Error("Failed to generate content: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to generate content")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"content": content})
}

// AnalyzeContent returns a summary/keywords/sentiment breakdown of a text.
func (h *Handler) AnalyzeContent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Text == "" {
		utils.Error(w, http.StatusBadRequest, "Text is required")
		return
	}

	analysis, err := h.ai.AnalyzeContent(r.Context(), payload.Text)
	if err != nil {
		logger.Error("Failed to analyze content: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to analyze content")
		return
	}

	utils.JSON(w, http.StatusOK, analysis)
}
