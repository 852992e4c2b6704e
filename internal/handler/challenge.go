package handler

import (
	"net/http"
	"strconv"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r)

	challenges, err := h.store.GetChallenges(r.Context(), limit)
	if err != nil {
		storeError(w, err, "", "Failed to fetch challenges")
		return
	}
	utils.JSON(w, http.StatusOK, challenges)
}

func (h *Handler) GetChallengeByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Challenge not found")
		return
	}

	challenge, err := h.store.GetChallengeByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Challenge not found", "Failed to fetch challenge")
		return
	}
	utils.JSON(w, http.StatusOK, challenge)
}

func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var in model.InsertChallenge
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := utils.Validate(in); errs != nil {
		utils.ValidationError(w, errs)
		return
	}

	challenge, err := h.store.CreateChallenge(r.Context(), in)
	if err != nil {
		storeError(w, err, "", "Failed to create challenge")
		return
	}
	utils.JSON(w, http.StatusCreated, challenge)
}
