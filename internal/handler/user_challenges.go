package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/GagstyCommunity/Minutely.xyz/internal/logger"
	"github.com/GagstyCommunity/Minutely.xyz/internal/middleware"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
	"github.com/gorilla/mux"
)

// authorizeUserScope enforces that the session user owns the :userId in the
// path. Rejections happen before any storage call.
func authorizeUserScope(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}

	user, ok := middleware.UserFromContext(r)
	if !ok || user.ID != userID {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return userID, true
}

func (h *Handler) GetUserBadges(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizeUserScope(w, r)
	if !ok {
		return
	}

	badges, err := h.store.GetUserBadges(r.Context(), userID)
	if err != nil {
		storeError(w, err, "", "Failed to fetch user badges")
		return
	}
	utils.JSON(w, http.StatusOK, badges)
}

func (h *Handler) AddUserBadge(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizeUserScope(w, r)
	if !ok {
		return
	}

	var payload struct {
		BadgeName string `json:"badgeName"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.BadgeName == "" {
		utils.Error(w, http.StatusBadRequest, "Badge name is required")
		return
	}

	badge, err := h.store.AddUserBadge(r.Context(), userID, payload.BadgeName)
	if err != nil {
		storeError(w, err, "", "Failed to add user badge")
		return
	}
	utils.JSON(w, http.StatusCreated, badge)
}

func (h *Handler) GetUserChallenges(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizeUserScope(w, r)
	if !ok {
		return
	}

	attempts, err := h.store.GetUserChallenges(r.Context(), userID)
	if err != nil {
		storeError(w, err, "", "Failed to fetch user challenges")
		return
	}
	utils.JSON(w, http.StatusOK, attempts)
}

// AddUserChallenge records an attempt, then awards points scaled by the
// score: round(score/100 * challenge.points). A challenge that can't be
// looked up just skips the award; the attempt itself stands.
func (h *Handler) AddUserChallenge(w http.ResponseWriter, r *http.Request) {
	userID, ok := authorizeUserScope(w, r)
	if !ok {
		return
	}

	var payload struct {
		ChallengeID *int `json:"challengeId"`
		Score       *int `json:"score"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.ChallengeID == nil || *payload.ChallengeID == 0 || payload.Score == nil {
		utils.Error(w, http.StatusBadRequest, "Challenge ID and score are required")
		return
	}

	ctx := r.Context()
	attempt, err := h.store.AddUserChallenge(ctx, userID, *payload.ChallengeID, *payload.Score)
	if err != nil {
		storeError(w, err, "", "Failed to add user challenge")
		return
	}

	challenge, err := h.store.GetChallengeByID(ctx, *payload.ChallengeID)
	if err == nil && challenge.Points != nil && *challenge.Points > 0 {
		pointsEarned := int(math.Round(float64(*payload.Score) / 100 * float64(*challenge.Points)))
		if _, err := h.store.UpdateUserPoints(ctx, userID, pointsEarned); err != nil {
			logger.Error("could not award %d points to user %d: %v", pointsEarned, userID, err)
		}
	}

	utils.JSON(w, http.StatusCreated, attempt)
}
