package handler

import (
	"errors"
	"net/http"

	"github.com/GagstyCommunity/Minutely.xyz/internal/middleware"
	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/store"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates an account and opens a session for it. The password is
// hashed here; storage only ever sees the blob.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in model.InsertUser
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := utils.Validate(in); errs != nil {
		utils.ValidationError(w, errs)
		return
	}

	ctx := r.Context()

	if _, err := h.store.GetUserByUsername(ctx, in.Username); err == nil {
		utils.Error(w, http.StatusBadRequest, "Username already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		storeError(w, err, "", "Failed to register")
		return
	}
	if _, err := h.store.GetUserByEmail(ctx, in.Email); err == nil {
		utils.Error(w, http.StatusBadRequest, "Email already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		storeError(w, err, "", "Failed to register")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to register")
		return
	}
	in.Password = string(hashed)

	user, err := h.store.CreateUser(ctx, in)
	if err != nil {
		storeError(w, err, "", "Failed to register")
		return
	}

	token := h.sessions.Create(user.ID)
	utils.JSON(w, http.StatusCreated, sessionResponse{User: user, Token: token})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := utils.Validate(req); errs != nil {
		utils.ValidationError(w, errs)
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		storeError(w, err, "", "Failed to log in")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token := h.sessions.Create(user.ID)
	utils.JSON(w, http.StatusOK, sessionResponse{User: user, Token: token})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("Authorization")
	if token == "" {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	h.sessions.Invalidate(token)
	utils.JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// CurrentUser returns the authenticated account, re-read from storage so the
// points total is current.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := middleware.UserFromContext(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.store.GetUser(r.Context(), sessionUser.ID)
	if err != nil {
		storeError(w, err, "User not found", "Failed to fetch user")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
