package handler

import (
	"net/http"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.GetCategories(r.Context())
	if err != nil {
		storeError(w, err, "", "Failed to fetch categories")
		return
	}
	utils.JSON(w, http.StatusOK, categories)
}

func (h *Handler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.store.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		storeError(w, err, "Category not found", "Failed to fetch category")
		return
	}
	utils.JSON(w, http.StatusOK, category)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in model.InsertCategory
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := utils.Validate(in); errs != nil {
		utils.ValidationError(w, errs)
		return
	}

	category, err := h.store.CreateCategory(r.Context(), in)
	if err != nil {
		storeError(w, err, "", "Failed to create category")
		return
	}
	utils.JSON(w, http.StatusCreated, category)
}
