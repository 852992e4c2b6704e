package handler

import (
	"net/http"
	"strconv"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) GetArticles(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r)

	articles, err := h.store.GetArticles(r.Context(), limit)
	if err != nil {
		storeError(w, err, "", "Failed to fetch articles")
		return
	}
	utils.JSON(w, http.StatusOK, articles)
}

func (h *Handler) GetArticlesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(mux.Vars(r)["categoryId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	limit := utils.ParseLimit(r)

	articles, err := h.store.GetArticlesByCategory(r.Context(), categoryID, limit)
	if err != nil {
		storeError(w, err, "", "Failed to fetch articles by category")
		return
	}
	utils.JSON(w, http.StatusOK, articles)
}

func (h *Handler) GetArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	article, err := h.store.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		storeError(w, err, "Article not found", "Failed to fetch article")
		return
	}
	utils.JSON(w, http.StatusOK, article)
}

func (h *Handler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var in model.InsertArticle
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := utils.Validate(in); errs != nil {
		utils.ValidationError(w, errs)
		return
	}

	article, err := h.store.CreateArticle(r.Context(), in)
	if err != nil {
		storeError(w, err, "", "Failed to create article")
		return
	}
	utils.JSON(w, http.StatusCreated, article)
}
