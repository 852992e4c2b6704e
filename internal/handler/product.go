package handler

import (
	"net/http"
	"strconv"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
	"github.com/gorilla/mux"
)

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r)

	products, err := h.store.GetProducts(r.Context(), limit)
	if err != nil {
		storeError(w, err, "", "Failed to fetch products")
		return
	}
	utils.JSON(w, http.StatusOK, products)
}

func (h *Handler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.store.GetProductByID(r.Context(), id)
	if err != nil {
		storeError(w, err, "Product not found", "Failed to fetch product")
		return
	}
	utils.JSON(w, http.StatusOK, product)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in model.InsertProduct
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if errs := utils.Validate(in); errs != nil {
		utils.ValidationError(w, errs)
		return
	}

	product, err := h.store.CreateProduct(r.Context(), in)
	if err != nil {
		storeError(w, err, "", "Failed to create product")
		return
	}
	utils.JSON(w, http.StatusCreated, product)
}

// GetProductComparisons lists comparison rows. Nothing writes them yet, so
// this legitimately returns an empty list.
func (h *Handler) GetProductComparisons(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r)

	comparisons, err := h.store.GetProductComparisons(r.Context(), limit)
	if err != nil {
		storeError(w, err, "", "Failed to fetch product comparisons")
		return
	}
	utils.JSON(w, http.StatusOK, comparisons)
}
