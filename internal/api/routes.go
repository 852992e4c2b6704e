package api

import (
	"net/http"

	"github.com/GagstyCommunity/Minutely.xyz/internal/handler"
	"github.com/GagstyCommunity/Minutely.xyz/internal/middleware"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handler.Handler, authmw *middleware.Auth) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)
	r.Use(authmw.Optional)

	api := r.PathPrefix("/api").Subrouter()

	// Session auth
	api.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)
	api.HandleFunc("/user", h.CurrentUser).Methods(http.MethodGet)

	// Categories
	api.HandleFunc("/categories", h.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{slug}", h.GetCategoryBySlug).Methods(http.MethodGet)

	// Articles; the category listing registers before the slug route so
	// "category" never matches as a slug
	api.HandleFunc("/articles", h.GetArticles).Methods(http.MethodGet)
	api.HandleFunc("/articles", h.CreateArticle).Methods(http.MethodPost)
	api.HandleFunc("/articles/category/{categoryId}", h.GetArticlesByCategory).Methods(http.MethodGet)
	api.HandleFunc("/articles/{slug}", h.GetArticleBySlug).Methods(http.MethodGet)

	// Products
	api.HandleFunc("/products", h.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", h.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", h.GetProductByID).Methods(http.MethodGet)
	api.HandleFunc("/product-comparisons", h.GetProductComparisons).Methods(http.MethodGet)

	// Destinations
	api.HandleFunc("/destinations", h.GetDestinations).Methods(http.MethodGet)
	api.HandleFunc("/destinations", h.CreateDestination).Methods(http.MethodPost)
	api.HandleFunc("/destinations/{id}", h.GetDestinationByID).Methods(http.MethodGet)

	// Challenges
	api.HandleFunc("/challenges", h.GetChallenges).Methods(http.MethodGet)
	api.HandleFunc("/challenges", h.CreateChallenge).Methods(http.MethodPost)
	api.HandleFunc("/challenges/{id}", h.GetChallengeByID).Methods(http.MethodGet)

	// User-scoped resources; sessions are checked before any handler runs
	userScoped := api.PathPrefix("/users").Subrouter()
	userScoped.Use(authmw.Require)
	userScoped.HandleFunc("/{userId}/badges", h.GetUserBadges).Methods(http.MethodGet)
	userScoped.HandleFunc("/{userId}/badges", h.AddUserBadge).Methods(http.MethodPost)
	userScoped.HandleFunc("/{userId}/challenges", h.GetUserChallenges).Methods(http.MethodGet)
	userScoped.HandleFunc("/{userId}/challenges", h.AddUserChallenge).Methods(http.MethodPost)

	// Content generation
	api.HandleFunc("/generate/content", h.GenerateContent).Methods(http.MethodPost)
	api.HandleFunc("/generate/analyze", h.AnalyzeContent).Methods(http.MethodPost)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		color.Yellow("[404] %s %s", r.Method, r.URL.Path)
		utils.Error(w, http.StatusNotFound, "Route not found")
	})

	return r
}
