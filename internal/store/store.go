package store

import (
	"context"
	"errors"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
)

// ErrNotFound is returned by single-entity lookups when no row matches the
// key. Anything else non-nil is a backend fault and propagates to the caller
// untouched.
var ErrNotFound = errors.New("not found")

// Store is the repository contract shared by the in-memory and Postgres
// backends. Both must behave identically from the caller's perspective.
//
// List operations treat limit <= 0 as unbounded. Article listings come back
// newest-created first. CreateArticle and AddUserChallenge also bump the
// owning category's articleCount / challenge's participantCount by one; point
// awarding is deliberately not part of AddUserChallenge — that stays with the
// route layer.
type Store interface {
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error)
	UpdateUserPoints(ctx context.Context, userID, delta int) (*model.User, error)

	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	CreateCategory(ctx context.Context, in model.InsertCategory) (*model.Category, error)

	GetArticles(ctx context.Context, limit int) ([]model.Article, error)
	GetArticlesByCategory(ctx context.Context, categoryID, limit int) ([]model.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error)
	CreateArticle(ctx context.Context, in model.InsertArticle) (*model.Article, error)

	GetProducts(ctx context.Context, limit int) ([]model.Product, error)
	GetProductByID(ctx context.Context, id int) (*model.Product, error)
	CreateProduct(ctx context.Context, in model.InsertProduct) (*model.Product, error)

	GetProductComparisons(ctx context.Context, limit int) ([]model.ProductComparison, error)

	GetDestinations(ctx context.Context, limit int) ([]model.Destination, error)
	GetDestinationByID(ctx context.Context, id int) (*model.Destination, error)
	CreateDestination(ctx context.Context, in model.InsertDestination) (*model.Destination, error)

	GetChallenges(ctx context.Context, limit int) ([]model.Challenge, error)
	GetChallengeByID(ctx context.Context, id int) (*model.Challenge, error)
	CreateChallenge(ctx context.Context, in model.InsertChallenge) (*model.Challenge, error)

	GetUserBadges(ctx context.Context, userID int) ([]model.UserBadge, error)
	AddUserBadge(ctx context.Context, userID int, badgeName string) (*model.UserBadge, error)

	GetUserChallenges(ctx context.Context, userID int) ([]model.UserChallenge, error)
	AddUserChallenge(ctx context.Context, userID, challengeID, score int) (*model.UserChallenge, error)
}
