package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
)

func intptr(v int) *int { return &v }

func TestMemStoreUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	t.Run("create assigns fresh ids and zero points", func(t *testing.T) {
		first, err := s.CreateUser(ctx, model.InsertUser{Username: "alice", Password: "hash", Email: "alice@example.com"})
		require.NoError(t, err)
		second, err := s.CreateUser(ctx, model.InsertUser{Username: "bob", Password: "hash", Email: "bob@example.com"})
		require.NoError(t, err)

		assert.Equal(t, 1, first.ID)
		assert.Equal(t, 2, second.ID)
		assert.Equal(t, 0, first.Points)
	})

	t.Run("lookups by id, username and email", func(t *testing.T) {
		byID, err := s.GetUser(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)

		byName, err := s.GetUserByUsername(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, 2, byName.ID)

		byEmail, err := s.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, 1, byEmail.ID)
	})

	t.Run("missing user yields ErrNotFound", func(t *testing.T) {
		_, err := s.GetUser(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = s.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("points accumulate across updates", func(t *testing.T) {
		updated, err := s.UpdateUserPoints(ctx, 1, 50)
		require.NoError(t, err)
		assert.Equal(t, 50, updated.Points)

		updated, err = s.UpdateUserPoints(ctx, 1, 30)
		require.NoError(t, err)
		assert.Equal(t, 80, updated.Points)

		_, err = s.UpdateUserPoints(ctx, 99, 10)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemStoreCategoriesAndArticles(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	tech, err := s.CreateCategory(ctx, model.InsertCategory{Name: "Technology", Slug: "tech"})
	require.NoError(t, err)
	travel, err := s.CreateCategory(ctx, model.InsertCategory{Name: "Travel", Slug: "travel"})
	require.NoError(t, err)

	t.Run("category slug lookup", func(t *testing.T) {
		got, err := s.GetCategoryBySlug(ctx, "travel")
		require.NoError(t, err)
		assert.Equal(t, travel.ID, got.ID)

		_, err = s.GetCategoryBySlug(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("creating an article bumps its category count once", func(t *testing.T) {
		_, err := s.CreateArticle(ctx, model.InsertArticle{
			Title:      "AI Trends",
			Slug:       "ai-trends",
			Content:    "<p>body</p>",
			CategoryID: intptr(tech.ID),
		})
		require.NoError(t, err)

		got, err := s.GetCategoryBySlug(ctx, "tech")
		require.NoError(t, err)
		assert.Equal(t, 1, got.ArticleCount)

		other, err := s.GetCategoryBySlug(ctx, "travel")
		require.NoError(t, err)
		assert.Equal(t, 0, other.ArticleCount)
	})

	t.Run("dangling category id is tolerated", func(t *testing.T) {
		_, err := s.CreateArticle(ctx, model.InsertArticle{
			Title:      "Orphan",
			Slug:       "orphan",
			Content:    "x",
			CategoryID: intptr(99),
		})
		assert.NoError(t, err)
	})

	t.Run("list is newest first and honors the limit", func(t *testing.T) {
		fresh := NewMemStore()
		for i := 1; i <= 5; i++ {
			_, err := fresh.CreateArticle(ctx, model.InsertArticle{
				Title:   fmt.Sprintf("Article %d", i),
				Slug:    fmt.Sprintf("article-%d", i),
				Content: "body",
			})
			require.NoError(t, err)
		}

		articles, err := fresh.GetArticles(ctx, 2)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "article-5", articles[0].Slug)
		assert.Equal(t, "article-4", articles[1].Slug)

		all, err := fresh.GetArticles(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})

	t.Run("filter by category", func(t *testing.T) {
		articles, err := s.GetArticlesByCategory(ctx, tech.ID, 0)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "ai-trends", articles[0].Slug)

		none, err := s.GetArticlesByCategory(ctx, travel.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("article slug lookup", func(t *testing.T) {
		got, err := s.GetArticleBySlug(ctx, "ai-trends")
		require.NoError(t, err)
		assert.Equal(t, "AI Trends", got.Title)

		_, err = s.GetArticleBySlug(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemStoreChallenges(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	challenge, err := s.CreateChallenge(ctx, model.InsertChallenge{Title: "Tech Trivia", Points: intptr(100)})
	require.NoError(t, err)
	user, err := s.CreateUser(ctx, model.InsertUser{Username: "alice", Password: "hash", Email: "alice@example.com"})
	require.NoError(t, err)

	t.Run("recording an attempt bumps the participant count", func(t *testing.T) {
		attempt, err := s.AddUserChallenge(ctx, user.ID, challenge.ID, 80)
		require.NoError(t, err)
		assert.Equal(t, 80, attempt.Score)
		assert.False(t, attempt.CompletedAt.IsZero())

		got, err := s.GetChallengeByID(ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.ParticipantCount)
	})

	t.Run("every attempt is retained", func(t *testing.T) {
		_, err := s.AddUserChallenge(ctx, user.ID, challenge.ID, 95)
		require.NoError(t, err)

		attempts, err := s.GetUserChallenges(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, attempts, 2)
		assert.Equal(t, 80, attempts[0].Score)
		assert.Equal(t, 95, attempts[1].Score)

		got, err := s.GetChallengeByID(ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ParticipantCount)
	})

	t.Run("badges are scoped to their user and never deduplicated", func(t *testing.T) {
		_, err := s.AddUserBadge(ctx, user.ID, "Quiz Master")
		require.NoError(t, err)
		_, err = s.AddUserBadge(ctx, user.ID, "Quiz Master")
		require.NoError(t, err)

		badges, err := s.GetUserBadges(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, badges, 2)

		none, err := s.GetUserBadges(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestMemStoreProductsAndDestinations(t *testing.T) {
	ctx := context.Background()
	s := NewMemStore()

	_, err := s.CreateProduct(ctx, model.InsertProduct{Name: "Laptop Pro"})
	require.NoError(t, err)
	second, err := s.CreateProduct(ctx, model.InsertProduct{Name: "Phone X"})
	require.NoError(t, err)

	t.Run("product listing and lookup", func(t *testing.T) {
		products, err := s.GetProducts(ctx, 1)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Laptop Pro", products[0].Name)

		got, err := s.GetProductByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Phone X", got.Name)

		_, err = s.GetProductByID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("destinations keep their tags", func(t *testing.T) {
		created, err := s.CreateDestination(ctx, model.InsertDestination{
			Name: "Kyoto",
			Tags: []string{"culture", "temples"},
		})
		require.NoError(t, err)

		got, err := s.GetDestinationByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"culture", "temples"}, got.Tags)

		_, err = s.GetDestinationByID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
