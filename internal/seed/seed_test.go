package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/GagstyCommunity/Minutely.xyz/internal/store"
)

func TestApply(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemStore()
	require.NoError(t, Apply(ctx, st))

	t.Run("categories", func(t *testing.T) {
		categories, err := st.GetCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 4)

		slugs := make([]string, 0, len(categories))
		for _, c := range categories {
			slugs = append(slugs, c.Slug)
		}
		assert.Equal(t, []string{"tech", "products", "travel", "finance"}, slugs)
	})

	t.Run("admin account logs in with the demo password", func(t *testing.T) {
		admin, err := st.GetUserByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "admin@minutely.xyz", admin.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("password123")))
	})

	t.Run("content is linked to its categories", func(t *testing.T) {
		tech, err := st.GetCategoryBySlug(ctx, "tech")
		require.NoError(t, err)
		assert.Equal(t, 1, tech.ArticleCount)

		articles, err := st.GetArticlesByCategory(ctx, tech.ID, 0)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "future-of-ai", articles[0].Slug)
	})

	t.Run("catalog sizes", func(t *testing.T) {
		products, err := st.GetProducts(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, products, 3)

		destinations, err := st.GetDestinations(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, destinations, 3)

		challenges, err := st.GetChallenges(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, challenges, 3)
	})
}
