package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GagstyCommunity/Minutely.xyz/internal/api"
	"github.com/GagstyCommunity/Minutely.xyz/internal/auth"
	"github.com/GagstyCommunity/Minutely.xyz/internal/handler"
	"github.com/GagstyCommunity/Minutely.xyz/internal/middleware"
	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/services"
	"github.com/GagstyCommunity/Minutely.xyz/internal/store"
)

// fakeGenerator satisfies handler.ContentGenerator without any network.
type fakeGenerator struct {
	lastPrompt string
	lastType   string
	err        error
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt, contentType string) (string, error) {
	f.lastPrompt, f.lastType = prompt, contentType
	if f.err != nil {
		return "", f.err
	}
	return "<p>generated</p>", nil
}

func (f *fakeGenerator) AnalyzeContent(ctx context.Context, text string) (*services.ContentAnalysis, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &services.ContentAnalysis{Summary: "short", Keywords: []string{"go"}, Sentiment: "neutral"}, nil
}

type testEnv struct {
	router http.Handler
	store  *store.MemStore
	gen    *fakeGenerator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	st := store.NewMemStore()
	sessions := auth.NewSessions()
	gen := &fakeGenerator{}
	h := handler.New(st, sessions, gen)
	router := api.SetupRouter(h, middleware.NewAuth(sessions, st))
	return &testEnv{router: router, store: st, gen: gen}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// register creates an account through the API and returns its id and token.
func (e *testEnv) register(t *testing.T, username string) (int, string) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/register", "", map[string]string{
		"username": username,
		"password": "password123",
		"email":    username + "@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	user := body["user"].(map[string]interface{})
	return int(user["id"].(float64)), body["token"].(string)
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	t.Run("creates the account and opens a session", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", "", map[string]string{
			"username": "alice", "password": "password123", "email": "alice@example.com",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["token"])

		user := body["user"].(map[string]interface{})
		assert.Equal(t, "alice", user["username"])
		assert.Equal(t, float64(0), user["points"])
		assert.NotContains(t, user, "password")
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		stored, err := env.store.GetUserByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", stored.Password)
	})

	t.Run("duplicate username", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", "", map[string]string{
			"username": "alice", "password": "x", "email": "other@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Username already exists", decodeBody(t, rec)["message"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", "", map[string]string{
			"username": "alice2", "password": "x", "email": "alice@example.com",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email already exists", decodeBody(t, rec)["message"])
	})

	t.Run("invalid payload lists the failing fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/register", "", map[string]string{
			"username": "bob", "password": "x", "email": "not-an-email",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Invalid data", body["message"])
		assert.NotEmpty(t, body["errors"])
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	t.Run("valid credentials", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "alice", "password": "password123",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, decodeBody(t, rec)["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "alice", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	})

	t.Run("unknown username", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"username": "nobody", "password": "password123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	})
}

func TestCurrentUserAndLogout(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.register(t, "alice")

	t.Run("without a token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/user", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])
	})

	t.Run("with a valid token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/user", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "alice", decodeBody(t, rec)["username"])
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/logout", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/user", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCategoryRoutes(t *testing.T) {
	env := newTestEnv(t)

	t.Run("create and list", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/categories", "", map[string]string{
			"name": "Technology", "slug": "tech",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/categories", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var categories []model.Category
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
		require.Len(t, categories, 1)
		assert.Equal(t, "tech", categories[0].Slug)
	})

	t.Run("missing required fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/categories", "", map[string]string{"name": "No Slug"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid data", decodeBody(t, rec)["message"])
	})

	t.Run("unknown slug", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/categories/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Category not found", decodeBody(t, rec)["message"])
	})
}

func TestArticleRoutes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	category, err := env.store.CreateCategory(ctx, model.InsertCategory{Name: "Technology", Slug: "tech"})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		rec := env.do(t, http.MethodPost, "/api/articles", "", map[string]interface{}{
			"title":      fmt.Sprintf("Article %d", i),
			"slug":       fmt.Sprintf("article-%d", i),
			"content":    "<p>body</p>",
			"categoryId": category.ID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("list honors the limit parameter", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/articles?limit=2", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var articles []model.Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
		require.Len(t, articles, 2)
		assert.Equal(t, "article-3", articles[0].Slug)
	})

	t.Run("category listing wins over the slug route", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/articles/category/%d", category.ID), "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var articles []model.Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &articles))
		assert.Len(t, articles, 3)
	})

	t.Run("non-numeric category id", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/articles/category/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid category ID", decodeBody(t, rec)["message"])
	})

	t.Run("slug lookup", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/articles/article-2", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Article 2", decodeBody(t, rec)["title"])

		rec = env.do(t, http.MethodGet, "/api/articles/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Article not found", decodeBody(t, rec)["message"])
	})

	t.Run("article count follows creations", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/categories/tech", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(3), decodeBody(t, rec)["articleCount"])
	})
}

func TestChallengeCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	points := 50
	challenge, err := env.store.CreateChallenge(ctx, model.InsertChallenge{Title: "Tech Trivia", Points: &points})
	require.NoError(t, err)

	userID, token := env.register(t, "alice")
	base := fmt.Sprintf("/api/users/%d/challenges", userID)

	t.Run("perfect score earns the full challenge points", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, base, token, map[string]int{
			"challengeId": challenge.ID, "score": 100,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/user", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(50), decodeBody(t, rec)["points"])
	})

	t.Run("zero score earns nothing", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, base, token, map[string]int{
			"challengeId": challenge.ID, "score": 0,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/user", token, nil)
		assert.Equal(t, float64(50), decodeBody(t, rec)["points"])
	})

	t.Run("partial scores round to the nearest point", func(t *testing.T) {
		odd := 33
		oddChallenge, err := env.store.CreateChallenge(ctx, model.InsertChallenge{Title: "Odd Points", Points: &odd})
		require.NoError(t, err)

		rec := env.do(t, http.MethodPost, base, token, map[string]int{
			"challengeId": oddChallenge.ID, "score": 90,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		// round(90/100 * 33) = 30, on top of the 50 already earned
		rec = env.do(t, http.MethodGet, "/api/user", token, nil)
		assert.Equal(t, float64(80), decodeBody(t, rec)["points"])
	})

	t.Run("challenge without points skips the award", func(t *testing.T) {
		free, err := env.store.CreateChallenge(ctx, model.InsertChallenge{Title: "For Fun"})
		require.NoError(t, err)

		rec := env.do(t, http.MethodPost, base, token, map[string]int{
			"challengeId": free.ID, "score": 100,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodGet, "/api/user", token, nil)
		assert.Equal(t, float64(80), decodeBody(t, rec)["points"])
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, base, token, map[string]int{"score": 100})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Challenge ID and score are required", decodeBody(t, rec)["message"])
	})

	t.Run("attempts are listed in order", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, base, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var attempts []model.UserChallenge
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &attempts))
		require.Len(t, attempts, 4)
		assert.Equal(t, 100, attempts[0].Score)
		assert.Equal(t, 0, attempts[1].Score)
	})

	t.Run("participant count tracks attempts", func(t *testing.T) {
		got, err := env.store.GetChallengeByID(ctx, challenge.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ParticipantCount)
	})
}

func TestUserScopeAuthorization(t *testing.T) {
	env := newTestEnv(t)

	aliceID, _ := env.register(t, "alice")
	_, bobToken := env.register(t, "bob")
	alicePath := fmt.Sprintf("/api/users/%d/challenges", aliceID)

	t.Run("no token is rejected before any lookup", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, alicePath, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Unauthorized", decodeBody(t, rec)["message"])
	})

	t.Run("a stranger's token cannot touch another user's data", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, alicePath, bobToken, map[string]int{
			"challengeId": 1, "score": 100,
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		attempts, err := env.store.GetUserChallenges(context.Background(), aliceID)
		require.NoError(t, err)
		assert.Empty(t, attempts)
	})
}

func TestBadgeRoutes(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.register(t, "alice")
	path := fmt.Sprintf("/api/users/%d/badges", userID)

	t.Run("empty badge name", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, path, token, map[string]string{"badgeName": ""})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Badge name is required", decodeBody(t, rec)["message"])
	})

	t.Run("award and list", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, path, token, map[string]string{"badgeName": "Quiz Master"})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = env.do(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var badges []model.UserBadge
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &badges))
		require.Len(t, badges, 1)
		assert.Equal(t, "Quiz Master", badges[0].BadgeName)
	})
}

func TestGenerateRoutes(t *testing.T) {
	env := newTestEnv(t)

	t.Run("content", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/generate/content", "", map[string]string{
			"prompt": "write about Go", "type": "article",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<p>generated</p>", decodeBody(t, rec)["content"])
		assert.Equal(t, "article", env.gen.lastType)
	})

	t.Run("missing prompt or type", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/generate/content", "", map[string]string{"prompt": "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Prompt and type are required", decodeBody(t, rec)["message"])
	})

	t.Run("analyze", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/generate/analyze", "", map[string]string{"text": "some text"})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "short", body["summary"])
		assert.Equal(t, "neutral", body["sentiment"])
	})

	t.Run("missing text", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/generate/analyze", "", map[string]string{"text": ""})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Text is required", decodeBody(t, rec)["message"])
	})

	t.Run("generator failure", func(t *testing.T) {
		env.gen.err = fmt.Errorf("upstream down")
		defer func() { env.gen.err = nil }()

		rec := env.do(t, http.MethodPost, "/api/generate/content", "", map[string]string{
			"prompt": "x", "type": "article",
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to generate content", decodeBody(t, rec)["message"])
	})
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeBody(t, rec)["message"])
}
