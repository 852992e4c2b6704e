package store

import (
	"context"
	"sort"
	"sync"
	"time"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
)

// MemStore keeps every entity in process memory. It backs local development
// and tests; construct one per process and inject it, there is no package
// singleton. Ids are per-entity counters starting at 1.
type MemStore struct {
	mu sync.RWMutex

	users              map[int]model.User
	categories         map[int]model.Category
	articles           map[int]model.Article
	products           map[int]model.Product
	productComparisons map[int]model.ProductComparison
	destinations       map[int]model.Destination
	challenges         map[int]model.Challenge
	userBadges         map[int]model.UserBadge
	userChallenges     map[int]model.UserChallenge

	nextUserID              int
	nextCategoryID          int
	nextArticleID           int
	nextProductID           int
	nextProductComparisonID int
	nextDestinationID       int
	nextChallengeID         int
	nextUserBadgeID         int
	nextUserChallengeID     int
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:              make(map[int]model.User),
		categories:         make(map[int]model.Category),
		articles:           make(map[int]model.Article),
		products:           make(map[int]model.Product),
		productComparisons: make(map[int]model.ProductComparison),
		destinations:       make(map[int]model.Destination),
		challenges:         make(map[int]model.Challenge),
		userBadges:         make(map[int]model.UserBadge),
		userChallenges:     make(map[int]model.UserChallenge),

		nextUserID:              1,
		nextCategoryID:          1,
		nextArticleID:           1,
		nextProductID:           1,
		nextProductComparisonID: 1,
		nextDestinationID:       1,
		nextChallengeID:         1,
		nextUserBadgeID:         1,
		nextUserChallengeID:     1,
	}
}

func (s *MemStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := model.User{
		ID:          s.nextUserID,
		Username:    in.Username,
		Password:    in.Password,
		Email:       in.Email,
		DisplayName: in.DisplayName,
		Points:      0,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

func (s *MemStore) UpdateUserPoints(ctx context.Context, userID, delta int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	user.Points += delta
	s.users[userID] = user
	return &user, nil
}

func (s *MemStore) GetCategories(ctx context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *MemStore) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			category := c
			return &category, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateCategory(ctx context.Context, in model.InsertCategory) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := model.Category{
		ID:          s.nextCategoryID,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	s.nextCategoryID++
	s.categories[category.ID] = category
	return &category, nil
}

func (s *MemStore) GetArticles(ctx context.Context, limit int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles := make([]model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		articles = append(articles, a)
	}
	sortArticlesNewestFirst(articles)
	return truncate(articles, limit), nil
}

func (s *MemStore) GetArticlesByCategory(ctx context.Context, categoryID, limit int) ([]model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var articles []model.Article
	for _, a := range s.articles {
		if a.CategoryID != nil && *a.CategoryID == categoryID {
			articles = append(articles, a)
		}
	}
	sortArticlesNewestFirst(articles)
	return truncate(articles, limit), nil
}

func (s *MemStore) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			article := a
			return &article, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateArticle(ctx context.Context, in model.InsertArticle) (*model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	article := model.Article{
		ID:         s.nextArticleID,
		Title:      in.Title,
		Slug:       in.Slug,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CategoryID: in.CategoryID,
		AuthorID:   in.AuthorID,
		ImageURL:   in.ImageURL,
		ReadTime:   in.ReadTime,
		CreatedAt:  time.Now(),
	}
	s.nextArticleID++
	s.articles[article.ID] = article

	// Category linkage is best-effort metadata: a dangling categoryId is not
	// an error, the count bump just doesn't happen.
	if article.CategoryID != nil {
		if category, ok := s.categories[*article.CategoryID]; ok {
			category.ArticleCount++
			s.categories[category.ID] = category
		}
	}

	return &article, nil
}

func (s *MemStore) GetProducts(ctx context.Context, limit int) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return truncate(products, limit), nil
}

func (s *MemStore) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

func (s *MemStore) CreateProduct(ctx context.Context, in model.InsertProduct) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := model.Product{
		ID:          s.nextProductID,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		ImageURL:    in.ImageURL,
		Rating:      in.Rating,
	}
	s.nextProductID++
	s.products[product.ID] = product
	return &product, nil
}

func (s *MemStore) GetProductComparisons(ctx context.Context, limit int) ([]model.ProductComparison, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comparisons := make([]model.ProductComparison, 0, len(s.productComparisons))
	for _, c := range s.productComparisons {
		comparisons = append(comparisons, c)
	}
	sort.Slice(comparisons, func(i, j int) bool { return comparisons[i].ID < comparisons[j].ID })
	return truncate(comparisons, limit), nil
}

func (s *MemStore) GetDestinations(ctx context.Context, limit int) ([]model.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	destinations := make([]model.Destination, 0, len(s.destinations))
	for _, d := range s.destinations {
		destinations = append(destinations, d)
	}
	sort.Slice(destinations, func(i, j int) bool { return destinations[i].ID < destinations[j].ID })
	return truncate(destinations, limit), nil
}

func (s *MemStore) GetDestinationByID(ctx context.Context, id int) (*model.Destination, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	destination, ok := s.destinations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &destination, nil
}

func (s *MemStore) CreateDestination(ctx context.Context, in model.InsertDestination) (*model.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	destination := model.Destination{
		ID:              s.nextDestinationID,
		Name:            in.Name,
		Region:          in.Region,
		Description:     in.Description,
		ImageURL:        in.ImageURL,
		Rating:          in.Rating,
		BestTimeToVisit: in.BestTimeToVisit,
		Tags:            in.Tags,
	}
	s.nextDestinationID++
	s.destinations[destination.ID] = destination
	return &destination, nil
}

func (s *MemStore) GetChallenges(ctx context.Context, limit int) ([]model.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenges := make([]model.Challenge, 0, len(s.challenges))
	for _, c := range s.challenges {
		challenges = append(challenges, c)
	}
	sort.Slice(challenges, func(i, j int) bool { return challenges[i].ID < challenges[j].ID })
	return truncate(challenges, limit), nil
}

func (s *MemStore) GetChallengeByID(ctx context.Context, id int) (*model.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challenge, ok := s.challenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &challenge, nil
}

func (s *MemStore) CreateChallenge(ctx context.Context, in model.InsertChallenge) (*model.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge := model.Challenge{
		ID:              s.nextChallengeID,
		Title:           in.Title,
		CategoryID:      in.CategoryID,
		QuestionCount:   in.QuestionCount,
		DifficultyLevel: in.DifficultyLevel,
		Points:          in.Points,
		ImageURL:        in.ImageURL,
	}
	s.nextChallengeID++
	s.challenges[challenge.ID] = challenge
	return &challenge, nil
}

func (s *MemStore) GetUserBadges(ctx context.Context, userID int) ([]model.UserBadge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	badges := []model.UserBadge{}
	for _, b := range s.userBadges {
		if b.UserID == userID {
			badges = append(badges, b)
		}
	}
	sort.Slice(badges, func(i, j int) bool { return badges[i].ID < badges[j].ID })
	return badges, nil
}

func (s *MemStore) AddUserBadge(ctx context.Context, userID int, badgeName string) (*model.UserBadge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	badge := model.UserBadge{
		ID:        s.nextUserBadgeID,
		UserID:    userID,
		BadgeName: badgeName,
		EarnedAt:  time.Now(),
	}
	s.nextUserBadgeID++
	s.userBadges[badge.ID] = badge
	return &badge, nil
}

func (s *MemStore) GetUserChallenges(ctx context.Context, userID int) ([]model.UserChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	attempts := []model.UserChallenge{}
	for _, a := range s.userChallenges {
		if a.UserID == userID {
			attempts = append(attempts, a)
		}
	}
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].ID < attempts[j].ID })
	return attempts, nil
}

func (s *MemStore) AddUserChallenge(ctx context.Context, userID, challengeID, score int) (*model.UserChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt := model.UserChallenge{
		ID:          s.nextUserChallengeID,
		UserID:      userID,
		ChallengeID: challengeID,
		Score:       score,
		CompletedAt: time.Now(),
	}
	s.nextUserChallengeID++
	s.userChallenges[attempt.ID] = attempt

	if challenge, ok := s.challenges[challengeID]; ok {
		challenge.ParticipantCount++
		s.challenges[challengeID] = challenge
	}

	return &attempt, nil
}

// sortArticlesNewestFirst orders by creation time descending. Ids rise
// monotonically, so they break ties between articles created in the same
// clock tick.
func sortArticlesNewestFirst(articles []model.Article) {
	sort.Slice(articles, func(i, j int) bool {
		if articles[i].CreatedAt.Equal(articles[j].CreatedAt) {
			return articles[i].ID > articles[j].ID
		}
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
