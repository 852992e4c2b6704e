package store

import (
	"context"
	"errors"
	"fmt"

	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/scanner"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// DB is the slice of pgxpool.Pool the Postgres store needs. Keeping it narrow
// lets tests swap in a mock pool.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgStore delegates every operation to PostgreSQL. Denormalized counters
// (category article_count, challenge participant_count) are maintained with a
// single atomic increment statement so concurrent writers stay consistent.
type PgStore struct {
	db DB
}

var _ Store = (*PgStore)(nil)

func NewPgStore(db DB) *PgStore {
	return &PgStore{db: db}
}

func notFoundOr(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("could not get %s: %w", what, err)
}

const userColumns = `id, username, password, email, display_name, points, avatar_url`

func (s *PgStore) GetUser(ctx context.Context, id int) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	user, err := scanner.ScanUser(row)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

func (s *PgStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username=$1`, username)
	user, err := scanner.ScanUser(row)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

func (s *PgStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	user, err := scanner.ScanUser(row)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

func (s *PgStore) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO users(username, password, email, display_name, points)
		VALUES($1, $2, $3, $4, 0)
		RETURNING `+userColumns,
		in.Username, in.Password, in.Email, in.DisplayName,
	)
	user, err := scanner.ScanUser(row)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	return user, nil
}

func (s *PgStore) UpdateUserPoints(ctx context.Context, userID, delta int) (*model.User, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE users SET points = COALESCE(points, 0) + $1
		WHERE id=$2
		RETURNING `+userColumns,
		delta, userID,
	)
	user, err := scanner.ScanUser(row)
	if err != nil {
		return nil, notFoundOr(err, "user")
	}
	return user, nil
}

const categoryColumns = `id, name, slug, description, image_url, article_count`

func (s *PgStore) GetCategories(ctx context.Context) ([]model.Category, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		category, err := scanner.ScanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan category row: %w", err)
		}
		categories = append(categories, *category)
	}
	return categories, rows.Err()
}

func (s *PgStore) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE slug=$1`, slug)
	category, err := scanner.ScanCategory(row)
	if err != nil {
		return nil, notFoundOr(err, "category")
	}
	return category, nil
}

func (s *PgStore) CreateCategory(ctx context.Context, in model.InsertCategory) (*model.Category, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO categories(name, slug, description, image_url, article_count)
		VALUES($1, $2, $3, $4, 0)
		RETURNING `+categoryColumns,
		in.Name, in.Slug, in.Description, in.ImageURL,
	)
	category, err := scanner.ScanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	return category, nil
}

const articleColumns = `id, title, slug, content, excerpt, category_id, author_id, image_url, read_time, created_at`

func (s *PgStore) queryArticles(ctx context.Context, sql string, args ...any) ([]model.Article, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query articles: %w", err)
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		article, err := scanner.ScanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan article row: %w", err)
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}

func (s *PgStore) GetArticles(ctx context.Context, limit int) ([]model.Article, error) {
	sql := `SELECT ` + articleColumns + ` FROM articles ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		return s.queryArticles(ctx, sql+` LIMIT $1`, limit)
	}
	return s.queryArticles(ctx, sql)
}

func (s *PgStore) GetArticlesByCategory(ctx context.Context, categoryID, limit int) ([]model.Article, error) {
	sql := `SELECT ` + articleColumns + ` FROM articles WHERE category_id=$1 ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		return s.queryArticles(ctx, sql+` LIMIT $2`, categoryID, limit)
	}
	return s.queryArticles(ctx, sql, categoryID)
}

func (s *PgStore) GetArticleBySlug(ctx context.Context, slug string) (*model.Article, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug=$1`, slug)
	article, err := scanner.ScanArticle(row)
	if err != nil {
		return nil, notFoundOr(err, "article")
	}
	return article, nil
}

func (s *PgStore) CreateArticle(ctx context.Context, in model.InsertArticle) (*model.Article, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO articles(title, slug, content, excerpt, category_id, author_id, image_url, read_time, created_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING `+articleColumns,
		in.Title, in.Slug, in.Content, in.Excerpt, in.CategoryID, in.AuthorID, in.ImageURL, in.ReadTime,
	)
	article, err := scanner.ScanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("could not create article: %w", err)
	}

	// Best-effort count refresh; a dangling category_id matches no row and
	// that is fine.
	if article.CategoryID != nil {
		_, err = s.db.Exec(ctx,
			`UPDATE categories SET article_count = article_count + 1 WHERE id=$1`,
			*article.CategoryID,
		)
		if err != nil {
			return nil, fmt.Errorf("could not increment article count: %w", err)
		}
	}

	return article, nil
}

const productColumns = `id, name, description, category_id, image_url, rating`

func (s *PgStore) GetProducts(ctx context.Context, limit int) ([]model.Product, error) {
	sql := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	args := []any{}
	if limit > 0 {
		sql += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		product, err := scanner.ScanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan product row: %w", err)
		}
		products = append(products, *product)
	}
	return products, rows.Err()
}

func (s *PgStore) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id=$1`, id)
	product, err := scanner.ScanProduct(row)
	if err != nil {
		return nil, notFoundOr(err, "product")
	}
	return product, nil
}

func (s *PgStore) CreateProduct(ctx context.Context, in model.InsertProduct) (*model.Product, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO products(name, description, category_id, image_url, rating)
		VALUES($1, $2, $3, $4, $5)
		RETURNING `+productColumns,
		in.Name, in.Description, in.CategoryID, in.ImageURL, in.Rating,
	)
	product, err := scanner.ScanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	return product, nil
}

func (s *PgStore) GetProductComparisons(ctx context.Context, limit int) ([]model.ProductComparison, error) {
	sql := `SELECT id, title, category_id, product_id_1, product_id_2, comparison FROM product_comparisons ORDER BY id`
	args := []any{}
	if limit > 0 {
		sql += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query product comparisons: %w", err)
	}
	defer rows.Close()

	comparisons := []model.ProductComparison{}
	for rows.Next() {
		comparison, err := scanner.ScanProductComparison(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan product comparison row: %w", err)
		}
		comparisons = append(comparisons, *comparison)
	}
	return comparisons, rows.Err()
}

const destinationColumns = `id, name, region, description, image_url, rating, best_time_to_visit, tags`

func (s *PgStore) GetDestinations(ctx context.Context, limit int) ([]model.Destination, error) {
	sql := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY id`
	args := []any{}
	if limit > 0 {
		sql += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query destinations: %w", err)
	}
	defer rows.Close()

	destinations := []model.Destination{}
	for rows.Next() {
		destination, err := scanner.ScanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan destination row: %w", err)
		}
		destinations = append(destinations, *destination)
	}
	return destinations, rows.Err()
}

func (s *PgStore) GetDestinationByID(ctx context.Context, id int) (*model.Destination, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+destinationColumns+` FROM destinations WHERE id=$1`, id)
	destination, err := scanner.ScanDestination(row)
	if err != nil {
		return nil, notFoundOr(err, "destination")
	}
	return destination, nil
}

func (s *PgStore) CreateDestination(ctx context.Context, in model.InsertDestination) (*model.Destination, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO destinations(name, region, description, image_url, rating, best_time_to_visit, tags)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+destinationColumns,
		in.Name, in.Region, in.Description, in.ImageURL, in.Rating, in.BestTimeToVisit, pq.Array(in.Tags),
	)
	destination, err := scanner.ScanDestination(row)
	if err != nil {
		return nil, fmt.Errorf("could not create destination: %w", err)
	}
	return destination, nil
}

const challengeColumns = `id, title, category_id, question_count, difficulty_level, points, image_url, participant_count`

func (s *PgStore) GetChallenges(ctx context.Context, limit int) ([]model.Challenge, error) {
	sql := `SELECT ` + challengeColumns + ` FROM challenges ORDER BY id`
	args := []any{}
	if limit > 0 {
		sql += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query challenges: %w", err)
	}
	defer rows.Close()

	challenges := []model.Challenge{}
	for rows.Next() {
		challenge, err := scanner.ScanChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan challenge row: %w", err)
		}
		challenges = append(challenges, *challenge)
	}
	return challenges, rows.Err()
}

func (s *PgStore) GetChallengeByID(ctx context.Context, id int) (*model.Challenge, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE id=$1`, id)
	challenge, err := scanner.ScanChallenge(row)
	if err != nil {
		return nil, notFoundOr(err, "challenge")
	}
	return challenge, nil
}

func (s *PgStore) CreateChallenge(ctx context.Context, in model.InsertChallenge) (*model.Challenge, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO challenges(title, category_id, question_count, difficulty_level, points, image_url, participant_count)
		VALUES($1, $2, $3, $4, $5, $6, 0)
		RETURNING `+challengeColumns,
		in.Title, in.CategoryID, in.QuestionCount, in.DifficultyLevel, in.Points, in.ImageURL,
	)
	challenge, err := scanner.ScanChallenge(row)
	if err != nil {
		return nil, fmt.Errorf("could not create challenge: %w", err)
	}
	return challenge, nil
}

func (s *PgStore) GetUserBadges(ctx context.Context, userID int) ([]model.UserBadge, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, badge_name, earned_at
		FROM user_badges
		WHERE user_id=$1
		ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query user badges: %w", err)
	}
	defer rows.Close()

	badges := []model.UserBadge{}
	for rows.Next() {
		badge, err := scanner.ScanUserBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan user badge row: %w", err)
		}
		badges = append(badges, *badge)
	}
	return badges, rows.Err()
}

func (s *PgStore) AddUserBadge(ctx context.Context, userID int, badgeName string) (*model.UserBadge, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO user_badges(user_id, badge_name, earned_at)
		VALUES($1, $2, NOW())
		RETURNING id, user_id, badge_name, earned_at`,
		userID, badgeName,
	)
	badge, err := scanner.ScanUserBadge(row)
	if err != nil {
		return nil, fmt.Errorf("could not add user badge: %w", err)
	}
	return badge, nil
}

func (s *PgStore) GetUserChallenges(ctx context.Context, userID int) ([]model.UserChallenge, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, challenge_id, score, completed_at
		FROM user_challenges
		WHERE user_id=$1
		ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("could not query user challenges: %w", err)
	}
	defer rows.Close()

	attempts := []model.UserChallenge{}
	for rows.Next() {
		attempt, err := scanner.ScanUserChallenge(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan user challenge row: %w", err)
		}
		attempts = append(attempts, *attempt)
	}
	return attempts, rows.Err()
}

func (s *PgStore) AddUserChallenge(ctx context.Context, userID, challengeID, score int) (*model.UserChallenge, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO user_challenges(user_id, challenge_id, score, completed_at)
		VALUES($1, $2, $3, NOW())
		RETURNING id, user_id, challenge_id, score, completed_at`,
		userID, challengeID, score,
	)
	attempt, err := scanner.ScanUserChallenge(row)
	if err != nil {
		return nil, fmt.Errorf("could not add user challenge: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`UPDATE challenges SET participant_count = participant_count + 1 WHERE id=$1`,
		challengeID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not increment participant count: %w", err)
	}

	return attempt, nil
}
