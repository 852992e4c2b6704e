package scanner

import (
	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/lib/pq"
)

// RowScanner is satisfied by pgx.Row and pgx.Rows alike, so the same Scan
// helpers serve single-row and multi-row queries.
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanUser scans a SQL row into a User. Column order: id, username, password,
// email, display_name, points, avatar_url.
func ScanUser(row RowScanner) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Password, &u.Email,
		&u.DisplayName, &u.Points, &u.AvatarURL,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func ScanCategory(row RowScanner) (*model.Category, error) {
	var c model.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.ArticleCount,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func ScanArticle(row RowScanner) (*model.Article, error) {
	var a model.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Content, &a.Excerpt,
		&a.CategoryID, &a.AuthorID, &a.ImageURL, &a.ReadTime, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func ScanProduct(row RowScanner) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.ImageURL, &p.Rating,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func ScanProductComparison(row RowScanner) (*model.ProductComparison, error) {
	var c model.ProductComparison
	err := row.Scan(
		&c.ID, &c.Title, &c.CategoryID, &c.ProductID1, &c.ProductID2, &c.Comparison,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ScanDestination scans tags through pq.Array since they live in a text[]
// column.
func ScanDestination(row RowScanner) (*model.Destination, error) {
	var d model.Destination
	err := row.Scan(
		&d.ID, &d.Name, &d.Region, &d.Description, &d.ImageURL,
		&d.Rating, &d.BestTimeToVisit, pq.Array(&d.Tags),
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func ScanChallenge(row RowScanner) (*model.Challenge, error) {
	var c model.Challenge
	err := row.Scan(
		&c.ID, &c.Title, &c.CategoryID, &c.QuestionCount,
		&c.DifficultyLevel, &c.Points, &c.ImageURL, &c.ParticipantCount,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func ScanUserBadge(row RowScanner) (*model.UserBadge, error) {
	var b model.UserBadge
	err := row.Scan(&b.ID, &b.UserID, &b.BadgeName, &b.EarnedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func ScanUserChallenge(row RowScanner) (*model.UserChallenge, error) {
	var uc model.UserChallenge
	err := row.Scan(&uc.ID, &uc.UserID, &uc.ChallengeID, &uc.Score, &uc.CompletedAt)
	if err != nil {
		return nil, err
	}
	return &uc, nil
}
