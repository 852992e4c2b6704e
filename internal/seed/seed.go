// Package seed holds the demo fixtures shared by the seeding CLI and the
// in-memory backend's boot path.
package seed

import (
	"context"
	"fmt"

	"github.com/GagstyCommunity/Minutely.xyz/internal/logger"
	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

// Apply loads the demo catalog into a store: four categories, an admin user,
// and a handful of articles, products, destinations, and challenges wired to
// them. Safe against any Store implementation.
func Apply(ctx context.Context, st store.Store) error {
	tech, err := st.CreateCategory(ctx, model.InsertCategory{
		Name: "Tech", Slug: "tech", Description: strptr("Latest technology news and reviews"),
	})
	if err != nil {
		return fmt.Errorf("could not seed categories: %w", err)
	}
	if _, err := st.CreateCategory(ctx, model.InsertCategory{
		Name: "Products", Slug: "products", Description: strptr("Product reviews and comparisons"),
	}); err != nil {
		return fmt.Errorf("could not seed categories: %w", err)
	}
	travel, err := st.CreateCategory(ctx, model.InsertCategory{
		Name: "Travel", Slug: "travel", Description: strptr("Travel destinations and guides"),
	})
	if err != nil {
		return fmt.Errorf("could not seed categories: %w", err)
	}
	finance, err := st.CreateCategory(ctx, model.InsertCategory{
		Name: "Finance", Slug: "finance", Description: strptr("Financial news and advice"),
	})
	if err != nil {
		return fmt.Errorf("could not seed categories: %w", err)
	}
	logger.Info("Categories added")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash admin password: %w", err)
	}
	admin, err := st.CreateUser(ctx, model.InsertUser{
		Username:    "admin",
		Password:    string(hashed),
		Email:       "admin@minutely.xyz",
		DisplayName: strptr("Admin User"),
	})
	if err != nil {
		return fmt.Errorf("could not seed admin user: %w", err)
	}
	logger.Info("Admin user added")

	articles := []model.InsertArticle{
		{
			Title:      "The Future of AI",
			Slug:       "future-of-ai",
			Content:    "<p>Artificial Intelligence is transforming our world in ways we could hardly imagine just a few years ago...</p>",
			Excerpt:    strptr("How AI is changing the technology landscape"),
			CategoryID: &tech.ID,
			AuthorID:   &admin.ID,
			ReadTime:   intptr(5),
		},
		{
			Title:      "Top Investment Strategies for 2025",
			Slug:       "investment-strategies-2025",
			Content:    "<p>With market volatility at an all-time high, investors need to adopt new strategies...</p>",
			Excerpt:    strptr("Smart investment approaches for the current economic climate"),
			CategoryID: &finance.ID,
			AuthorID:   &admin.ID,
			ReadTime:   intptr(7),
		},
		{
			Title:      "Must-Visit Destinations in Asia",
			Slug:       "asia-destinations",
			Content:    "<p>Asia offers a rich tapestry of cultures, cuisines, and landscapes that every traveler should experience...</p>",
			Excerpt:    strptr("Explore the hidden gems of the Asian continent"),
			CategoryID: &travel.ID,
			AuthorID:   &admin.ID,
			ReadTime:   intptr(8),
		},
	}
	for _, a := range articles {
		if _, err := st.CreateArticle(ctx, a); err != nil {
			return fmt.Errorf("could not seed articles: %w", err)
		}
	}
	logger.Info("Articles added")

	products := []model.InsertProduct{
		{
			Name:        "iPhone 16 Pro",
			Description: strptr("The latest flagship smartphone with advanced AI capabilities"),
			CategoryID:  &tech.ID,
			Rating:      intptr(5),
		},
		{
			Name:        "Samsung Galaxy S24",
			Description: strptr("Feature-rich Android smartphone with exceptional camera quality"),
			CategoryID:  &tech.ID,
			Rating:      intptr(4),
		},
		{
			Name:        "MacBook Air M3",
			Description: strptr("Ultra-thin laptop with powerful performance and all-day battery life"),
			CategoryID:  &tech.ID,
			Rating:      intptr(5),
		},
	}
	for _, p := range products {
		if _, err := st.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("could not seed products: %w", err)
		}
	}
	logger.Info("Products added")

	destinations := []model.InsertDestination{
		{
			Name:            "Kyoto, Japan",
			Region:          strptr("Asia"),
			Description:     strptr("Historic city with beautiful temples and traditional gardens"),
			Rating:          intptr(5),
			BestTimeToVisit: strptr("April and November"),
			Tags:            []string{"culture", "history", "food"},
		},
		{
			Name:            "Barcelona, Spain",
			Region:          strptr("Europe"),
			Description:     strptr("Vibrant coastal city known for unique architecture and lively culture"),
			Rating:          intptr(5),
			BestTimeToVisit: strptr("May to June"),
			Tags:            []string{"beach", "architecture", "nightlife"},
		},
		{
			Name:            "Cape Town, South Africa",
			Region:          strptr("Africa"),
			Description:     strptr("Stunning coastal city with diverse attractions from mountains to vineyards"),
			Rating:          intptr(4),
			BestTimeToVisit: strptr("October to April"),
			Tags:            []string{"nature", "adventure", "wine"},
		},
	}
	for _, d := range destinations {
		if _, err := st.CreateDestination(ctx, d); err != nil {
			return fmt.Errorf("could not seed destinations: %w", err)
		}
	}
	logger.Info("Destinations added")

	challenges := []model.InsertChallenge{
		{
			Title:           "Tech Trivia Challenge",
			CategoryID:      &tech.ID,
			QuestionCount:   intptr(10),
			DifficultyLevel: strptr("medium"),
			Points:          intptr(100),
		},
		{
			Title:           "Finance Fundamentals Quiz",
			CategoryID:      &finance.ID,
			QuestionCount:   intptr(15),
			DifficultyLevel: strptr("hard"),
			Points:          intptr(150),
		},
		{
			Title:           "World Traveler Test",
			CategoryID:      &travel.ID,
			QuestionCount:   intptr(12),
			DifficultyLevel: strptr("easy"),
			Points:          intptr(75),
		},
	}
	for _, c := range challenges {
		if _, err := st.CreateChallenge(ctx, c); err != nil {
			return fmt.Errorf("could not seed challenges: %w", err)
		}
	}
	logger.Info("Challenges added")

	return nil
}
