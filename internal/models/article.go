package model

import "time"

type Category struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	ArticleCount int     `json:"articleCount"`
}

type InsertCategory struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// Article content is an HTML body. Articles are immutable once created; only
// the owning category's denormalized count changes afterwards.
type Article struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	CategoryID *int      `json:"categoryId,omitempty"`
	AuthorID   *int      `json:"authorId,omitempty"`
	ImageURL   *string   `json:"imageUrl,omitempty"`
	ReadTime   *int      `json:"readTime,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type InsertArticle struct {
	Title      string  `json:"title" validate:"required"`
	Slug       string  `json:"slug" validate:"required"`
	Content    string  `json:"content" validate:"required"`
	Excerpt    *string `json:"excerpt"`
	CategoryID *int    `json:"categoryId"`
	AuthorID   *int    `json:"authorId"`
	ImageURL   *string `json:"imageUrl"`
	ReadTime   *int    `json:"readTime"`
}
