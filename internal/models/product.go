package model

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	CategoryID  *int    `json:"categoryId,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
}

type InsertProduct struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	CategoryID  *int    `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
	Rating      *int    `json:"rating"`
}

// ProductComparison pairs two products with a free-text comparison body. No
// write path exists for it yet; listings come back empty until one does.
type ProductComparison struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	CategoryID *int    `json:"categoryId,omitempty"`
	ProductID1 *int    `json:"productId1,omitempty"`
	ProductID2 *int    `json:"productId2,omitempty"`
	Comparison *string `json:"comparison,omitempty"`
}
