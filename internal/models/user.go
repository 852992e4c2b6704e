package model

// User is a registered account. Password holds the hashed credential blob
// produced at registration; it never leaves the API.
type User struct {
	ID          int     `json:"id"`
	Username    string  `json:"username"`
	Password    string  `json:"-"`
	Email       string  `json:"email"`
	DisplayName *string `json:"displayName,omitempty"`
	Points      int     `json:"points"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
}

// InsertUser is the payload accepted on registration. The caller hashes the
// password before it reaches storage.
type InsertUser struct {
	Username    string  `json:"username" validate:"required"`
	Password    string  `json:"password" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	DisplayName *string `json:"displayName"`
}
