package model

import "time"

// Challenge is a scored quiz. Points is what a perfect score earns;
// ParticipantCount is a denormalized attempt counter.
type Challenge struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	CategoryID       *int    `json:"categoryId,omitempty"`
	QuestionCount    *int    `json:"questionCount,omitempty"`
	DifficultyLevel  *string `json:"difficultyLevel,omitempty"` // easy, medium, hard
	Points           *int    `json:"points,omitempty"`
	ImageURL         *string `json:"imageUrl,omitempty"`
	ParticipantCount int     `json:"participantCount"`
}

type InsertChallenge struct {
	Title           string  `json:"title" validate:"required"`
	CategoryID      *int    `json:"categoryId"`
	QuestionCount   *int    `json:"questionCount"`
	DifficultyLevel *string `json:"difficultyLevel"`
	Points          *int    `json:"points"`
	ImageURL        *string `json:"imageUrl"`
}

// UserBadge is one grant of a named badge. Nothing deduplicates grants; a user
// awarded the same badge twice keeps both rows.
type UserBadge struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	BadgeName string    `json:"badgeName"`
	EarnedAt  time.Time `json:"earnedAt"`
}

// UserChallenge is one attempt at a challenge. Every attempt is retained;
// there is no best-score aggregation.
type UserChallenge struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	ChallengeID int       `json:"challengeId"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completedAt"`
}
