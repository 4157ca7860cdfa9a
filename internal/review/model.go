package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	UserID        uint      `json:"userId"`
	UserName      string    `json:"userName"`
	ReviewMessage string    `json:"reviewMessage"`
	ReviewValue   int       `json:"reviewValue"`
	CreatedAt     time.Time `json:"createdAt"`
}

type AddReviewInput struct {
	ProductID     uuid.UUID
	UserID        uint
	UserName      string
	ReviewMessage string
	ReviewValue   int
}
