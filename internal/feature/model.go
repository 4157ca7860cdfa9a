package feature

import (
	"time"

	"github.com/google/uuid"
)

// Image is a storefront banner shown on the landing page.
type Image struct {
	ID        uuid.UUID `json:"id"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
