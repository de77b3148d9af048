package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is a post-completion score given by one participant of a help
// request to the other. A help request carries at most one rating; the
// (help_request_id, rater_id) pair is kept unique as well.
type Rating struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	HelpRequestID uuid.UUID `json:"help_request_id" gorm:"type:uuid;not null"`
	RaterID       uuid.UUID `json:"rater_id" gorm:"type:uuid;not null"`
	RatedUserID   uuid.UUID `json:"rated_user_id" gorm:"type:uuid;not null"`

	Score   int    `json:"rating" gorm:"column:rating;not null"`
	Comment string `json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
