package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StringList is an ordered list of strings stored as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

type User struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Username       string    `json:"username" gorm:"unique_index;not null"`
	Email          string    `json:"email" gorm:"unique_index;not null"`
	PasswordDigest string    `json:"-"`

	PhoneNumber       string `json:"phone_number"`
	Bio               string `json:"bio"`
	Location          string `json:"location"`
	ProfilePictureURL string `json:"profile_picture_url"`

	// Rating is the arithmetic mean of exactly TotalRatings submitted scores.
	// Both fields are updated together inside a single transaction.
	Rating       float64 `json:"rating" gorm:"type:numeric(3,2)" sql:"default:0"`
	TotalRatings int64   `json:"total_ratings" sql:"default:0"`

	IsVerified              bool       `json:"is_verified" sql:"default:false"`
	IsAvailableForHelp      bool       `json:"is_available_for_help" sql:"default:true"`
	PreferredHelpCategories StringList `json:"preferred_help_categories" gorm:"type:jsonb;not null;default '[]'"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyRating folds one more score into the running average.
// new_average = (old_average * old_count + score) / (old_count + 1)
func (u *User) ApplyRating(score int) {
	total := u.Rating*float64(u.TotalRatings) + float64(score)
	u.TotalRatings++
	u.Rating = total / float64(u.TotalRatings)
}
