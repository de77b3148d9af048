package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/neighbornet/neighbor-api/schema"
)

var (
	ErrRatingAlreadyGiven = fmt.Errorf("the request has already been rated by you")
	ErrRequestNotRatable  = fmt.Errorf("only completed requests can be rated")
	ErrInvalidRatingScore = fmt.Errorf("rating score must be between 1 and 5")
	ErrNotParticipant     = fmt.Errorf("only participants of a request can rate it")
)

// SubmitRating stores a rating for a completed help request and folds the
// score into the rated user's running average. The requester rates the
// assigned helper and vice versa. The rated user's row is locked so two
// concurrent submissions can not lose an update.
func (s *NeighborStore) SubmitRating(raterID, helpID uuid.UUID, score int, comment string) (*schema.Rating, error) {
	if score < schema.MinRatingScore || score > schema.MaxRatingScore {
		return nil, ErrInvalidRatingScore
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var help schema.HelpRequest
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", helpID).First(&help).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	if help.Status != schema.HelpStatusCompleted {
		tx.Rollback()
		return nil, ErrRequestNotRatable
	}
	if help.AssignedHelperID == nil {
		tx.Rollback()
		return nil, ErrRequestNotRatable
	}

	// The counterpart of the rater is the one being rated.
	var ratedUserID uuid.UUID
	switch raterID {
	case help.RequesterID:
		ratedUserID = *help.AssignedHelperID
	case *help.AssignedHelperID:
		ratedUserID = help.RequesterID
	default:
		tx.Rollback()
		return nil, ErrNotParticipant
	}

	rating := schema.Rating{
		HelpRequestID: helpID,
		RaterID:       raterID,
		RatedUserID:   ratedUserID,
		Score:         score,
		Comment:       comment,
	}

	if err := tx.Create(&rating).Error; err != nil {
		tx.Rollback()
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrRatingAlreadyGiven
		}
		return nil, err
	}

	var rated schema.User
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", ratedUserID).First(&rated).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	rated.ApplyRating(score)

	if err := tx.Model(schema.User{}).Where("id = ?", ratedUserID).
		Updates(map[string]interface{}{
			"rating":        rated.Rating,
			"total_ratings": rated.TotalRatings,
		}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &rating, nil
}

// ListAccountRatings returns the ratings an account has received, newest
// first
func (s *NeighborStore) ListAccountRatings(accountID uuid.UUID) ([]schema.Rating, error) {
	ratings := []schema.Rating{}

	if err := s.ormDB.Where("rated_user_id = ?", accountID).
		Order("created_at desc").Find(&ratings).Error; err != nil {
		return nil, err
	}

	return ratings, nil
}
