package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/neighbornet/neighbor-api/schema"
)

var (
	ErrOfferAlreadyMade = fmt.Errorf("making multiple offers to the same request is not allowed")
	ErrOfferNotExist    = fmt.Errorf("the offer does not exist or its request is not open")
	ErrOfferToOwnHelp   = fmt.Errorf("offering help to your own request is not allowed")
)

// OfferHelp records an offer from a helper against a help request. Offers
// are taken only while the request is open, a requester can not offer on
// their own request, and a helper may offer only once per request.
func (s *NeighborStore) OfferHelp(helperID, helpID uuid.UUID, message string) (*schema.HelpRequestResponse, error) {
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

	if help.Status != schema.HelpStatusOpen {
		tx.Rollback()
		return nil, ErrRequestNotExist
	}
	if help.RequesterID == helperID {
		tx.Rollback()
		return nil, ErrOfferToOwnHelp
	}

	response := schema.HelpRequestResponse{
		HelpRequestID: helpID,
		HelperID:      helperID,
		Message:       message,
		OfferedAt:     time.Now(),
	}

	if err := tx.Create(&response).Error; err != nil {
		tx.Rollback()
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrOfferAlreadyMade
		}
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &response, nil
}

// ListOffers returns the offers made against a request, newest first.
// Only the requester sees them.
func (s *NeighborStore) ListOffers(requesterID, helpID uuid.UUID) ([]schema.HelpRequestResponse, error) {
	var help schema.HelpRequest
	if err := s.ormDB.Where("id = ? AND requester_id = ?", helpID, requesterID).
		First(&help).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	responses := []schema.HelpRequestResponse{}
	if err := s.ormDB.Where("help_request_id = ?", helpID).
		Order("offered_at desc").Find(&responses).Error; err != nil {
		return nil, err
	}

	return responses, nil
}

// AcceptOffer accepts exactly one offer for an open request. The request
// row is moved open -> assigned and the helper recorded in the same
// transaction as the offer update, so two offers can never both win.
func (s *NeighborStore) AcceptOffer(requesterID, helpID, responseID uuid.UUID) (*schema.HelpRequest, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var response schema.HelpRequestResponse
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ? AND help_request_id = ?", responseID, helpID).
		First(&response).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrOfferNotExist
		}
		return nil, err
	}

	// The status guard makes the second concurrent accept a no-op.
	result := tx.Model(schema.HelpRequest{}).
		Where("id = ? AND requester_id = ? AND status = ?",
			helpID, requesterID, schema.HelpStatusOpen).
		Updates(map[string]interface{}{
			"status":             schema.HelpStatusAssigned,
			"assigned_helper_id": response.HelperID,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrRequestNotExist
	}

	now := time.Now()
	if err := tx.Model(schema.HelpRequestResponse{}).
		Where("id = ?", responseID).
		Updates(map[string]interface{}{
			"is_accepted": true,
			"accepted_at": now,
		}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetHelp(helpID)
}
