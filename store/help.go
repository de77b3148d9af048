package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neighbornet/neighbor-api/schema"
)

var (
	ErrRequestNotExist    = fmt.Errorf("the request does not exist or is not open for you")
	ErrInvalidHelpRequest = fmt.Errorf("invalid help request parameters")
)

// HelpRequestParams collects the fields needed to open a help request.
type HelpRequestParams struct {
	Title             string
	Description       string
	Category          string
	Urgency           string
	Location          string
	Latitude          *float64
	Longitude         *float64
	EstimatedDuration *int64
	RewardPoints      int64
	IsPublic          *bool
	Images            []string
}

// RequestHelp creates a help request in the open state
func (s *NeighborStore) RequestHelp(requesterID uuid.UUID, params HelpRequestParams) (*schema.HelpRequest, error) {
	if params.Title == "" {
		return nil, ErrInvalidHelpRequest
	}
	if params.Category == "" {
		params.Category = schema.HelpCategoryOther
	}
	if params.Urgency == "" {
		params.Urgency = schema.HelpUrgencyNormal
	}
	if _, ok := schema.HelpCategories[params.Category]; !ok {
		return nil, ErrInvalidHelpRequest
	}
	if _, ok := schema.HelpUrgencies[params.Urgency]; !ok {
		return nil, ErrInvalidHelpRequest
	}
	if params.RewardPoints < 0 {
		return nil, ErrInvalidHelpRequest
	}

	isPublic := true
	if params.IsPublic != nil {
		isPublic = *params.IsPublic
	}

	help := schema.HelpRequest{
		Title:             params.Title,
		Description:       params.Description,
		Category:          params.Category,
		Urgency:           params.Urgency,
		Location:          params.Location,
		Latitude:          params.Latitude,
		Longitude:         params.Longitude,
		RequesterID:       requesterID,
		Status:            schema.HelpStatusOpen,
		EstimatedDuration: params.EstimatedDuration,
		RewardPoints:      params.RewardPoints,
		IsPublic:          isPublic,
		Images:            schema.StringList(params.Images),
	}

	if err := s.ormDB.Create(&help).Error; err != nil {
		return nil, err
	}
	return &help, nil
}

// GetHelp returns a single help request
func (s *NeighborStore) GetHelp(helpID uuid.UUID) (*schema.HelpRequest, error) {
	var help schema.HelpRequest

	if err := s.ormDB.Where("id = ?", helpID).First(&help).Error; err != nil {
		return nil, err
	}

	return &help, nil
}

// ListHelps returns public open requests plus every request the account
// takes part in, newest first
func (s *NeighborStore) ListHelps(accountID uuid.UUID, count int) ([]schema.HelpRequest, error) {
	helps := []schema.HelpRequest{}

	query := s.ormDB.
		Where("(is_public = ? AND status = ?) OR requester_id = ? OR assigned_helper_id = ?",
			true, schema.HelpStatusOpen, accountID, accountID).
		Order("created_at desc")
	if count > 0 {
		query = query.Limit(count)
	}

	if err := query.Find(&helps).Error; err != nil {
		return nil, err
	}

	return helps, nil
}

// StartHelp moves an assigned request to in_progress. Only the requester
// may do so, and only from the assigned state.
func (s *NeighborStore) StartHelp(requesterID, helpID uuid.UUID) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND requester_id = ? AND status = ?",
			helpID, requesterID, schema.HelpStatusAssigned).
		Update("status", schema.HelpStatusInProgress)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	return nil
}

// CancelHelp cancels a request from any non-terminal state
func (s *NeighborStore) CancelHelp(requesterID, helpID uuid.UUID) error {
	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND requester_id = ? AND status IN (?)",
			helpID, requesterID,
			[]string{schema.HelpStatusOpen, schema.HelpStatusAssigned, schema.HelpStatusInProgress}).
		Update("status", schema.HelpStatusCancelled)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	return nil
}

// MarkHelpCompleted finishes a request and stamps completed_at. A request
// could be completed only from assigned or in_progress; in particular a
// cancelled request stays cancelled. The helper's rating is not touched
// here: rating is a separate submission made after completion.
func (s *NeighborStore) MarkHelpCompleted(requesterID, helpID uuid.UUID) (*schema.HelpRequest, error) {
	now := time.Now()

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND requester_id = ? AND status IN (?)",
			helpID, requesterID,
			[]string{schema.HelpStatusAssigned, schema.HelpStatusInProgress}).
		Updates(map[string]interface{}{
			"status":       schema.HelpStatusCompleted,
			"completed_at": now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrRequestNotExist
	}

	return s.GetHelp(helpID)
}
