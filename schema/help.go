package schema

import (
	"time"

	"github.com/google/uuid"
)

// Help request categories
const (
	HelpCategoryDailyHelp = "daily_help"
	HelpCategoryTransport = "transport"
	HelpCategoryEmergency = "emergency"
	HelpCategoryResources = "resources"
	HelpCategoryLearning  = "learning"
	HelpCategoryOther     = "other"
)

// Urgency levels
const (
	HelpUrgencyLow       = "low"
	HelpUrgencyNormal    = "normal"
	HelpUrgencyUrgent    = "urgent"
	HelpUrgencyEmergency = "emergency"
)

// Help request states
const (
	HelpStatusOpen       = "open"
	HelpStatusAssigned   = "assigned"
	HelpStatusInProgress = "in_progress"
	HelpStatusCompleted  = "completed"
	HelpStatusCancelled  = "cancelled"
)

var HelpCategories = map[string]struct{}{
	HelpCategoryDailyHelp: {},
	HelpCategoryTransport: {},
	HelpCategoryEmergency: {},
	HelpCategoryResources: {},
	HelpCategoryLearning:  {},
	HelpCategoryOther:     {},
}

var HelpUrgencies = map[string]struct{}{
	HelpUrgencyLow:       {},
	HelpUrgencyNormal:    {},
	HelpUrgencyUrgent:    {},
	HelpUrgencyEmergency: {},
}

// HelpStatusTransitions lists the reachable next states for every state.
// completed and cancelled are terminal.
var HelpStatusTransitions = map[string][]string{
	HelpStatusOpen:       {HelpStatusAssigned, HelpStatusCancelled},
	HelpStatusAssigned:   {HelpStatusInProgress, HelpStatusCompleted, HelpStatusCancelled},
	HelpStatusInProgress: {HelpStatusCompleted, HelpStatusCancelled},
	HelpStatusCompleted:  {},
	HelpStatusCancelled:  {},
}

// CanTransitHelpStatus reports whether a help request may move from one
// state to another.
func CanTransitHelpStatus(from, to string) bool {
	for _, s := range HelpStatusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type HelpRequest struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Category    string    `json:"category" sql:"default:'other'"`
	Urgency     string    `json:"urgency" sql:"default:'normal'"`

	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude" gorm:"type:numeric(9,6)"`
	Longitude *float64 `json:"longitude" gorm:"type:numeric(9,6)"`

	RequesterID      uuid.UUID  `json:"requester_id" gorm:"type:uuid;not null"`
	AssignedHelperID *uuid.UUID `json:"assigned_helper_id" gorm:"type:uuid"`

	Status      string     `json:"status" sql:"default:'open'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// EstimatedDuration is in seconds.
	EstimatedDuration *int64     `json:"estimated_duration"`
	RewardPoints      int64      `json:"reward_points" sql:"default:0"`
	IsPublic          bool       `json:"is_public" sql:"default:true"`
	Images            StringList `json:"images" gorm:"type:jsonb;not null;default '[]'"`
}

type HelpRequestResponse struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	HelpRequestID uuid.UUID `json:"help_request_id" gorm:"type:uuid;not null"`
	HelperID      uuid.UUID `json:"helper_id" gorm:"type:uuid;not null"`

	Message   string    `json:"message"`
	OfferedAt time.Time `json:"offered_at"`

	IsAccepted bool       `json:"is_accepted" sql:"default:false"`
	AcceptedAt *time.Time `json:"accepted_at"`
}
