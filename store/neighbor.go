package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/neighbornet/neighbor-api/schema"
)

// neighbor main datastore
type NeighborCore interface {
	Ping() error

	// Account
	CreateAccount(params AccountParams) (*schema.User, error)
	GetAccount(id uuid.UUID) (*schema.User, error)
	GetAccountByUsername(username string) (*schema.User, error)
	UpdateAccount(id uuid.UUID, params AccountUpdateParams) error
	DeleteAccount(id uuid.UUID) error

	// Help request lifecycle
	RequestHelp(requesterID uuid.UUID, params HelpRequestParams) (*schema.HelpRequest, error)
	GetHelp(helpID uuid.UUID) (*schema.HelpRequest, error)
	ListHelps(accountID uuid.UUID, count int) ([]schema.HelpRequest, error)
	StartHelp(requesterID, helpID uuid.UUID) error
	CancelHelp(requesterID, helpID uuid.UUID) error
	MarkHelpCompleted(requesterID, helpID uuid.UUID) (*schema.HelpRequest, error)

	// Offers
	OfferHelp(helperID, helpID uuid.UUID, message string) (*schema.HelpRequestResponse, error)
	ListOffers(requesterID, helpID uuid.UUID) ([]schema.HelpRequestResponse, error)
	AcceptOffer(requesterID, helpID, responseID uuid.UUID) (*schema.HelpRequest, error)

	// Ratings
	SubmitRating(raterID, helpID uuid.UUID, score int, comment string) (*schema.Rating, error)
	ListAccountRatings(accountID uuid.UUID) ([]schema.Rating, error)
}

// NeighborStore is a postgres-backed implementation of NeighborCore
type NeighborStore struct {
	ormDB *gorm.DB
}

func NewNeighborStore(ormDB *gorm.DB) *NeighborStore {
	return &NeighborStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *NeighborStore) Ping() error {
	return s.ormDB.DB().Ping()
}
