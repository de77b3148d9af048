package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/neighbornet/neighbor-api/schema"
)

var (
	ErrAccountTaken = fmt.Errorf("the username or email has been taken")
)

// AccountParams collects the fields needed to register a user.
type AccountParams struct {
	Username                string
	Email                   string
	Password                string
	PhoneNumber             string
	Bio                     string
	Location                string
	ProfilePictureURL       string
	PreferredHelpCategories []string
}

// AccountUpdateParams holds the mutable profile fields. Nil pointers are
// left untouched.
type AccountUpdateParams struct {
	PhoneNumber             *string
	Bio                     *string
	Location                *string
	ProfilePictureURL       *string
	IsAvailableForHelp      *bool
	PreferredHelpCategories []string
}

// CreateAccount registers a user into the neighbor system
func (s *NeighborStore) CreateAccount(params AccountParams) (*schema.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := schema.User{
		Username:                params.Username,
		Email:                   params.Email,
		PasswordDigest:          string(digest),
		PhoneNumber:             params.PhoneNumber,
		Bio:                     params.Bio,
		Location:                params.Location,
		ProfilePictureURL:       params.ProfilePictureURL,
		IsAvailableForHelp:      true,
		PreferredHelpCategories: schema.StringList(params.PreferredHelpCategories),
	}

	if err := s.ormDB.Create(&u).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &u, nil
}

// GetAccount returns a user of a given id
func (s *NeighborStore) GetAccount(id uuid.UUID) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAccountByUsername returns a user of a given username
func (s *NeighborStore) GetAccountByUsername(username string) (*schema.User, error) {
	var u schema.User
	if err := s.ormDB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateAccount updates the profile fields of a specific user
func (s *NeighborStore) UpdateAccount(id uuid.UUID, params AccountUpdateParams) error {
	updates := map[string]interface{}{}

	if params.PhoneNumber != nil {
		updates["phone_number"] = *params.PhoneNumber
	}
	if params.Bio != nil {
		updates["bio"] = *params.Bio
	}
	if params.Location != nil {
		updates["location"] = *params.Location
	}
	if params.ProfilePictureURL != nil {
		updates["profile_picture_url"] = *params.ProfilePictureURL
	}
	if params.IsAvailableForHelp != nil {
		updates["is_available_for_help"] = *params.IsAvailableForHelp
	}
	if params.PreferredHelpCategories != nil {
		updates["preferred_help_categories"] = schema.StringList(params.PreferredHelpCategories)
	}

	if len(updates) == 0 {
		return nil
	}

	return s.ormDB.Model(schema.User{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteAccount removes a user from our system permanently. Their help
// requests go away with them through the FK cascade; requests they were
// assigned to as a helper survive with the assignment cleared.
func (s *NeighborStore) DeleteAccount(id uuid.UUID) error {
	return s.ormDB.Delete(schema.User{}, "id = ?", id).Error
}
