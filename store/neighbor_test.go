package store

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/stretchr/testify/suite"

	"github.com/neighbornet/neighbor-api/schema"
)

// NeighborStoreTestSuite runs against a live postgres pointed to by
// NEIGHBOR_TEST_ORM_CONN. Without it the suite is skipped.
type NeighborStoreTestSuite struct {
	suite.Suite
	connURI string
	ormDB   *gorm.DB
	store   *NeighborStore
}

func NewNeighborStoreTestSuite(connURI string) *NeighborStoreTestSuite {
	return &NeighborStoreTestSuite{
		connURI: connURI,
	}
}

func (s *NeighborStoreTestSuite) SetupSuite() {
	if s.connURI == "" {
		s.T().Skip("NEIGHBOR_TEST_ORM_CONN not set")
	}

	ormDB, err := gorm.Open("postgres", s.connURI)
	if err != nil {
		s.T().Fatalf("connect postgres with error: %s", err)
	}
	s.ormDB = ormDB
	s.store = NewNeighborStore(ormDB)

	// make sure the suite runs with a clean environment
	if err := s.ormDB.DropTableIfExists(
		&schema.Rating{},
		&schema.HelpRequestResponse{},
		&schema.HelpRequest{},
		&schema.User{},
	).Error; err != nil {
		s.T().Fatal(err)
	}

	if err := s.ormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		s.T().Fatal(err)
	}

	if err := s.ormDB.AutoMigrate(
		&schema.User{},
		&schema.HelpRequest{},
		&schema.HelpRequestResponse{},
		&schema.Rating{},
	).Error; err != nil {
		s.T().Fatal(err)
	}

	for _, q := range []*gorm.DB{
		s.ormDB.Model(schema.HelpRequest{}).AddForeignKey("requester_id", "users(id)", "CASCADE", "CASCADE"),
		s.ormDB.Model(schema.HelpRequest{}).AddForeignKey("assigned_helper_id", "users(id)", "SET NULL", "CASCADE"),
		s.ormDB.Model(schema.HelpRequestResponse{}).AddForeignKey("help_request_id", "help_requests(id)", "CASCADE", "CASCADE"),
		s.ormDB.Model(schema.HelpRequestResponse{}).AddForeignKey("helper_id", "users(id)", "CASCADE", "CASCADE"),
		s.ormDB.Model(schema.Rating{}).AddForeignKey("help_request_id", "help_requests(id)", "CASCADE", "CASCADE"),
		s.ormDB.Model(schema.Rating{}).AddForeignKey("rater_id", "users(id)", "CASCADE", "CASCADE"),
		s.ormDB.Model(schema.Rating{}).AddForeignKey("rated_user_id", "users(id)", "CASCADE", "CASCADE"),
		s.ormDB.Model(schema.HelpRequestResponse{}).AddUniqueIndex("idx_help_request_helper", "help_request_id", "helper_id"),
		s.ormDB.Model(schema.Rating{}).AddUniqueIndex("idx_help_request_rating", "help_request_id"),
		s.ormDB.Model(schema.Rating{}).AddUniqueIndex("idx_help_request_rater", "help_request_id", "rater_id"),
	} {
		if err := q.Error; err != nil {
			s.T().Fatal(err)
		}
	}
}

func (s *NeighborStoreTestSuite) TearDownSuite() {
	if s.ormDB != nil {
		s.ormDB.Close()
	}
}

// mustCreateAccount is a test fixture helper
func (s *NeighborStoreTestSuite) mustCreateAccount(name string) *schema.User {
	u, err := s.store.CreateAccount(AccountParams{
		Username: name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "secret-password",
	})
	s.Require().NoError(err)
	return u
}

// mustCreateHelp opens a help request with default parameters
func (s *NeighborStoreTestSuite) mustCreateHelp(requester *schema.User) *schema.HelpRequest {
	help, err := s.store.RequestHelp(requester.ID, HelpRequestParams{
		Title:    "walk my dog",
		Category: schema.HelpCategoryDailyHelp,
	})
	s.Require().NoError(err)
	return help
}

// mustAssignHelp runs the offer/accept flow and returns the request in
// the assigned state
func (s *NeighborStoreTestSuite) mustAssignHelp(requester, helper *schema.User, help *schema.HelpRequest) *schema.HelpRequest {
	offer, err := s.store.OfferHelp(helper.ID, help.ID, "happy to help")
	s.Require().NoError(err)

	assigned, err := s.store.AcceptOffer(requester.ID, help.ID, offer.ID)
	s.Require().NoError(err)
	return assigned
}

// mustCompleteHelp drives a fresh request all the way to completed
func (s *NeighborStoreTestSuite) mustCompleteHelp(requester, helper *schema.User) *schema.HelpRequest {
	help := s.mustCreateHelp(requester)
	s.mustAssignHelp(requester, helper, help)

	completed, err := s.store.MarkHelpCompleted(requester.ID, help.ID)
	s.Require().NoError(err)
	return completed
}

func (s *NeighborStoreTestSuite) TestCreateAccountDefaults() {
	u := s.mustCreateAccount("alice")

	s.Equal(float64(0), u.Rating)
	s.Equal(int64(0), u.TotalRatings)
	s.True(u.IsAvailableForHelp)
	s.False(u.IsVerified)
	s.NotEqual(uuid.Nil, u.ID)
}

func (s *NeighborStoreTestSuite) TestCreateAccountTaken() {
	s.mustCreateAccount("bob")

	_, err := s.store.CreateAccount(AccountParams{
		Username: "bob",
		Email:    "bob-second@example.com",
		Password: "secret-password",
	})
	s.Equal(ErrAccountTaken, err)
}

func (s *NeighborStoreTestSuite) TestRequestHelpDefaults() {
	requester := s.mustCreateAccount("carol")

	help, err := s.store.RequestHelp(requester.ID, HelpRequestParams{
		Title: "need a ladder",
	})
	s.NoError(err)

	s.Equal(schema.HelpStatusOpen, help.Status)
	s.Equal(schema.HelpCategoryOther, help.Category)
	s.Equal(schema.HelpUrgencyNormal, help.Urgency)
	s.Equal(int64(0), help.RewardPoints)
	s.True(help.IsPublic)
	s.Nil(help.CompletedAt)
	s.Nil(help.AssignedHelperID)
}

func (s *NeighborStoreTestSuite) TestRequestHelpRejectsUnknownCategory() {
	requester := s.mustCreateAccount("carl")

	_, err := s.store.RequestHelp(requester.ID, HelpRequestParams{
		Title:    "need a ladder",
		Category: "gardening",
	})
	s.Equal(ErrInvalidHelpRequest, err)
}

func (s *NeighborStoreTestSuite) TestOfferHelpTwice() {
	requester := s.mustCreateAccount("dave")
	helper := s.mustCreateAccount("dora")
	help := s.mustCreateHelp(requester)

	_, err := s.store.OfferHelp(helper.ID, help.ID, "first offer")
	s.NoError(err)

	_, err = s.store.OfferHelp(helper.ID, help.ID, "second offer")
	s.Equal(ErrOfferAlreadyMade, err)
}

func (s *NeighborStoreTestSuite) TestOfferHelpOnOwnRequest() {
	requester := s.mustCreateAccount("erin")
	help := s.mustCreateHelp(requester)

	_, err := s.store.OfferHelp(requester.ID, help.ID, "offering to myself")
	s.Equal(ErrOfferToOwnHelp, err)
}

func (s *NeighborStoreTestSuite) TestOfferHelpOnCancelledRequest() {
	requester := s.mustCreateAccount("frank")
	helper := s.mustCreateAccount("fiona")
	help := s.mustCreateHelp(requester)

	s.NoError(s.store.CancelHelp(requester.ID, help.ID))

	_, err := s.store.OfferHelp(helper.ID, help.ID, "too late")
	s.Equal(ErrRequestNotExist, err)
}

func (s *NeighborStoreTestSuite) TestAcceptOffer() {
	requester := s.mustCreateAccount("grace")
	helper := s.mustCreateAccount("gary")
	help := s.mustCreateHelp(requester)

	offer, err := s.store.OfferHelp(helper.ID, help.ID, "I have a ladder")
	s.NoError(err)
	s.False(offer.IsAccepted)

	assigned, err := s.store.AcceptOffer(requester.ID, help.ID, offer.ID)
	s.NoError(err)
	s.Equal(schema.HelpStatusAssigned, assigned.Status)
	s.Require().NotNil(assigned.AssignedHelperID)
	s.Equal(helper.ID, *assigned.AssignedHelperID)

	var accepted schema.HelpRequestResponse
	s.NoError(s.ormDB.Where("id = ?", offer.ID).First(&accepted).Error)
	s.True(accepted.IsAccepted)
	s.NotNil(accepted.AcceptedAt)
}

func (s *NeighborStoreTestSuite) TestAcceptSecondOffer() {
	requester := s.mustCreateAccount("holly")
	first := s.mustCreateAccount("hank")
	second := s.mustCreateAccount("hugo")
	help := s.mustCreateHelp(requester)

	firstOffer, err := s.store.OfferHelp(first.ID, help.ID, "")
	s.NoError(err)
	secondOffer, err := s.store.OfferHelp(second.ID, help.ID, "")
	s.NoError(err)

	_, err = s.store.AcceptOffer(requester.ID, help.ID, firstOffer.ID)
	s.NoError(err)

	// the request left the open state, so the second accept loses
	_, err = s.store.AcceptOffer(requester.ID, help.ID, secondOffer.ID)
	s.Equal(ErrRequestNotExist, err)
}

func (s *NeighborStoreTestSuite) TestMarkHelpCompleted() {
	requester := s.mustCreateAccount("iris")
	helper := s.mustCreateAccount("ivan")

	completed := s.mustCompleteHelp(requester, helper)

	s.Equal(schema.HelpStatusCompleted, completed.Status)
	s.Require().NotNil(completed.CompletedAt)
	s.False(completed.CompletedAt.Before(completed.CreatedAt))
}

func (s *NeighborStoreTestSuite) TestMarkHelpCompletedOnOpenRequest() {
	requester := s.mustCreateAccount("jane")
	help := s.mustCreateHelp(requester)

	_, err := s.store.MarkHelpCompleted(requester.ID, help.ID)
	s.Equal(ErrRequestNotExist, err)
}

func (s *NeighborStoreTestSuite) TestMarkHelpCompletedOnCancelledRequest() {
	requester := s.mustCreateAccount("kate")
	helper := s.mustCreateAccount("kyle")
	help := s.mustCreateHelp(requester)
	s.mustAssignHelp(requester, helper, help)

	s.NoError(s.store.CancelHelp(requester.ID, help.ID))

	_, err := s.store.MarkHelpCompleted(requester.ID, help.ID)
	s.Equal(ErrRequestNotExist, err)
}

func (s *NeighborStoreTestSuite) TestStartHelp() {
	requester := s.mustCreateAccount("lara")
	helper := s.mustCreateAccount("liam")
	help := s.mustCreateHelp(requester)

	s.Equal(ErrRequestNotExist, s.store.StartHelp(requester.ID, help.ID))

	s.mustAssignHelp(requester, helper, help)
	s.NoError(s.store.StartHelp(requester.ID, help.ID))

	current, err := s.store.GetHelp(help.ID)
	s.NoError(err)
	s.Equal(schema.HelpStatusInProgress, current.Status)
}

func (s *NeighborStoreTestSuite) TestSubmitRating() {
	requester := s.mustCreateAccount("mona")
	helper := s.mustCreateAccount("mike")

	completed := s.mustCompleteHelp(requester, helper)

	rating, err := s.store.SubmitRating(requester.ID, completed.ID, 4, "great help")
	s.NoError(err)
	s.Equal(4, rating.Score)
	s.Equal(helper.ID, rating.RatedUserID)

	rated, err := s.store.GetAccount(helper.ID)
	s.NoError(err)
	s.Equal(float64(4), rated.Rating)
	s.Equal(int64(1), rated.TotalRatings)
}

func (s *NeighborStoreTestSuite) TestSubmitRatingRunningAverage() {
	requester := s.mustCreateAccount("nina")
	helper := s.mustCreateAccount("ned")

	first := s.mustCompleteHelp(requester, helper)
	second := s.mustCompleteHelp(requester, helper)

	_, err := s.store.SubmitRating(requester.ID, first.ID, 4, "")
	s.NoError(err)
	_, err = s.store.SubmitRating(requester.ID, second.ID, 2, "")
	s.NoError(err)

	rated, err := s.store.GetAccount(helper.ID)
	s.NoError(err)
	s.Equal(float64(3), rated.Rating)
	s.Equal(int64(2), rated.TotalRatings)
}

func (s *NeighborStoreTestSuite) TestSubmitRatingTwice() {
	requester := s.mustCreateAccount("olga")
	helper := s.mustCreateAccount("oscar")

	completed := s.mustCompleteHelp(requester, helper)

	_, err := s.store.SubmitRating(requester.ID, completed.ID, 5, "")
	s.NoError(err)

	_, err = s.store.SubmitRating(requester.ID, completed.ID, 1, "")
	s.Equal(ErrRatingAlreadyGiven, err)
}

func (s *NeighborStoreTestSuite) TestSubmitRatingBeforeCompletion() {
	requester := s.mustCreateAccount("pam")
	helper := s.mustCreateAccount("pete")
	help := s.mustCreateHelp(requester)
	s.mustAssignHelp(requester, helper, help)

	_, err := s.store.SubmitRating(requester.ID, help.ID, 5, "")
	s.Equal(ErrRequestNotRatable, err)
}

func (s *NeighborStoreTestSuite) TestSubmitRatingByOutsider() {
	requester := s.mustCreateAccount("quinn")
	helper := s.mustCreateAccount("quil")
	outsider := s.mustCreateAccount("quentin")

	completed := s.mustCompleteHelp(requester, helper)

	_, err := s.store.SubmitRating(outsider.ID, completed.ID, 5, "")
	s.Equal(ErrNotParticipant, err)
}

func (s *NeighborStoreTestSuite) TestSubmitRatingInvalidScore() {
	requester := s.mustCreateAccount("rhea")
	helper := s.mustCreateAccount("ross")

	completed := s.mustCompleteHelp(requester, helper)

	_, err := s.store.SubmitRating(requester.ID, completed.ID, 0, "")
	s.Equal(ErrInvalidRatingScore, err)
	_, err = s.store.SubmitRating(requester.ID, completed.ID, 6, "")
	s.Equal(ErrInvalidRatingScore, err)
}

func (s *NeighborStoreTestSuite) TestDeleteRequesterCascades() {
	requester := s.mustCreateAccount("sara")
	helper := s.mustCreateAccount("seth")

	completed := s.mustCompleteHelp(requester, helper)
	_, err := s.store.SubmitRating(requester.ID, completed.ID, 5, "")
	s.NoError(err)

	s.NoError(s.store.DeleteAccount(requester.ID))

	var helpCount, responseCount, ratingCount int
	s.NoError(s.ormDB.Model(schema.HelpRequest{}).Where("requester_id = ?", requester.ID).Count(&helpCount).Error)
	s.NoError(s.ormDB.Model(schema.HelpRequestResponse{}).Where("help_request_id = ?", completed.ID).Count(&responseCount).Error)
	s.NoError(s.ormDB.Model(schema.Rating{}).Where("help_request_id = ?", completed.ID).Count(&ratingCount).Error)
	s.Equal(0, helpCount)
	s.Equal(0, responseCount)
	s.Equal(0, ratingCount)
}

func (s *NeighborStoreTestSuite) TestDeleteHelperClearsAssignment() {
	requester := s.mustCreateAccount("tina")
	helper := s.mustCreateAccount("tom")
	help := s.mustCreateHelp(requester)
	s.mustAssignHelp(requester, helper, help)

	s.NoError(s.store.DeleteAccount(helper.ID))

	current, err := s.store.GetHelp(help.ID)
	s.NoError(err)
	s.Nil(current.AssignedHelperID)
	s.Equal(schema.HelpStatusAssigned, current.Status)
}

func (s *NeighborStoreTestSuite) TestListHelps() {
	requester := s.mustCreateAccount("uma")
	other := s.mustCreateAccount("ugo")

	visible := s.mustCreateHelp(requester)

	hidden := false
	private, err := s.store.RequestHelp(requester.ID, HelpRequestParams{
		Title:    "private chore",
		IsPublic: &hidden,
	})
	s.NoError(err)

	helps, err := s.store.ListHelps(other.ID, 0)
	s.NoError(err)

	ids := map[uuid.UUID]bool{}
	for _, h := range helps {
		ids[h.ID] = true
	}
	s.True(ids[visible.ID])
	s.False(ids[private.ID])

	// the owner still sees their private request
	helps, err = s.store.ListHelps(requester.ID, 0)
	s.NoError(err)
	ids = map[uuid.UUID]bool{}
	for _, h := range helps {
		ids[h.ID] = true
	}
	s.True(ids[private.ID])
}

func (s *NeighborStoreTestSuite) TestListOffersOnlyForRequester() {
	requester := s.mustCreateAccount("vera")
	helper := s.mustCreateAccount("vic")
	help := s.mustCreateHelp(requester)

	_, err := s.store.OfferHelp(helper.ID, help.ID, "offer")
	s.NoError(err)

	offers, err := s.store.ListOffers(requester.ID, help.ID)
	s.NoError(err)
	s.Len(offers, 1)

	_, err = s.store.ListOffers(helper.ID, help.ID)
	s.Equal(ErrRequestNotExist, err)
}

func (s *NeighborStoreTestSuite) TestUpdatedAtMaintained() {
	requester := s.mustCreateAccount("wendy")
	help := s.mustCreateHelp(requester)

	time.Sleep(10 * time.Millisecond)
	s.NoError(s.store.CancelHelp(requester.ID, help.ID))

	current, err := s.store.GetHelp(help.ID)
	s.NoError(err)
	s.True(current.UpdatedAt.After(help.UpdatedAt))
}

func TestNeighborStoreTestSuite(t *testing.T) {
	suite.Run(t, NewNeighborStoreTestSuite(os.Getenv("NEIGHBOR_TEST_ORM_CONN")))
}
