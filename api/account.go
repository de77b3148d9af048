package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neighbornet/neighbor-api/schema"
	"github.com/neighbornet/neighbor-api/store"
)

// currentAccount fetches the user attached by recognizeAccountMiddleware
func currentAccount(c *gin.Context) (*schema.User, bool) {
	a := c.MustGet("account")
	account, ok := a.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return nil, false
	}
	return account, true
}

// accountRegister is the API for registering a new user
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Username                string   `json:"username" binding:"required"`
		Email                   string   `json:"email" binding:"required"`
		Password                string   `json:"password" binding:"required"`
		PhoneNumber             string   `json:"phone_number"`
		Bio                     string   `json:"bio"`
		Location                string   `json:"location"`
		ProfilePictureURL       string   `json:"profile_picture_url"`
		PreferredHelpCategories []string `json:"preferred_help_categories"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	u, err := s.store.CreateAccount(store.AccountParams{
		Username:                params.Username,
		Email:                   params.Email,
		Password:                params.Password,
		PhoneNumber:             params.PhoneNumber,
		Bio:                     params.Bio,
		Location:                params.Location,
		ProfilePictureURL:       params.ProfilePictureURL,
		PreferredHelpCategories: params.PreferredHelpCategories,
	})
	if err != nil {
		if err == store.ErrAccountTaken {
			abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": u,
	})
}

// accountDetail is the API to query the current user
func (s *Server) accountDetail(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdate is the API to update profile fields for the current user
func (s *Server) accountUpdate(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var params struct {
		PhoneNumber             *string  `json:"phone_number"`
		Bio                     *string  `json:"bio"`
		Location                *string  `json:"location"`
		ProfilePictureURL       *string  `json:"profile_picture_url"`
		IsAvailableForHelp      *bool    `json:"is_available_for_help"`
		PreferredHelpCategories []string `json:"preferred_help_categories"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if err := s.store.UpdateAccount(account.ID, store.AccountUpdateParams{
		PhoneNumber:             params.PhoneNumber,
		Bio:                     params.Bio,
		Location:                params.Location,
		ProfilePictureURL:       params.ProfilePictureURL,
		IsAvailableForHelp:      params.IsAvailableForHelp,
		PreferredHelpCategories: params.PreferredHelpCategories,
	}); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountDelete is the API to remove the current user from our service
func (s *Server) accountDelete(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	if err := s.store.DeleteAccount(account.ID); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountRatings is the API to list ratings the current user has received
func (s *Server) accountRatings(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	ratings, err := s.store.ListAccountRatings(account.ID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
	})
}
