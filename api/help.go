package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/neighbornet/neighbor-api/store"
)

// askForHelp is the API for opening a help request
func (s *Server) askForHelp(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var params struct {
		Title             string   `json:"title"`
		Description       string   `json:"description"`
		Category          string   `json:"category"`
		Urgency           string   `json:"urgency"`
		Location          string   `json:"location"`
		Latitude          *float64 `json:"latitude"`
		Longitude         *float64 `json:"longitude"`
		EstimatedDuration *int64   `json:"estimated_duration"`
		RewardPoints      int64    `json:"reward_points"`
		IsPublic          *bool    `json:"is_public"`
		Images            []string `json:"images"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	help, err := s.store.RequestHelp(account.ID, store.HelpRequestParams{
		Title:             params.Title,
		Description:       params.Description,
		Category:          params.Category,
		Urgency:           params.Urgency,
		Location:          params.Location,
		Latitude:          params.Latitude,
		Longitude:         params.Longitude,
		EstimatedDuration: params.EstimatedDuration,
		RewardPoints:      params.RewardPoints,
		IsPublic:          params.IsPublic,
		Images:            params.Images,
	})
	if err != nil {
		if err == store.ErrInvalidHelpRequest {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidHelpRequest)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, help)
}

// listHelps is the API for listing visible help requests
func (s *Server) listHelps(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	var params struct {
		Count int `form:"count"`
	}
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	helps, err := s.store.ListHelps(account.ID, params.Count)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"help_requests": helps,
	})
}

// getHelp is the API for fetching a single help request
func (s *Server) getHelp(c *gin.Context) {
	helpID, err := uuid.Parse(c.Param("helpID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	help, err := s.store.GetHelp(helpID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, help)
}

// updateHelp is the API for advancing the lifecycle of a help request.
// Supported actions: start, cancel, complete.
func (s *Server) updateHelp(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	helpID, err := uuid.Parse(c.Param("helpID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	switch params.Action {
	case "start":
		err = s.store.StartHelp(account.ID, helpID)
	case "cancel":
		err = s.store.CancelHelp(account.ID, helpID)
	case "complete":
		_, err = s.store.MarkHelpCompleted(account.ID, helpID)
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	help, err := s.store.GetHelp(helpID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, help)
}
