package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neighbornet/neighbor-api/store"
)

// submitRating is the API for rating the counterpart of a completed help
// request
func (s *Server) submitRating(c *gin.Context) {
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
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	rating, err := s.store.SubmitRating(account.ID, helpID, params.Rating, params.Comment)
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrRatingAlreadyGiven:
			abortWithEncoding(c, http.StatusForbidden, errorRatingAlreadyGiven)
		case store.ErrRequestNotRatable:
			abortWithEncoding(c, http.StatusForbidden, errorRequestNotRatable)
		case store.ErrInvalidRatingScore:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRatingScore)
		case store.ErrNotParticipant:
			abortWithEncoding(c, http.StatusForbidden, errorNotParticipant)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, rating)
}
