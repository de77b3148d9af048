package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/neighbornet/neighbor-api/store"
)

// offerHelp is the API for offering to fulfill a help request
func (s *Server) offerHelp(c *gin.Context) {
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
		Message string `json:"message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	response, err := s.store.OfferHelp(account.ID, helpID, params.Message)
	if err != nil {
		switch err {
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		case store.ErrOfferAlreadyMade:
			abortWithEncoding(c, http.StatusForbidden, errorOfferAlreadyMade)
		case store.ErrOfferToOwnHelp:
			abortWithEncoding(c, http.StatusForbidden, errorOfferToOwnHelp)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// listOffers is the API for a requester to review offers on their request
func (s *Server) listOffers(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	helpID, err := uuid.Parse(c.Param("helpID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	responses, err := s.store.ListOffers(account.ID, helpID)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"responses": responses,
	})
}

// acceptOffer is the API for accepting one offer, assigning its helper
func (s *Server) acceptOffer(c *gin.Context) {
	account, ok := currentAccount(c)
	if !ok {
		return
	}

	helpID, err := uuid.Parse(c.Param("helpID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	responseID, err := uuid.Parse(c.Param("responseID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	help, err := s.store.AcceptOffer(account.ID, helpID, responseID)
	if err != nil {
		switch err {
		case store.ErrOfferNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorOfferNotExist)
		case store.ErrRequestNotExist:
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, help)
}
