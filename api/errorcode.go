package api

import "github.com/neighbornet/neighbor-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid username or password",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrAccountTaken.Error(),
		1101: "account not found",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrInvalidHelpRequest.Error(),
		1202: store.ErrOfferAlreadyMade.Error(),
		1203: store.ErrOfferNotExist.Error(),
		1204: store.ErrOfferToOwnHelp.Error(),

		1300: store.ErrRatingAlreadyGiven.Error(),
		1301: store.ErrRequestNotRatable.Error(),
		1302: store.ErrInvalidRatingScore.Error(),
		1303: store.ErrNotParticipant.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)

	errorRequestNotExist    = errorJSON(1200)
	errorInvalidHelpRequest = errorJSON(1201)
	errorOfferAlreadyMade   = errorJSON(1202)
	errorOfferNotExist      = errorJSON(1203)
	errorOfferToOwnHelp     = errorJSON(1204)

	errorRatingAlreadyGiven = errorJSON(1300)
	errorRequestNotRatable  = errorJSON(1301)
	errorInvalidRatingScore = errorJSON(1302)
	errorNotParticipant     = errorJSON(1303)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
