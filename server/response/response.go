package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apiError "github.com/techagentng/fundhub/errors"
)

// JSON writes the standard response envelope.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	errMessage := ""
	if err != nil {
		errMessage = err.Error()
	}
	responsedata := gin.H{
		"message": message,
		"data":    data,
		"errors":  errMessage,
		"status":  http.StatusText(status),
	}
	if message == "" && err != nil {
		responsedata["message"] = errMessage
	}

	c.JSON(status, responsedata)
}

// HandleErrors maps a service error to its HTTP status; anything that is not
// an *apiError.Error reduces to a generic 500 so internals never leak.
func HandleErrors(c *gin.Context, err error) {
	if apiErr, ok := err.(*apiError.Error); ok {
		JSON(c, apiErr.Message, apiErr.Status, nil, apiErr)
		return
	}
	JSON(c, "internal server error", http.StatusInternalServerError, nil, apiError.ErrInternalServerError)
}
