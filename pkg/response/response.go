package response

import (
	"errors"
	"net/http"

	appErr "balatro-spectator/pkg/errors"

	"github.com/gin-gonic/gin"
)

type Body struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"msg"`
}

func Success(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data, "")
}

func Error(c *gin.Context, status int, msg string) {
	JSON(c, status, gin.H{}, msg)
}

// FromError writes err with the status its sentinel maps to.
func FromError(c *gin.Context, err error) {
	Error(c, StatusOf(err), err.Error())
}

func StatusOf(err error) int {
	switch {
	case errors.Is(err, appErr.ErrInvalidCard),
		errors.Is(err, appErr.ErrInvalidJoker),
		errors.Is(err, appErr.ErrInvalidState),
		errors.Is(err, appErr.ErrEmptyClientName):
		return http.StatusBadRequest
	case errors.Is(err, appErr.ErrHandTooLarge),
		errors.Is(err, appErr.ErrTooManyStates):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, appErr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, appErr.ErrStateNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func JSON(c *gin.Context, status int, data interface{}, msg string) {
	if data == nil {
		data = gin.H{}
	}
	c.JSON(status, Body{
		Code: status,
		Data: data,
		Msg:  msg,
	})
}
