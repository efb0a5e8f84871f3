package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes of the REST contract.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeUserExists       = "USER_EXISTS"
	CodeInvalidLogin     = "INVALID_LOGIN_CREDENTIALS"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeRelationNotFound = "RELATION_NOT_FOUND"
	CodeRelationExists   = "RELATION_EXISTS"
	CodeRelationSettled  = "RELATION_SETTLED"
	CodeNotFound         = "NOT_FOUND"
	CodeInternal         = "INTERNAL"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Fail(c, http.StatusBadRequest, CodeValidationFailed, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Fail(c, http.StatusUnauthorized, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Fail(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Fail(c, http.StatusConflict, code, message)
}

func InternalError(c *gin.Context, message string) {
	Fail(c, http.StatusInternalServerError, CodeInternal, message)
}
