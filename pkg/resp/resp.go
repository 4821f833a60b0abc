package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/pkg/errs"
)

// Every command response uses the same envelope: {success:true, data} on
// success, {success:false, error} on failure. Nothing else crosses the
// boundary to the shell.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, msg)
}

func Unauthorized(c *gin.Context, msg string) {
	Fail(c, http.StatusUnauthorized, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Fail(c, http.StatusForbidden, msg)
}

// Error maps a service error to the envelope by kind.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errs.KindOf(err) {
	case errs.KindValidation:
		status = http.StatusBadRequest
	case errs.KindNotFound:
		status = http.StatusNotFound
	case errs.KindUnavailable:
		status = http.StatusConflict
	case errs.KindUnauthenticated:
		status = http.StatusUnauthorized
	case errs.KindForbidden:
		status = http.StatusForbidden
	}
	Fail(c, status, err.Error())
}
