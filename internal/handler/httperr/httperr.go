package httperr

import (
	"net/http"

	"shelflife/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortDomain maps a usecase error to its HTTP status through the error
// kind and serves the kind's message. Untagged errors read as 500 and the
// message is replaced, so internals never leak to clients.
func AbortDomain(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	msg := errs.MessageOf(err)
	if kind == errs.KindInternal {
		msg = "Internal server error"
	}
	AbortWithError(c, StatusOf(kind), err, msg, nil)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindAuthRequired:
		return http.StatusUnauthorized
	case errs.KindForbidden, errs.KindNotMember:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindNoSubscription, errs.KindSubscriptionExpired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
