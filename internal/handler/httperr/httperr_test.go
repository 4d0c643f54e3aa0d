package httperr_test

import (
	"net/http"
	"testing"

	"shelflife/internal/handler/httperr"
	"shelflife/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		kind errs.Kind
		want int
	}{
		{errs.KindValidation, http.StatusBadRequest},
		{errs.KindAuthRequired, http.StatusUnauthorized},
		{errs.KindForbidden, http.StatusForbidden},
		{errs.KindNotMember, http.StatusForbidden},
		{errs.KindNotFound, http.StatusNotFound},
		{errs.KindConflict, http.StatusConflict},
		{errs.KindNoSubscription, http.StatusBadRequest},
		{errs.KindSubscriptionExpired, http.StatusBadRequest},
		{errs.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, httperr.StatusOf(tt.kind), string(tt.kind))
	}
}
