package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"tubertreats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", 9), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get order: %w", errs.NewObjectNotFoundError("order", 9)), http.StatusNotFound},
		{"invalid", errs.NewValueIsInvalidError("id"), http.StatusBadRequest},
		{"required", errs.NewValueIsRequiredError("driverID"), http.StatusBadRequest},
		{"joined", errors.Join(errs.NewValueIsRequiredError("driverID"), errs.NewValueIsInvalidError("orderID")), http.StatusBadRequest},
		{"cancelled", context.Canceled, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
