package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"katana_store/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", &domain.ValidationError{Reason: "price cannot be negative"}, http.StatusBadRequest},
		{"product not found", &domain.ProductNotFoundError{ProductID: "abc"}, http.StatusBadRequest},
		{"wrapped malformed request", fmt.Errorf("checkout: %w", domain.ErrMalformedRequest), http.StatusBadRequest},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"infrastructure failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, mapErrorToStatus(tt.err))
		})
	}
}
