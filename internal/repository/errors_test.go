package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapTxError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{
			name:     "Serialization failure",
			err:      &pgconn.PgError{Code: "40001"},
			conflict: true,
		},
		{
			name:     "Wrapped serialization failure",
			err:      fmt.Errorf("exec: %w", &pgconn.PgError{Code: "40001"}),
			conflict: true,
		},
		{
			name:     "Unique violation is not a tx conflict",
			err:      &pgconn.PgError{Code: "23505"},
			conflict: false,
		},
		{
			name:     "Plain error",
			err:      errors.New("connection reset"),
			conflict: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapTxError(tt.err)
			assert.Equal(t, tt.conflict, errors.Is(got, ErrTxConflict))
			if !tt.conflict {
				assert.Same(t, tt.err, got)
			}
		})
	}
}
