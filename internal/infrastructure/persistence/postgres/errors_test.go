package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/docdesk/internal/domain/errors"
)

type stateError struct{ code string }

func (e stateError) Error() string { return "pg error " + e.code }
func (e stateError) SQLState() string { return e.code }

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		nameTaken bool
	}{
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"gorm duplicated key embrulhado", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"sqlstate 23505", stateError{code: "23505"}, true},
		{"outro sqlstate", stateError{code: "23503"}, false},
		{"texto de duplicate key sem código", errors.New(`duplicate key value violates unique constraint "documents_pkey"`), false},
		{"erro genérico", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateWriteError(tt.err)
			if tt.nameTaken {
				require.ErrorIs(t, got, domainerrors.ErrDocumentNameTaken)
				return
			}
			require.Equal(t, tt.err, got)
		})
	}

	require.NoError(t, translateWriteError(nil))
}
