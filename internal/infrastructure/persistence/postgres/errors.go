package postgres

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/docdesk/internal/domain/errors"
)

// uniqueViolation é o SQLSTATE do PostgreSQL para unique_violation
const uniqueViolation = "23505"

// sqlStateErr é satisfeita por *pgconn.PgError sem importar o pgx diretamente
type sqlStateErr interface {
	SQLState() string
	Error() string
}

// translateWriteError converte a violação do índice de nome em ErrDocumentNameTaken.
// O único índice único da tabela além da PK é idx_documents_name_active.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return domainerrors.ErrDocumentNameTaken
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr sqlStateErr
	return errors.As(err, &pgErr) && pgErr.SQLState() == uniqueViolation
}
