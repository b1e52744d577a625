package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções ficam em internal/infrastructure/i18n/locales/*.json
var (
	ErrDocumentNotFound     = errors.New("error.document.not_found")
	ErrDocumentNameTaken    = errors.New("error.document.name_taken")
	ErrDocumentNameRequired = errors.New("error.document.name_required")
	ErrInvalidDocumentID    = errors.New("error.document.invalid_id")
	ErrNoDocumentSelected   = errors.New("error.document.not_selected")
)

// Infrastructure errors
var (
	ErrStorage = errors.New("error.storage")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeConflict   = "/problems/conflict"
	ProblemTypeInternal   = "/problems/internal-error"
	ProblemTypeBadRequest = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrStorage) para erros de infraestrutura
func (e *DomainError) Is(target error) bool {
	return target == ErrStorage && e.Type == ProblemTypeInternal
}

// NewStorageError envolve uma falha do banco de dados
func NewStorageError(op string, err error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeInternal,
		Title:   ErrStorage.Error(),
		Message: op,
		Err:     err,
	}
}
