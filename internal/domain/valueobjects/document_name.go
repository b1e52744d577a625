package valueobjects

import (
	"strings"

	domainerrors "github.com/rafabene/docdesk/internal/domain/errors"
)

// DocumentName é um value object que garante um nome aparado e não vazio
type DocumentName struct {
	value string
}

// NewDocumentName cria um novo DocumentName validado
func NewDocumentName(name string) (DocumentName, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return DocumentName{}, domainerrors.ErrDocumentNameRequired
	}

	return DocumentName{value: name}, nil
}

// String retorna o valor do nome
func (n DocumentName) String() string {
	return n.value
}

// Equals compara nomes de forma exata (case-sensitive), como o índice único
func (n DocumentName) Equals(other DocumentName) bool {
	return n.value == other.value
}
