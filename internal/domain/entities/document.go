package entities

import (
	"strings"
	"time"

	"github.com/rafabene/docdesk/internal/domain/valueobjects"
)

// Document representa um documento (currículo + descrição de vaga) do sistema
type Document struct {
	ID        int64
	Name      valueobjects.DocumentName
	Resume    string
	JD        string
	Summary   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// NewDocument cria um documento com os campos já aparados
func NewDocument(name, resume, jd, summary string) (*Document, error) {
	docName, err := valueobjects.NewDocumentName(name)
	if err != nil {
		return nil, err
	}

	return &Document{
		Name:    docName,
		Resume:  strings.TrimSpace(resume),
		JD:      strings.TrimSpace(jd),
		Summary: strings.TrimSpace(summary),
	}, nil
}

// IsActive verifica se o documento não foi deletado
func (d *Document) IsActive() bool {
	return d.DeletedAt == nil
}

// IsDeleted verifica se o documento foi deletado (soft delete)
func (d *Document) IsDeleted() bool {
	return d.DeletedAt != nil
}

// SoftDelete marca o documento como deletado; a marcação acontece uma única vez
func (d *Document) SoftDelete(now time.Time) bool {
	if d.DeletedAt != nil {
		return false
	}
	d.DeletedAt = &now
	return true
}
