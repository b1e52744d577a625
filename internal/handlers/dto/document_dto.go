package dto

import (
	"time"
	"unicode/utf8"

	"github.com/rafabene/docdesk/internal/domain/entities"
	"github.com/rafabene/docdesk/internal/services"
)

// PreviewLength é o número de caracteres exibidos na listagem
const PreviewLength = 100

// TimestampLayout é o formato de data exibido na interface
const TimestampLayout = "2006-01-02 15:04"

// DocumentRequest representa a requisição para criar ou atualizar um documento
type DocumentRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Resume  string `json:"resume" form:"resume"`
	JD      string `json:"jd" form:"jd"`
	Summary string `json:"summary" form:"summary"`
}

// ToInput converte a requisição para o input do serviço
func (r DocumentRequest) ToInput() services.DocumentInput {
	return services.DocumentInput{
		Name:    r.Name,
		Resume:  r.Resume,
		JD:      r.JD,
		Summary: r.Summary,
	}
}

// DocumentResponse representa a resposta completa de um documento
type DocumentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Resume    string    `json:"resume"`
	JD        string    `json:"jd"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WriteResponse representa a resposta de uma operação de escrita
type WriteResponse struct {
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message"`
}

// DocumentRow é uma linha da tabela da interface, com textos truncados
type DocumentRow struct {
	ID            int64
	Name          string
	ResumePreview string
	JDPreview     string
	Summary       string
	UpdatedAt     string
}

// ToDocumentResponse converte uma entidade Document para DocumentResponse
func ToDocumentResponse(doc *entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:        doc.ID,
		Name:      doc.Name.String(),
		Resume:    doc.Resume,
		JD:        doc.JD,
		Summary:   doc.Summary,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ToDocumentResponses converte uma lista de entidades Document para DocumentResponse
func ToDocumentResponses(docs []*entities.Document) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = ToDocumentResponse(doc)
	}
	return responses
}

// ToDocumentRow converte uma entidade para a linha da tabela
func ToDocumentRow(doc *entities.Document) DocumentRow {
	return DocumentRow{
		ID:            doc.ID,
		Name:          doc.Name.String(),
		ResumePreview: Preview(doc.Resume, PreviewLength),
		JDPreview:     Preview(doc.JD, PreviewLength),
		Summary:       doc.Summary,
		UpdatedAt:     FormatTimestamp(doc.UpdatedAt),
	}
}

// ToDocumentRows converte uma lista de entidades para linhas da tabela
func ToDocumentRows(docs []*entities.Document) []DocumentRow {
	rows := make([]DocumentRow, len(docs))
	for i, doc := range docs {
		rows[i] = ToDocumentRow(doc)
	}
	return rows
}

// Preview retorna os primeiros limit caracteres de text, com "..." se truncado
func Preview(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "..."
}

// FormatTimestamp formata datas para exibição; zero vira string vazia
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimestampLayout)
}
