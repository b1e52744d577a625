package repositories

import (
	"context"

	"github.com/rafabene/docdesk/internal/domain/entities"
)

// DocumentRepository define a interface para persistência de documentos.
// Todas as operações enxergam apenas documentos ativos (deleted_at IS NULL).
type DocumentRepository interface {
	Create(ctx context.Context, doc *entities.Document) error
	FindByID(ctx context.Context, id int64) (*entities.Document, error)
	// Update substitui os quatro campos de texto; retorna false se nenhuma linha ativa casou
	Update(ctx context.Context, doc *entities.Document) (bool, error)
	// SoftDelete marca deleted_at; retorna false se nenhuma linha ativa casou
	SoftDelete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filters DocumentFilters) ([]*entities.Document, error)
	NameExists(ctx context.Context, name string, excludeID *int64) (bool, error)
}

// DocumentFilters contém filtros para listagem de documentos
type DocumentFilters struct {
	Search string // Substring do nome, sem diferenciar maiúsculas
}
