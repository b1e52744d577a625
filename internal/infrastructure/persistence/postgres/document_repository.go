package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rafabene/docdesk/internal/domain/entities"
	"github.com/rafabene/docdesk/internal/domain/repositories"
	"github.com/rafabene/docdesk/internal/domain/valueobjects"
)

// likeEscaper faz a busca tratar %, _ e \ como caracteres literais
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// DocumentRepository implementa repositories.DocumentRepository
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository cria um novo DocumentRepository
func NewDocumentRepository(db *gorm.DB) repositories.DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *entities.Document) error {
	model := r.toModel(doc)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("DeletedAt").Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	doc.ID = model.ID
	doc.CreatedAt = model.CreatedAt
	doc.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id int64) (*entities.Document, error) {
	var model DocumentModel

	db := dbFromContext(ctx, r.db)
	// Soft delete: ignorar registros deletados
	if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// Update substitui nome, currículo, vaga e resumo; updated_at é preenchido pelo GORM
func (r *DocumentRepository) Update(ctx context.Context, doc *entities.Document) (bool, error) {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&DocumentModel{}).
		Where("id = ? AND deleted_at IS NULL", doc.ID).
		Updates(map[string]interface{}{
			"name":    doc.Name.String(),
			"resume":  doc.Resume,
			"jd":      doc.JD,
			"summary": doc.Summary,
		})
	if result.Error != nil {
		return false, translateWriteError(result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *DocumentRepository) SoftDelete(ctx context.Context, id int64) (bool, error) {
	db := dbFromContext(ctx, r.db)
	// Soft delete: atualizar deleted_at ao invés de deletar.
	// UpdateColumn evita tocar em updated_at.
	result := db.Model(&DocumentModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		UpdateColumn("deleted_at", db.NowFunc())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *DocumentRepository) List(ctx context.Context, filters repositories.DocumentFilters) ([]*entities.Document, error) {
	var models []*DocumentModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&DocumentModel{})

	// Soft delete: ignorar registros deletados
	query = query.Where("deleted_at IS NULL")

	// O termo não é aparado: espaços fazem parte da busca
	if search := filters.Search; search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}

	query = query.Order("updated_at DESC").Order("id DESC")

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *DocumentRepository) NameExists(ctx context.Context, name string, excludeID *int64) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	query := db.Model(&DocumentModel{}).
		Where("name = ? AND deleted_at IS NULL", strings.TrimSpace(name))

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// Conversores
func (r *DocumentRepository) toModel(doc *entities.Document) *DocumentModel {
	return &DocumentModel{
		ID:        doc.ID,
		Name:      doc.Name.String(),
		Resume:    doc.Resume,
		JD:        doc.JD,
		Summary:   doc.Summary,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
		DeletedAt: doc.DeletedAt,
	}
}

func (r *DocumentRepository) toEntity(model *DocumentModel) (*entities.Document, error) {
	name, err := valueobjects.NewDocumentName(model.Name)
	if err != nil {
		return nil, err
	}

	return &entities.Document{
		ID:        model.ID,
		Name:      name,
		Resume:    model.Resume,
		JD:        model.JD,
		Summary:   model.Summary,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
		DeletedAt: model.DeletedAt,
	}, nil
}

func (r *DocumentRepository) toEntities(models []*DocumentModel) ([]*entities.Document, error) {
	docs := make([]*entities.Document, 0, len(models))

	for _, model := range models {
		doc, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
