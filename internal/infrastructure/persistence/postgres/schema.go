package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DocumentsTable é o nome da tabela de documentos
const DocumentsTable = "documents"

// activeNameIndex garante nome único apenas entre documentos ativos.
// A sintaxe de índice parcial é aceita por PostgreSQL e SQLite.
const activeNameIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_documents_name_active
	ON documents (name) WHERE deleted_at IS NULL`

// EnsureSchema cria a tabela e o índice parcial se ainda não existirem
func EnsureSchema(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(&DocumentModel{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", DocumentsTable, err)
	}

	if err := db.Exec(activeNameIndex).Error; err != nil {
		return fmt.Errorf("failed to create active name index: %w", err)
	}

	return nil
}

// SchemaProbe verifica se o schema esperado existe
type SchemaProbe struct {
	db *gorm.DB
}

// NewSchemaProbe cria um novo SchemaProbe
func NewSchemaProbe(db *gorm.DB) *SchemaProbe {
	return &SchemaProbe{db: db}
}

// DocumentsTableReady informa se a tabela de documentos existe
func (p *SchemaProbe) DocumentsTableReady(ctx context.Context) bool {
	return p.db.WithContext(ctx).Migrator().HasTable(DocumentsTable)
}
