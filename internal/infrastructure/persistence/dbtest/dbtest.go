// Package dbtest abre bancos SQLite descartáveis com o schema de documentos,
// para testes de repositório, serviço e handlers.
package dbtest

import (
	"context"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/docdesk/internal/infrastructure/persistence/postgres"
)

// TB é o subconjunto de testing.TB usado aqui; GinkgoT() também satisfaz
type TB interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// Open cria um banco SQLite em arquivo temporário, já com o schema aplicado
func Open(t TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "docdesk.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), postgres.GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Uma conexão só: SQLite serializa escritas e evita "database is locked"
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("failed to ensure schema: %v", err)
	}

	return db
}

// OpenEmpty cria um banco SQLite sem nenhuma tabela
func OpenEmpty(t TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "empty.db")
	db, err := gorm.Open(sqlite.Open(dsn), postgres.GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
