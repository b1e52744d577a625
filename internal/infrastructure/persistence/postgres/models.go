package postgres

import "time"

// DocumentModel é o model GORM para documentos
type DocumentModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Name      string     `gorm:"type:text;not null"`
	Resume    string     `gorm:"type:text;not null;default:''"`
	JD        string     `gorm:"column:jd;type:text;not null;default:''"`
	Summary   string     `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time  `gorm:"autoCreateTime;not null;<-:create"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;not null;index"`
	DeletedAt *time.Time `gorm:"index"` // Soft delete
}

func (DocumentModel) TableName() string {
	return DocumentsTable
}
