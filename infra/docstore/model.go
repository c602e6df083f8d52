package docstore

import (
	"time"
)

// documentRow is the storage model: one row per (collection, doc_id) with
// the schema-less payload in a jsonb column.
type documentRow struct {
	Collection string `gorm:"primaryKey;size:64"`
	DocID      string `gorm:"primaryKey;column:doc_id;size:255"`
	Fields     []byte `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the document model.
func (documentRow) TableName() string {
	return "documents"
}
