// Package docstore implements the document store boundary over Postgres.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/orioninvest/brokerage/pkg/docstore"
)

// GormStore persists documents in a single jsonb-backed table. Every call
// is one round trip; merge runs read-modify-write inside a transaction.
type GormStore struct {
	db *gorm.DB
}

// New creates a GormStore.
func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the documents table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&documentRow{})
}

// Get returns the document at id, (nil, nil) when absent.
func (s *GormStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	var row documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc docstore.Document
	if err := json.Unmarshal(row.Fields, &doc); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Set creates or fully replaces the document at id.
func (s *GormStore) Set(ctx context.Context, collection, id string, doc docstore.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}
	row := documentRow{Collection: collection, DocID: id, Fields: payload}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"fields", "updated_at"}),
	}).Create(&row).Error
}

// Update merges fields into the document at id; docstore.ErrNotFound when
// no document exists there.
func (s *GormStore) Update(ctx context.Context, collection, id string, fields docstore.Document) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row documentRow
		err := tx.Where("collection = ? AND doc_id = ?", collection, id).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%s/%s: %w", collection, id, docstore.ErrNotFound)
		}
		if err != nil {
			return err
		}
		var doc docstore.Document
		if err := json.Unmarshal(row.Fields, &doc); err != nil {
			return fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		for k, v := range fields {
			doc[k] = v
		}
		payload, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode %s/%s: %w", collection, id, err)
		}
		return tx.Model(&documentRow{}).
			Where("collection = ? AND doc_id = ?", collection, id).
			Update("fields", payload).Error
	})
}
