// Package store implements persistence for asset records. A single generic
// GORM-backed store serves all seven asset kinds; one instance is created
// per kind and consumed through the AssetStore interface.
package store

import (
	"errors"
	"strings"

	apperrors "assetfolio/internal/errors"
	"assetfolio/internal/models"

	"gorm.io/gorm"
)

// AssetStore is the per-kind persistence contract consumed by the
// aggregation engine. Stores are safe for concurrent independent use.
type AssetStore interface {
	FindAll() ([]models.AssetRecord, error)
	// FindByID returns (record, true, nil) on a hit and (nil, false, nil)
	// when no record has the given id.
	FindByID(id string) (models.AssetRecord, bool, error)
	Save(rec models.AssetRecord) error
	Delete(rec models.AssetRecord) error
	FindBySymbolContaining(text string) ([]models.AssetRecord, error)
	FindByNameContaining(text string) ([]models.AssetRecord, error)
}

// Store is a generic GORM store for a single asset kind. T is the record
// struct; PT is its pointer type, which must implement models.AssetRecord.
type Store[T any, PT interface {
	*T
	models.AssetRecord
}] struct {
	db *gorm.DB
}

// New creates a store for the given record type.
func New[T any, PT interface {
	*T
	models.AssetRecord
}](db *gorm.DB) *Store[T, PT] {
	return &Store[T, PT]{db: db}
}

// FindAll returns every record of this kind in insertion order.
func (s *Store[T, PT]) FindAll() ([]models.AssetRecord, error) {
	var recs []T
	if err := s.db.Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.asRecords(recs), nil
}

// FindByID looks up a record by primary key.
func (s *Store[T, PT]) FindByID(id string) (models.AssetRecord, bool, error) {
	var rec T
	err := s.db.First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return PT(&rec), true, nil
}

// Save inserts or updates a record.
func (s *Store[T, PT]) Save(rec models.AssetRecord) error {
	if err := s.db.Save(rec).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// Delete removes a record by primary key.
func (s *Store[T, PT]) Delete(rec models.AssetRecord) error {
	if err := s.db.Delete(rec).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// FindBySymbolContaining returns records whose symbol contains text,
// case-insensitively.
func (s *Store[T, PT]) FindBySymbolContaining(text string) ([]models.AssetRecord, error) {
	return s.findContaining("symbol", text)
}

// FindByNameContaining returns records whose name contains text,
// case-insensitively.
func (s *Store[T, PT]) FindByNameContaining(text string) ([]models.AssetRecord, error) {
	return s.findContaining("name", text)
}

// findContaining runs a case-insensitive substring query on the given
// column. LOWER + LIKE is portable across postgres and sqlite.
func (s *Store[T, PT]) findContaining(column, text string) ([]models.AssetRecord, error) {
	pattern := "%" + strings.ToLower(text) + "%"
	var recs []T
	if err := s.db.Where("LOWER("+column+") LIKE ?", pattern).
		Order("created_at ASC").Find(&recs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return s.asRecords(recs), nil
}

func (s *Store[T, PT]) asRecords(recs []T) []models.AssetRecord {
	out := make([]models.AssetRecord, len(recs))
	for i := range recs {
		out[i] = PT(&recs[i])
	}
	return out
}
