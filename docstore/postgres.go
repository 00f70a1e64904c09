package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// documentRow is the single table every collection shares: the collection
// name is a column and the document body lives in a jsonb column.
type documentRow struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey;not null"`
	Collection string            `gorm:"type:text;not null;index"`
	Data       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time         `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

func (documentRow) TableName() string {
	return "documents"
}

// PostgresStore persists documents in a jsonb column, with equality
// filters compiled to JSONB key lookups.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore wraps an open GORM connection and ensures the
// documents table exists.
func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &PostgresStore{db}, nil
}

// GetDB returns the underlying database connection for debugging purposes
func (s *PostgresStore) GetDB() *gorm.DB {
	return s.db
}

func (s *PostgresStore) Create(ctx context.Context, collection string, doc Document) (string, error) {
	row := documentRow{
		ID:         uuid.New(),
		Collection: collection,
		Data:       datatypes.JSONMap(doc),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	return row.ID.String(), nil
}

func (s *PostgresStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	tx := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at")

	for field, value := range filter {
		tx = tx.Where(datatypes.JSONQuery("data").Equals(value, field))
	}

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var rows []documentRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc := make(Document, len(row.Data)+1)
		for k, v := range row.Data {
			doc[k] = v
		}
		doc["id"] = row.ID.String()
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *PostgresStore) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&documentRow{}).
		Distinct().
		Order("collection").
		Pluck("collection", &names).
		Error
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}
