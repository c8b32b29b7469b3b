//go:generate mockery --name VocabularyRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lexiflow/internal/middleware"
	"lexiflow/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type VocabularyRepository interface {
	CountByGroup(ctx context.Context, db *gorm.DB, groupID int) (int64, error)
	FindByGroup(ctx context.Context, db *gorm.DB, groupID int, offset, limit int) ([]*model.Vocabulary, error)
	Create(ctx context.Context, tx *gorm.DB, vocabulary *model.Vocabulary) error
}

type gormVocabularyRepository struct{}

func NewGormVocabularyRepository() VocabularyRepository {
	return &gormVocabularyRepository{}
}

func (r *gormVocabularyRepository) CountByGroup(ctx context.Context, db *gorm.DB, groupID int) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Vocabulary{}).Where("group_id = ?", groupID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting vocabularies in DB", "error", result.Error, "group_id", groupID)
		return 0, fmt.Errorf("gormVocabularyRepository.CountByGroup: %w", result.Error)
	}
	return count, nil
}

// FindByGroup は語彙を term, vocabulary_id の順に並べて offset から最大 limit 件返します。
func (r *gormVocabularyRepository) FindByGroup(ctx context.Context, db *gorm.DB, groupID int, offset, limit int) ([]*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)
	var vocabularies []*model.Vocabulary
	result := db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("term ASC").Order("vocabulary_id ASC").
		Offset(offset).Limit(limit).
		Find(&vocabularies)
	if result.Error != nil {
		logger.Error("Error finding vocabularies by group in DB",
			"error", result.Error,
			"group_id", groupID,
			"offset", offset,
			"limit", limit,
		)
		return nil, fmt.Errorf("gormVocabularyRepository.FindByGroup: %w", result.Error)
	}
	return vocabularies, nil
}

func (r *gormVocabularyRepository) Create(ctx context.Context, tx *gorm.DB, vocabulary *model.Vocabulary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(vocabulary)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23503" {
			logger.Warn("Foreign key violation on create vocabulary", "error", result.Error, "group_id", vocabulary.GroupID)
			return model.ErrNotFound
		}
		logger.Error("Error creating vocabulary in DB",
			"error", result.Error,
			"group_id", vocabulary.GroupID,
			"term", vocabulary.Term,
		)
		return fmt.Errorf("gormVocabularyRepository.Create: %w", result.Error)
	}
	return nil
}
