//go:generate mockery --name VocabularyGroupRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lexiflow/internal/middleware"
	"lexiflow/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type VocabularyGroupRepository interface {
	FindAll(ctx context.Context, db *gorm.DB, filter model.VocabularyGroupFilter) ([]*model.VocabularyGroup, error)
	FindByID(ctx context.Context, db *gorm.DB, groupID int) (*model.VocabularyGroup, error)
	Exists(ctx context.Context, db *gorm.DB, groupID int) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, group *model.VocabularyGroup) error
	UpdateWithVersion(ctx context.Context, tx *gorm.DB, groupID int, expectedVersion string, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, groupID int, actorID int) error
}

type gormVocabularyGroupRepository struct{}

func NewGormVocabularyGroupRepository() VocabularyGroupRepository {
	return &gormVocabularyGroupRepository{}
}

// FindAll は条件に一致するグループをグループ名、ID の順で返します。論理削除済みは含みません。
func (r *gormVocabularyGroupRepository) FindAll(ctx context.Context, db *gorm.DB, filter model.VocabularyGroupFilter) ([]*model.VocabularyGroup, error) {
	logger := middleware.GetLogger(ctx)
	var groups []*model.VocabularyGroup
	query := db.WithContext(ctx).Preload("Category")
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	result := query.Order("group_name ASC").Order("group_id ASC").Find(&groups)
	if result.Error != nil {
		logger.Error("Error finding vocabulary groups in DB",
			"error", result.Error,
			"include_inactive", filter.IncludeInactive,
		)
		return nil, fmt.Errorf("gormVocabularyGroupRepository.FindAll: %w", result.Error)
	}
	return groups, nil
}

func (r *gormVocabularyGroupRepository) FindByID(ctx context.Context, db *gorm.DB, groupID int) (*model.VocabularyGroup, error) {
	logger := middleware.GetLogger(ctx)
	var group model.VocabularyGroup
	result := db.WithContext(ctx).Preload("Category").Where("group_id = ?", groupID).First(&group)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding vocabulary group by ID in DB", "error", result.Error, "group_id", groupID)
		return nil, fmt.Errorf("gormVocabularyGroupRepository.FindByID: %w", result.Error)
	}
	return &group, nil
}

func (r *gormVocabularyGroupRepository) Exists(ctx context.Context, db *gorm.DB, groupID int) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyGroup{}).Where("group_id = ?", groupID).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking vocabulary group existence in DB", "error", result.Error, "group_id", groupID)
		return false, fmt.Errorf("gormVocabularyGroupRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormVocabularyGroupRepository) Create(ctx context.Context, tx *gorm.DB, group *model.VocabularyGroup) error {
	logger := middleware.GetLogger(ctx)
	// Category はリクエストから組み立てないため関連の保存は行わない
	result := tx.WithContext(ctx).Omit("Category").Create(group)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23503" {
			logger.Warn("Foreign key violation on create vocabulary group",
				"error", result.Error,
				"category_id", group.CategoryID,
			)
			return model.NewAppError("INVALID_CATEGORY", "Category does not exist", "category_id", model.ErrInvalidInput)
		}
		logger.Error("Error creating vocabulary group in DB",
			"error", result.Error,
			"group_name", group.GroupName,
		)
		return fmt.Errorf("gormVocabularyGroupRepository.Create: %w", result.Error)
	}
	return nil
}

// UpdateWithVersion は row_version が expectedVersion と一致する場合のみ更新します。
// 一致する行が無い場合は ErrConcurrencyConflict を返します。
func (r *gormVocabularyGroupRepository) UpdateWithVersion(ctx context.Context, tx *gorm.DB, groupID int, expectedVersion string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.VocabularyGroup{}).
		Where("group_id = ? AND row_version = ?", groupID, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23503" {
			logger.Warn("Foreign key violation on update vocabulary group", "error", result.Error, "group_id", groupID)
			return model.NewAppError("INVALID_CATEGORY", "Category does not exist", "category_id", model.ErrInvalidInput)
		}
		logger.Error("Error updating vocabulary group in DB", "error", result.Error, "group_id", groupID)
		return fmt.Errorf("gormVocabularyGroupRepository.UpdateWithVersion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Info("Vocabulary group version mismatch on update", "group_id", groupID)
		return model.ErrConcurrencyConflict
	}
	return nil
}

// Delete はグループを論理削除し、削除したユーザーを記録します。
func (r *gormVocabularyGroupRepository) Delete(ctx context.Context, tx *gorm.DB, groupID int, actorID int) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.VocabularyGroup{}).
		Where("group_id = ?", groupID).
		Updates(map[string]interface{}{
			"deleted_at":         time.Now(),
			"updated_by_user_id": actorID,
		})
	if result.Error != nil {
		logger.Error("Error deleting vocabulary group in DB", "error", result.Error, "group_id", groupID)
		return fmt.Errorf("gormVocabularyGroupRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
