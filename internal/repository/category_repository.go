//go:generate mockery --name CategoryRepository --output ./mocks --outpkg mocks --case=underscore
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

type CategoryRepository interface {
	FindAll(ctx context.Context, db *gorm.DB, includeInactive bool) ([]*model.Category, error)
	FindByID(ctx context.Context, db *gorm.DB, categoryID int) (*model.Category, error)
	Exists(ctx context.Context, db *gorm.DB, categoryID int) (bool, error)
	Create(ctx context.Context, db *gorm.DB, category *model.Category) error
}

type gormCategoryRepository struct{}

func NewGormCategoryRepository() CategoryRepository {
	return &gormCategoryRepository{}
}

func (r *gormCategoryRepository) FindAll(ctx context.Context, db *gorm.DB, includeInactive bool) ([]*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var categories []*model.Category
	query := db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	result := query.Order("display_order ASC").Order("category_name ASC").Find(&categories)
	if result.Error != nil {
		logger.Error("Error finding categories in DB", "error", result.Error, "include_inactive", includeInactive)
		return nil, fmt.Errorf("gormCategoryRepository.FindAll: %w", result.Error)
	}
	return categories, nil
}

func (r *gormCategoryRepository) FindByID(ctx context.Context, db *gorm.DB, categoryID int) (*model.Category, error) {
	logger := middleware.GetLogger(ctx)
	var category model.Category
	result := db.WithContext(ctx).Where("category_id = ?", categoryID).First(&category)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding category by ID in DB", "error", result.Error, "category_id", categoryID)
		return nil, fmt.Errorf("gormCategoryRepository.FindByID: %w", result.Error)
	}
	return &category, nil
}

// Exists は有効・無効を問わずカテゴリが存在するかを返します。
func (r *gormCategoryRepository) Exists(ctx context.Context, db *gorm.DB, categoryID int) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Category{}).Where("category_id = ?", categoryID).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking category existence in DB", "error", result.Error, "category_id", categoryID)
		return false, fmt.Errorf("gormCategoryRepository.Exists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, db *gorm.DB, category *model.Category) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(category)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create category",
				"error", result.Error,
				"category_name", category.CategoryName,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating category in DB", "error", result.Error, "category_name", category.CategoryName)
		return fmt.Errorf("gormCategoryRepository.Create: %w", result.Error)
	}
	return nil
}
