//go:generate mockery --name CategoryService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexiflow/internal/middleware"
	"lexiflow/internal/model"
	"lexiflow/internal/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	GetAll(ctx context.Context, includeInactive bool) ([]*model.Category, error)
	GetByID(ctx context.Context, categoryID int) (*model.Category, error)
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)
}

type categoryService struct {
	db           *gorm.DB
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(db *gorm.DB, categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{
		db:           db,
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) GetAll(ctx context.Context, includeInactive bool) ([]*model.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx, s.db, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("categoryService.GetAll: %w", err)
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, categoryID int) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, s.db, categoryID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CATEGORY_NOT_FOUND", "Category not found", "", model.ErrNotFound)
		}
		return nil, fmt.Errorf("categoryService.GetByID: %w", err)
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Category name is required", "category_name", model.ErrInvalidInput)
	}

	category := &model.Category{
		CategoryName: name,
		Description:  req.Description,
		Level:        req.Level,
		DisplayOrder: req.DisplayOrder,
		IsActive:     true,
	}
	if err := s.categoryRepo.Create(ctx, s.db, category); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("CATEGORY_EXISTS", "A category with this name already exists", "category_name", model.ErrConflict)
		}
		return nil, fmt.Errorf("categoryService.Create: %w", err)
	}

	middleware.GetLogger(ctx).Info("Category created", "category_id", category.CategoryID)
	return category, nil
}
