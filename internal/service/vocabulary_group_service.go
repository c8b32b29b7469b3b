//go:generate mockery --name VocabularyGroupService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexiflow/internal/middleware"
	"lexiflow/internal/model"
	"lexiflow/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultLanguageCode = "ja"

type VocabularyGroupService interface {
	GetAll(ctx context.Context, filter model.VocabularyGroupFilter) ([]*model.VocabularyGroup, error)
	GetByID(ctx context.Context, groupID int) (*model.VocabularyGroup, error)
	Create(ctx context.Context, req *model.CreateVocabularyGroupRequest, actorID int) (*model.VocabularyGroup, error)
	Update(ctx context.Context, groupID int, req *model.UpdateVocabularyGroupRequest, actorID int) (*model.VocabularyGroup, error)
	Delete(ctx context.Context, groupID int, actorID int) (bool, error)
	GetVocabularies(ctx context.Context, groupID int, page, pageSize int) (*model.Page[*model.Vocabulary], error)
	AddVocabulary(ctx context.Context, groupID int, req *model.CreateVocabularyRequest, actorID int) (*model.Vocabulary, error)
}

type vocabularyGroupService struct {
	db           *gorm.DB // トランザクション用にDB接続を持つ
	groupRepo    repository.VocabularyGroupRepository
	vocabRepo    repository.VocabularyRepository
	categoryRepo repository.CategoryRepository
	paging       PagingOptions
}

func NewVocabularyGroupService(
	db *gorm.DB,
	groupRepo repository.VocabularyGroupRepository,
	vocabRepo repository.VocabularyRepository,
	categoryRepo repository.CategoryRepository,
	paging PagingOptions,
) VocabularyGroupService {
	return &vocabularyGroupService{
		db:           db,
		groupRepo:    groupRepo,
		vocabRepo:    vocabRepo,
		categoryRepo: categoryRepo,
		paging:       paging,
	}
}

func errGroupNotFound() error {
	return model.NewAppError("GROUP_NOT_FOUND", "Vocabulary group not found", "", model.ErrNotFound)
}

func (s *vocabularyGroupService) GetAll(ctx context.Context, filter model.VocabularyGroupFilter) ([]*model.VocabularyGroup, error) {
	groups, err := s.groupRepo.FindAll(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("vocabularyGroupService.GetAll: %w", err)
	}
	if groups == nil {
		groups = []*model.VocabularyGroup{}
	}
	return groups, nil
}

func (s *vocabularyGroupService) GetByID(ctx context.Context, groupID int) (*model.VocabularyGroup, error) {
	group, err := s.groupRepo.FindByID(ctx, s.db, groupID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errGroupNotFound()
		}
		return nil, fmt.Errorf("vocabularyGroupService.GetByID: %w", err)
	}
	return group, nil
}

// ensureCategory はカテゴリが存在しない場合に入力エラーを返します。
func (s *vocabularyGroupService) ensureCategory(ctx context.Context, tx *gorm.DB, categoryID int) error {
	exists, err := s.categoryRepo.Exists(ctx, tx, categoryID)
	if err != nil {
		return err
	}
	if !exists {
		return model.NewAppError("INVALID_CATEGORY", "Category does not exist", "category_id", model.ErrInvalidInput)
	}
	return nil
}

func (s *vocabularyGroupService) Create(ctx context.Context, req *model.CreateVocabularyGroupRequest, actorID int) (*model.VocabularyGroup, error) {
	logger := middleware.GetLogger(ctx)

	name := strings.TrimSpace(req.GroupName)
	if name == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Group name is required", "group_name", model.ErrInvalidInput)
	}

	var created *model.VocabularyGroup
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.CategoryID != nil {
			if err := s.ensureCategory(ctx, tx, *req.CategoryID); err != nil {
				return err
			}
		}

		group := &model.VocabularyGroup{
			GroupName:       name,
			Description:     req.Description,
			CategoryID:      req.CategoryID,
			IsActive:        true,
			CreatedByUserID: actorID,
			RowVersion:      uuid.NewString(),
		}
		if err := s.groupRepo.Create(ctx, tx, group); err != nil {
			return err
		}

		// 採番されたIDとカテゴリを含む状態で返す
		found, err := s.groupRepo.FindByID(ctx, tx, group.GroupID)
		if err != nil {
			return err
		}
		created = found
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("vocabularyGroupService.Create: %w", err)
	}

	logger.Info("Vocabulary group created", "group_id", created.GroupID, "actor_id", actorID)
	return created, nil
}

func (s *vocabularyGroupService) Update(ctx context.Context, groupID int, req *model.UpdateVocabularyGroupRequest, actorID int) (*model.VocabularyGroup, error) {
	logger := middleware.GetLogger(ctx)

	var updated *model.VocabularyGroup
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.groupRepo.FindByID(ctx, tx, groupID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errGroupNotFound()
			}
			return err
		}
		if current.RowVersion != req.RowVersion {
			logger.Info("Stale row version on vocabulary group update", "group_id", groupID, "actor_id", actorID)
			return model.ErrConcurrencyConflict
		}

		updates := map[string]interface{}{
			"updated_by_user_id": actorID,
			"row_version":        uuid.NewString(),
		}
		if req.GroupName != nil {
			name := strings.TrimSpace(*req.GroupName)
			if name == "" {
				return model.NewAppError("VALIDATION_ERROR", "Group name must not be empty", "group_name", model.ErrInvalidInput)
			}
			updates["group_name"] = name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.CategoryID != nil {
			if err := s.ensureCategory(ctx, tx, *req.CategoryID); err != nil {
				return err
			}
			updates["category_id"] = *req.CategoryID
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		if err := s.groupRepo.UpdateWithVersion(ctx, tx, groupID, req.RowVersion, updates); err != nil {
			return err
		}

		found, err := s.groupRepo.FindByID(ctx, tx, groupID)
		if err != nil {
			return err
		}
		updated = found
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrInvalidInput) || errors.Is(err, model.ErrConcurrencyConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("vocabularyGroupService.Update: %w", err)
	}

	logger.Info("Vocabulary group updated", "group_id", groupID, "actor_id", actorID)
	return updated, nil
}

// Delete はグループを論理削除します。存在しない場合は false を返します。
func (s *vocabularyGroupService) Delete(ctx context.Context, groupID int, actorID int) (bool, error) {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.groupRepo.Delete(ctx, tx, groupID, actorID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("vocabularyGroupService.Delete: %w", err)
	}

	logger.Info("Vocabulary group deleted", "group_id", groupID, "actor_id", actorID)
	return true, nil
}

func (s *vocabularyGroupService) GetVocabularies(ctx context.Context, groupID int, page, pageSize int) (*model.Page[*model.Vocabulary], error) {
	exists, err := s.groupRepo.Exists(ctx, s.db, groupID)
	if err != nil {
		return nil, fmt.Errorf("vocabularyGroupService.GetVocabularies: %w", err)
	}
	if !exists {
		return nil, errGroupNotFound()
	}

	page, pageSize = s.paging.normalize(page, pageSize)

	total, err := s.vocabRepo.CountByGroup(ctx, s.db, groupID)
	if err != nil {
		return nil, fmt.Errorf("vocabularyGroupService.GetVocabularies: %w", err)
	}
	result := &model.Page[*model.Vocabulary]{
		Items:      []*model.Vocabulary{},
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages(total, pageSize),
	}
	// 最終ページより後ろは問い合わせずに空で返す (オフセット計算のオーバーフローも防ぐ)
	if page > result.TotalPages {
		return result, nil
	}

	items, err := s.vocabRepo.FindByGroup(ctx, s.db, groupID, pageOffset(page, pageSize), pageSize)
	if err != nil {
		return nil, fmt.Errorf("vocabularyGroupService.GetVocabularies: %w", err)
	}
	if items != nil {
		result.Items = items
	}
	return result, nil
}

func (s *vocabularyGroupService) AddVocabulary(ctx context.Context, groupID int, req *model.CreateVocabularyRequest, actorID int) (*model.Vocabulary, error) {
	logger := middleware.GetLogger(ctx)

	term := strings.TrimSpace(req.Term)
	if term == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "Term is required", "term", model.ErrInvalidInput)
	}
	languageCode := req.LanguageCode
	if languageCode == "" {
		languageCode = defaultLanguageCode
	}

	var created *model.Vocabulary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := s.groupRepo.Exists(ctx, tx, groupID)
		if err != nil {
			return err
		}
		if !exists {
			return errGroupNotFound()
		}

		vocabulary := &model.Vocabulary{
			GroupID:         groupID,
			Term:            term,
			LanguageCode:    languageCode,
			Reading:         req.Reading,
			Meaning:         req.Meaning,
			Level:           req.Level,
			PartOfSpeech:    req.PartOfSpeech,
			CreatedByUserID: actorID,
		}
		if err := s.vocabRepo.Create(ctx, tx, vocabulary); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return errGroupNotFound()
			}
			return err
		}
		created = vocabulary
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("vocabularyGroupService.AddVocabulary: %w", err)
	}

	logger.Info("Vocabulary added to group", "group_id", groupID, "vocabulary_id", created.VocabularyID, "actor_id", actorID)
	return created, nil
}
