// internal/service/vocabulary_group_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"lexiflow/internal/model"
	"lexiflow/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// トランザクションを張るためだけのインメモリDB
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

var testPaging = PagingOptions{DefaultPageSize: 50, MaxPageSize: 500}

type groupServiceMocks struct {
	groupRepo    *mocks.VocabularyGroupRepository
	vocabRepo    *mocks.VocabularyRepository
	categoryRepo *mocks.CategoryRepository
}

func newGroupServiceForTest(t *testing.T) (VocabularyGroupService, groupServiceMocks) {
	m := groupServiceMocks{
		groupRepo:    mocks.NewVocabularyGroupRepository(t),
		vocabRepo:    mocks.NewVocabularyRepository(t),
		categoryRepo: mocks.NewCategoryRepository(t),
	}
	svc := NewVocabularyGroupService(setupTestDB(t), m.groupRepo, m.vocabRepo, m.categoryRepo, testPaging)
	return svc, m
}

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }
func boolPtr(v bool) *bool       { return &v }
func anyDB() interface{}         { return mock.AnythingOfType("*gorm.DB") }
func anyGroup() interface{}      { return mock.AnythingOfType("*model.VocabularyGroup") }
func anyVocabulary() interface{} { return mock.AnythingOfType("*model.Vocabulary") }

func Test_vocabularyGroupService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc, m := newGroupServiceForTest(t)

	filter := model.VocabularyGroupFilter{CategoryID: intPtr(3)}
	m.groupRepo.On("FindAll", ctx, anyDB(), filter).Return(nil, nil).Once()

	groups, err := svc.GetAll(ctx, filter)
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func Test_vocabularyGroupService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		want := &model.VocabularyGroup{GroupID: 5, GroupName: "N5"}
		m.groupRepo.On("FindByID", ctx, anyDB(), 5).Return(want, nil).Once()

		got, err := svc.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("異常系: 存在しない", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("FindByID", ctx, anyDB(), 99).Return(nil, model.ErrNotFound).Once()

		got, err := svc.GetByID(ctx, 99)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: DBエラー", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		dbErr := errors.New("connection reset")
		m.groupRepo.On("FindByID", ctx, anyDB(), 1).Return(nil, dbErr).Once()

		_, err := svc.GetByID(ctx, 1)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, model.ErrNotFound)
	})
}

func Test_vocabularyGroupService_Create(t *testing.T) {
	ctx := context.Background()
	actorID := 7

	tests := []struct {
		name      string
		req       *model.CreateVocabularyGroupRequest
		setupMock func(m groupServiceMocks)
		wantErr   error
	}{
		{
			name: "正常系: カテゴリ付きで作成",
			req:  &model.CreateVocabularyGroupRequest{GroupName: "  N5 verbs ", Description: "basic", CategoryID: intPtr(3)},
			setupMock: func(m groupServiceMocks) {
				m.categoryRepo.On("Exists", ctx, anyDB(), 3).Return(true, nil).Once()
				m.groupRepo.On("Create", ctx, anyDB(), anyGroup()).
					Run(func(args mock.Arguments) {
						g := args.Get(2).(*model.VocabularyGroup)
						assert.Equal(t, "N5 verbs", g.GroupName)
						assert.True(t, g.IsActive)
						assert.Equal(t, actorID, g.CreatedByUserID)
						assert.NotEmpty(t, g.RowVersion)
						g.GroupID = 10
					}).Return(nil).Once()
				m.groupRepo.On("FindByID", ctx, anyDB(), 10).
					Return(&model.VocabularyGroup{GroupID: 10, GroupName: "N5 verbs", CategoryID: intPtr(3)}, nil).Once()
			},
		},
		{
			name: "異常系: カテゴリが存在しない",
			req:  &model.CreateVocabularyGroupRequest{GroupName: "N5 verbs", CategoryID: intPtr(404)},
			setupMock: func(m groupServiceMocks) {
				m.categoryRepo.On("Exists", ctx, anyDB(), 404).Return(false, nil).Once()
			},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:      "異常系: 空白のみのグループ名",
			req:       &model.CreateVocabularyGroupRequest{GroupName: "   "},
			setupMock: func(m groupServiceMocks) {},
			wantErr:   model.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGroupServiceForTest(t)
			tt.setupMock(m)

			got, err := svc.Create(ctx, tt.req, actorID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				m.groupRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, got.GroupID)
		})
	}
}

func Test_vocabularyGroupService_Update(t *testing.T) {
	ctx := context.Background()
	actorID := 7
	current := func() *model.VocabularyGroup {
		return &model.VocabularyGroup{GroupID: 1, GroupName: "Old", RowVersion: "v1", IsActive: true}
	}

	t.Run("正常系: 指定フィールドのみ更新しトークンを更新", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("FindByID", ctx, anyDB(), 1).Return(current(), nil).Once()
		m.groupRepo.On("UpdateWithVersion", ctx, anyDB(), 1, "v1",
			mock.MatchedBy(func(updates map[string]interface{}) bool {
				_, hasDescription := updates["description"]
				return updates["group_name"] == "New" &&
					updates["is_active"] == false &&
					updates["updated_by_user_id"] == actorID &&
					updates["row_version"] != "v1" && updates["row_version"] != "" &&
					!hasDescription
			})).Return(nil).Once()
		m.groupRepo.On("FindByID", ctx, anyDB(), 1).
			Return(&model.VocabularyGroup{GroupID: 1, GroupName: "New", RowVersion: "v2"}, nil).Once()

		got, err := svc.Update(ctx, 1, &model.UpdateVocabularyGroupRequest{
			GroupName:  strPtr("New"),
			IsActive:   boolPtr(false),
			RowVersion: "v1",
		}, actorID)
		require.NoError(t, err)
		assert.Equal(t, "New", got.GroupName)
		assert.Equal(t, "v2", got.RowVersion)
	})

	t.Run("異常系: 古いトークン", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("FindByID", ctx, anyDB(), 1).Return(current(), nil).Once()

		_, err := svc.Update(ctx, 1, &model.UpdateVocabularyGroupRequest{GroupName: strPtr("New"), RowVersion: "stale"}, actorID)
		assert.ErrorIs(t, err, model.ErrConcurrencyConflict)
		m.groupRepo.AssertNotCalled(t, "UpdateWithVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 同時更新で条件付き更新が0件", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("FindByID", ctx, anyDB(), 1).Return(current(), nil).Once()
		m.groupRepo.On("UpdateWithVersion", ctx, anyDB(), 1, "v1", mock.Anything).Return(model.ErrConcurrencyConflict).Once()

		_, err := svc.Update(ctx, 1, &model.UpdateVocabularyGroupRequest{Description: strPtr("x"), RowVersion: "v1"}, actorID)
		assert.ErrorIs(t, err, model.ErrConcurrencyConflict)
	})

	t.Run("異常系: 存在しない", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("FindByID", ctx, anyDB(), 99).Return(nil, model.ErrNotFound).Once()

		_, err := svc.Update(ctx, 99, &model.UpdateVocabularyGroupRequest{RowVersion: "v1"}, actorID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: カテゴリが存在しない", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("FindByID", ctx, anyDB(), 1).Return(current(), nil).Once()
		m.categoryRepo.On("Exists", ctx, anyDB(), 404).Return(false, nil).Once()

		_, err := svc.Update(ctx, 1, &model.UpdateVocabularyGroupRequest{CategoryID: intPtr(404), RowVersion: "v1"}, actorID)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func Test_vocabularyGroupService_Delete(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("disk full")

	tests := []struct {
		name    string
		repoErr error
		want    bool
		wantErr error
	}{
		{"正常系: 削除", nil, true, nil},
		{"存在しない場合は false", model.ErrNotFound, false, nil},
		{"DBエラー", dbErr, false, dbErr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newGroupServiceForTest(t)
			m.groupRepo.On("Delete", ctx, anyDB(), 3, 7).Return(tt.repoErr).Once()

			got, err := svc.Delete(ctx, 3, 7)
			assert.Equal(t, tt.want, got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_vocabularyGroupService_GetVocabularies(t *testing.T) {
	ctx := context.Background()

	t.Run("2ページ目 (pageSize=2, 全3件)", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("Exists", ctx, anyDB(), 1).Return(true, nil).Once()
		m.vocabRepo.On("CountByGroup", ctx, anyDB(), 1).Return(int64(3), nil).Once()
		m.vocabRepo.On("FindByGroup", ctx, anyDB(), 1, 2, 2).
			Return([]*model.Vocabulary{{VocabularyID: 3, Term: "c3"}}, nil).Once()

		page, err := svc.GetVocabularies(ctx, 1, 2, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "c3", page.Items[0].Term)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.PageSize)
		assert.Equal(t, int64(3), page.TotalCount)
		assert.Equal(t, 2, page.TotalPages)
		assert.True(t, page.HasPrevious())
		assert.False(t, page.HasNext())
	})

	t.Run("範囲外のページは空だが件数は正しい", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("Exists", ctx, anyDB(), 1).Return(true, nil).Once()
		m.vocabRepo.On("CountByGroup", ctx, anyDB(), 1).Return(int64(3), nil).Once()

		page, err := svc.GetVocabularies(ctx, 1, 5, 2)
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(3), page.TotalCount)
		assert.Equal(t, 2, page.TotalPages)
		m.vocabRepo.AssertNotCalled(t, "FindByGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("オフセットが int を超える巨大なページ番号でも空", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("Exists", ctx, anyDB(), 1).Return(true, nil).Once()
		m.vocabRepo.On("CountByGroup", ctx, anyDB(), 1).Return(int64(3), nil).Once()

		// (page-1)*4 が 2^64 となり int では 0 に折り返す値
		hugePage := 1<<62 + 1
		page, err := svc.GetVocabularies(ctx, 1, hugePage, 4)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, hugePage, page.Page)
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasNext())
		m.vocabRepo.AssertNotCalled(t, "FindByGroup", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ページ指定の補正", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("Exists", ctx, anyDB(), 1).Return(true, nil).Once()
		m.vocabRepo.On("CountByGroup", ctx, anyDB(), 1).Return(int64(4), nil).Once()
		m.vocabRepo.On("FindByGroup", ctx, anyDB(), 1, 0, 50).Return([]*model.Vocabulary{}, nil).Once()

		page, err := svc.GetVocabularies(ctx, 1, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 50, page.PageSize)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("語彙0件のグループ", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("Exists", ctx, anyDB(), 1).Return(true, nil).Once()
		m.vocabRepo.On("CountByGroup", ctx, anyDB(), 1).Return(int64(0), nil).Once()

		page, err := svc.GetVocabularies(ctx, 1, 1, 10)
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("異常系: グループが存在しない", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("Exists", ctx, anyDB(), 99).Return(false, nil).Once()

		_, err := svc.GetVocabularies(ctx, 99, 1, 10)
		assert.ErrorIs(t, err, model.ErrNotFound)
		m.vocabRepo.AssertNotCalled(t, "CountByGroup", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_vocabularyGroupService_AddVocabulary(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 言語コードの既定値は ja", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("Exists", ctx, anyDB(), 1).Return(true, nil).Once()
		m.vocabRepo.On("Create", ctx, anyDB(), anyVocabulary()).
			Run(func(args mock.Arguments) {
				v := args.Get(2).(*model.Vocabulary)
				assert.Equal(t, 1, v.GroupID)
				assert.Equal(t, "食べる", v.Term)
				assert.Equal(t, "ja", v.LanguageCode)
				assert.Equal(t, 7, v.CreatedByUserID)
				v.VocabularyID = 20
			}).Return(nil).Once()

		got, err := svc.AddVocabulary(ctx, 1, &model.CreateVocabularyRequest{Term: "食べる", Meaning: "to eat", Level: "N5"}, 7)
		require.NoError(t, err)
		assert.Equal(t, 20, got.VocabularyID)
	})

	t.Run("異常系: グループが存在しない", func(t *testing.T) {
		svc, m := newGroupServiceForTest(t)
		m.groupRepo.On("Exists", ctx, anyDB(), 99).Return(false, nil).Once()

		_, err := svc.AddVocabulary(ctx, 99, &model.CreateVocabularyRequest{Term: "食べる"}, 7)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 空の単語", func(t *testing.T) {
		svc, _ := newGroupServiceForTest(t)

		_, err := svc.AddVocabulary(ctx, 1, &model.CreateVocabularyRequest{Term: " "}, 7)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
