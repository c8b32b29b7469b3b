// internal/model/vocabulary_group.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// VocabularyGroup は関連する語彙をまとめるグループです
type VocabularyGroup struct {
	GroupID         int            `gorm:"primaryKey;autoIncrement" json:"group_id"`
	GroupName       string         `gorm:"type:varchar(100);not null;index" json:"group_name"`
	Description     string         `gorm:"type:varchar(500)" json:"description,omitempty"`
	CategoryID      *int           `gorm:"index" json:"category_id,omitempty"`
	IsActive        bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedByUserID int            `gorm:"not null" json:"created_by_user_id"`
	UpdatedByUserID *int           `json:"updated_by_user_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	RowVersion      string         `gorm:"type:varchar(36);not null" json:"row_version"` // 楽観的排他制御用トークン
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                // 論理削除用

	// 関連 (Preload用)
	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (VocabularyGroup) TableName() string {
	return "vocabulary_groups"
}

// VocabularyGroupFilter は一覧取得の絞り込み条件 (AND で結合)
type VocabularyGroupFilter struct {
	IncludeInactive bool
	CategoryID      *int
}

// グループ作成リクエストDTO
type CreateVocabularyGroupRequest struct {
	GroupName   string `json:"group_name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	CategoryID  *int   `json:"category_id,omitempty" validate:"omitempty,gt=0"`
}

// グループ更新リクエストDTO (指定されたフィールドのみ更新する)
type UpdateVocabularyGroupRequest struct {
	GroupName   *string `json:"group_name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	CategoryID  *int    `json:"category_id,omitempty" validate:"omitempty,gt=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
	RowVersion  string  `json:"row_version" validate:"required"`
}
