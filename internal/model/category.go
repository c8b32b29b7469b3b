package model

import "time"

// Category は語彙グループを分類するカテゴリです
type Category struct {
	CategoryID   int       `gorm:"primaryKey;autoIncrement" json:"category_id"`
	CategoryName string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"category_name"`
	Description  string    `gorm:"type:varchar(255)" json:"description,omitempty"`
	Level        string    `gorm:"type:varchar(20)" json:"level,omitempty"` // JLPTレベルなど
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// カテゴリ作成リクエストDTO
type CreateCategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,min=1,max=100"`
	Description  string `json:"description" validate:"max=255"`
	Level        string `json:"level" validate:"max=20"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}
