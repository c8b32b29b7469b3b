package model

import "time"

// Vocabulary はグループに属する語彙です
type Vocabulary struct {
	VocabularyID    int       `gorm:"primaryKey;autoIncrement" json:"vocabulary_id"`
	GroupID         int       `gorm:"not null;index" json:"group_id"`
	Term            string    `gorm:"type:varchar(100);not null" json:"term"` // 単語
	LanguageCode    string    `gorm:"type:varchar(10);not null;default:ja" json:"language_code"`
	Reading         string    `gorm:"type:varchar(200)" json:"reading,omitempty"` // 読み (ひらがな/カタカナ)
	Meaning         string    `gorm:"type:varchar(500)" json:"meaning,omitempty"`
	Level           string    `gorm:"type:varchar(10)" json:"level,omitempty"` // N5〜N1
	PartOfSpeech    string    `gorm:"type:varchar(50)" json:"part_of_speech,omitempty"`
	CreatedByUserID int       `gorm:"not null" json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Vocabulary) TableName() string {
	return "vocabularies"
}

// 語彙追加リクエストDTO
type CreateVocabularyRequest struct {
	Term         string `json:"term" validate:"required,min=1,max=100"`
	LanguageCode string `json:"language_code" validate:"omitempty,max=10"`
	Reading      string `json:"reading" validate:"max=200"`
	Meaning      string `json:"meaning" validate:"max=500"`
	Level        string `json:"level" validate:"omitempty,oneof=N5 N4 N3 N2 N1"`
	PartOfSpeech string `json:"part_of_speech" validate:"max=50"`
}
