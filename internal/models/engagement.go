package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ArticleID uint   `json:"article_id" gorm:"not null;index"`
	Author    string `json:"author" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email     string `json:"email" gorm:"not null;size:200" validate:"required,email"`
	Body      string `json:"body" gorm:"type:text;not null" validate:"required,min=1,max=2000"`
	Approved  bool   `json:"approved" gorm:"default:false;index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Comment) TableName() string {
	return "comments"
}

type Subscriber struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Email string `json:"email" gorm:"not null;size:200;uniqueIndex" validate:"required,email"`

	CreatedAt time.Time `json:"created_at"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}
