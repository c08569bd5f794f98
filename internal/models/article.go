package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArticleCategory string

const (
	CategoryJardinagem       ArticleCategory = "jardinagem"
	CategoryEnergia          ArticleCategory = "energia"
	CategoryReciclagem       ArticleCategory = "reciclagem"
	CategorySustentabilidade ArticleCategory = "sustentabilidade"
)

type Article struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Title    string  `json:"title" gorm:"not null;size:200;index" validate:"required,min=1,max=200"`
	Slug     string  `json:"slug" gorm:"not null;size:220;uniqueIndex" validate:"required,min=1,max=220"`
	Content  string  `json:"content" gorm:"type:text;not null" validate:"required"`
	Excerpt  *string `json:"excerpt" gorm:"type:text" validate:"omitempty,max=500"`
	Category string  `json:"category" gorm:"not null;size:60;index" validate:"required,max=60"`
	ImageURL *string `json:"image_url" gorm:"size:500" validate:"omitempty,max=500"`

	Tags      datatypes.JSON `json:"tags" gorm:"type:jsonb"` // []string
	Published bool           `json:"published" gorm:"default:false;index"`
	Likes     int            `json:"likes" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`

	// Computed fields (not stored)
	CommentCount int `json:"comment_count,omitempty" gorm:"-"`
}

func (Article) TableName() string {
	return "articles"
}
