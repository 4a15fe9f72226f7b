package models

import (
	"time"

	"gorm.io/gorm"
)

type News struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	Summary     string    `json:"summary" gorm:"size:500"`
	Category    string    `json:"category" gorm:"size:100"`
	Author      string    `json:"author" gorm:"size:255"`
	ImageURL    string    `json:"image_url" gorm:"size:500"`
	IsFeatured  bool      `json:"is_featured" gorm:"not null;default:false"`
	PublishedAt time.Time `json:"published_at" gorm:"index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
