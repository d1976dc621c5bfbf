package models

import "time"

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	URL         string    `gorm:"type:varchar(255);not null" json:"url"`
	Client      string    `gorm:"type:varchar(255);not null" json:"client"`
	ProjectDate time.Time `gorm:"not null" json:"project_date"`
	ImageURL    string    `gorm:"type:varchar(255);not null" json:"image_url"`
	CategoryID  uint64    `gorm:"not null" json:"category_id"`
	LanguageID  uint64    `gorm:"not null" json:"language_id"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Category Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Language Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
}
