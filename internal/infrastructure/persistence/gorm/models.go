// Package gorm provides GORM model definitions for the application
package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryModel represents the GORM model for categories
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	SortOrder   int       `gorm:"default:0;index"`
	CreatedAt   time.Time

	// Relationships
	Recipes []RecipeModel `gorm:"foreignKey:CategoryID"`
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey"`
	Title       string     `gorm:"type:varchar(200);not null;index"`
	Description string     `gorm:"type:text"`
	CategoryID  *uuid.UUID `gorm:"type:char(36);index"`

	// Timing (stored in minutes)
	PrepTimeMinutes int `gorm:"column:prep_time_minutes;default:0"`
	CookTimeMinutes int `gorm:"column:cook_time_minutes;default:0"`
	RestTimeMinutes int `gorm:"column:rest_time_minutes;default:0"`

	// Yield
	Servings     int    `gorm:"default:0"`
	ServingsUnit string `gorm:"type:varchar(50);default:'servings'"`

	// Content. Instructions holds the whole body for simple recipes;
	// sectioned recipes keep their steps on the section rows instead.
	Instructions string `gorm:"type:text"`
	HasSections  bool   `gorm:"default:false"`

	Notes    string `gorm:"type:text"`
	Source   string `gorm:"type:varchar(255)"`
	Favorite bool   `gorm:"default:false;index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	// Relationships
	Category    *CategoryModel    `gorm:"foreignKey:CategoryID"`
	Ingredients []IngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Sections    []SectionModel    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// SectionModel represents the GORM model for named recipe parts
type SectionModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecipeID     uuid.UUID `gorm:"type:char(36);not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Instructions string    `gorm:"type:text"`
	SortOrder    int       `gorm:"default:0"`

	// Relationships
	Ingredients []IngredientModel `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
}

// IngredientModel represents the GORM model for parsed ingredient lines.
// Flat recipe ingredients have a nil SectionID.
type IngredientModel struct {
	ID          uuid.UUID  `gorm:"type:char(36);primaryKey"`
	RecipeID    uuid.UUID  `gorm:"type:char(36);not null;index"`
	SectionID   *uuid.UUID `gorm:"type:char(36);index"`
	Quantity    *float64
	Unit        string `gorm:"type:varchar(50)"`
	Name        string `gorm:"type:varchar(200);not null"`
	Preparation string `gorm:"type:varchar(200)"`
	Optional    bool   `gorm:"default:false"`
	SortOrder   int    `gorm:"default:0"`
}

// BeforeCreate hook for CategoryModel
func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for RecipeModel
func (r *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for SectionModel
func (s *SectionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for IngredientModel
func (i *IngredientModel) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName methods for custom table names
func (CategoryModel) TableName() string {
	return "categories"
}

func (RecipeModel) TableName() string {
	return "recipes"
}

func (SectionModel) TableName() string {
	return "recipe_sections"
}

func (IngredientModel) TableName() string {
	return "recipe_ingredients"
}
