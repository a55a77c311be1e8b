package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/homecook/cookbook/internal/domain/category"
)

// SeedDefaultCategories inserts the stock category set into an empty database.
// A database that already has categories is left untouched.
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	db.Model(&CategoryModel{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, seed := range category.Defaults() {
		entity, err := category.New(seed.Name, seed.Description, seed.SortOrder)
		if err != nil {
			return fmt.Errorf("invalid default category %q: %w", seed.Name, err)
		}
		if err := db.Create(CategoryToModel(entity)).Error; err != nil {
			return fmt.Errorf("failed to create category %q: %w", seed.Name, err)
		}
	}

	return nil
}
