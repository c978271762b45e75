package fakers

import (
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopmitra/shopmitra/app/models"
	"gorm.io/gorm"
)

// CategoryFaker builds a full top>second>third branch and returns the
// third-level leaf products attach to.
func CategoryFaker(db *gorm.DB, top, second, third string) *models.Category {
	topCategory := &models.Category{
		ID:    uuid.New().String(),
		Name:  top,
		Slug:  slug.Make(top),
		Level: models.CategoryLevelTop,
	}
	secondCategory := &models.Category{
		ID:       uuid.New().String(),
		Name:     second,
		Slug:     slug.Make(top + "-" + second),
		Level:    models.CategoryLevelSecond,
		ParentID: &topCategory.ID,
	}
	thirdCategory := &models.Category{
		ID:       uuid.New().String(),
		Name:     third,
		Slug:     slug.Make(top + "-" + second + "-" + third),
		Level:    models.CategoryLevelThird,
		ParentID: &secondCategory.ID,
	}

	if err := db.FirstOrCreate(topCategory, "slug = ?", topCategory.Slug).Error; err != nil {
		return nil
	}
	if err := db.FirstOrCreate(secondCategory, "slug = ?", secondCategory.Slug).Error; err != nil {
		return nil
	}
	if err := db.FirstOrCreate(thirdCategory, "slug = ?", thirdCategory.Slug).Error; err != nil {
		return nil
	}

	return thirdCategory
}
