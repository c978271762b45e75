package seeders

import (
	"github.com/shopmitra/shopmitra/app/db/fakers"
	"github.com/shopmitra/shopmitra/app/models"
	"gorm.io/gorm"
)

var categoryBranches = [][3]string{
	{"Men", "Clothing", "T-Shirts"},
	{"Men", "Footwear", "Sneakers"},
	{"Women", "Clothing", "Dresses"},
	{"Women", "Accessories", "Handbags"},
}

// DBSeed fills an empty database with an admin login, a few customers and
// a catalogue spread over the category tree.
func DBSeed(db *gorm.DB) error {
	admin := fakers.AdminFaker(db)
	if err := db.FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}

	for i := 0; i < 5; i++ {
		user := fakers.UserFaker(db)
		if err := db.FirstOrCreate(user, "email = ?", user.Email).Error; err != nil {
			return err
		}
	}

	leaves := make([]*models.Category, 0, len(categoryBranches))
	for _, branch := range categoryBranches {
		leaf := fakers.CategoryFaker(db, branch[0], branch[1], branch[2])
		if leaf != nil {
			leaves = append(leaves, leaf)
		}
	}

	for _, leaf := range leaves {
		for i := 0; i < 5; i++ {
			product := fakers.ProductFaker(db, leaf)
			if err := db.Create(product).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
