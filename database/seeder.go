package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aokimidori/kakigori-pos/models"
	"github.com/aokimidori/kakigori-pos/utils"
)

// Fixed catalog of the stand. Ids are stable so reseeding after a schema
// change keeps historical order lines pointing at the right items.
var menuSeed = []models.MenuItem{
	{
		ID:        "1b9d2334-1d11-40cc-93cf-c7cc50ec9996",
		Name:      "初恋いちご",
		Price:     300,
		IsActive:  true,
		SortOrder: 1,
		Image:     "strawberry.jpg",
	},
	{
		ID:        "cd52c9ee-bf05-467b-bd3d-6dbf2b10a08c",
		Name:      "初恋いちご（練乳抜き）",
		Price:     250,
		IsActive:  true,
		SortOrder: 2,
		Image:     "strawberry.jpg",
	},
	{
		ID:        "ab07d7f4-5533-497b-b194-24d31ab09d38",
		Name:      "青春ブルーハワイ",
		Price:     400,
		IsActive:  true,
		SortOrder: 3,
		Image:     "blue-hawaii.jpg",
	},
	{
		ID:        "3c2463b8-c48c-4892-9d36-fd75c90d207d",
		Name:      "青春ブルーハワイ（パイナップル抜き）",
		Price:     250,
		IsActive:  true,
		SortOrder: 4,
		Image:     "blue-hawaii-no-pineapple.jpg",
	},
	{
		ID:        "03cb03ae-0c57-4c92-80e7-79f81e4cc493",
		Name:      "コーヒー",
		Price:     300,
		IsActive:  true,
		SortOrder: 5,
		Image:     "coffee.jpg",
	},
	{
		ID:        "b33279f5-7ee1-4667-b00e-48230826455c",
		Name:      "コーヒー（練乳抜き）",
		Price:     250,
		IsActive:  true,
		SortOrder: 6,
		Image:     "coffee-no-milk.jpg",
	},
	{
		ID:        "449dff19-a239-4720-ba65-615fca1c5a6f",
		Name:      "カシス",
		Price:     500,
		IsActive:  true,
		SortOrder: 7,
		Image:     "cassis.jpg",
	},
	{
		ID:        "5ffb47b0-a149-4132-8655-be2a101bf6e5",
		Name:      "カシス（オレンジ抜き）",
		Price:     350,
		IsActive:  true,
		SortOrder: 8,
		Image:     "cassis-no-orange.jpg",
	},
}

// SeedMenu upserts the fixed catalog. Safe to run on every boot.
func SeedMenu(db *gorm.DB) error {
	for _, item := range menuSeed {
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "price", "is_active", "sort_order", "image",
			}),
		}).Create(&item).Error
		if err != nil {
			return fmt.Errorf("seed menu item %s: %w", item.Name, err)
		}
	}
	utils.InfoLogger.Printf("Seeded %d menu items", len(menuSeed))
	return nil
}
