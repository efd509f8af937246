package migration

import (
	"github.com/adbridge/adbridge-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for every table and seeds the category tree
// when it is empty.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.CreatorDetail{},
		&domain.AdvertiserDetail{},
		&domain.ProductCategory{},
		&domain.Product{},
		&domain.Campaign{},
		&domain.Application{},
		&domain.Click{},
		&domain.ShopItem{},
	); err != nil {
		return err
	}

	var count int64
	db.Model(&domain.ProductCategory{}).Count(&count)
	if count == 0 {
		return seedCategories(db)
	}
	return nil
}

func seedCategories(db *gorm.DB) error {
	idPtr := func(v uint64) *uint64 { return &v }

	categories := []domain.ProductCategory{
		{ID: 1, Depth: 1, Slug: "fashion", Name: "Fashion"},
		{ID: 2, ParentID: idPtr(1), Depth: 2, Slug: "fashion-apparel", Name: "Apparel"},
		{ID: 3, ParentID: idPtr(1), Depth: 2, Slug: "fashion-shoes", Name: "Shoes"},
		{ID: 4, ParentID: idPtr(1), Depth: 2, Slug: "fashion-accessories", Name: "Accessories"},

		{ID: 10, Depth: 1, Slug: "beauty", Name: "Beauty"},
		{ID: 11, ParentID: idPtr(10), Depth: 2, Slug: "beauty-skincare", Name: "Skincare"},
		{ID: 12, ParentID: idPtr(10), Depth: 2, Slug: "beauty-makeup", Name: "Makeup"},
		{ID: 13, ParentID: idPtr(10), Depth: 2, Slug: "beauty-haircare", Name: "Haircare"},

		{ID: 20, Depth: 1, Slug: "food", Name: "Food & Beverage"},
		{ID: 21, ParentID: idPtr(20), Depth: 2, Slug: "food-snacks", Name: "Snacks"},
		{ID: 22, ParentID: idPtr(20), Depth: 2, Slug: "food-health", Name: "Health Food"},
		{ID: 23, ParentID: idPtr(20), Depth: 2, Slug: "food-beverage", Name: "Beverages"},

		{ID: 30, Depth: 1, Slug: "tech", Name: "Tech & Gadgets"},
		{ID: 31, ParentID: idPtr(30), Depth: 2, Slug: "tech-mobile", Name: "Mobile & Accessories"},
		{ID: 32, ParentID: idPtr(30), Depth: 2, Slug: "tech-audio", Name: "Audio"},
		{ID: 33, ParentID: idPtr(30), Depth: 2, Slug: "tech-home", Name: "Smart Home"},

		{ID: 40, Depth: 1, Slug: "living", Name: "Home & Living"},
		{ID: 41, ParentID: idPtr(40), Depth: 2, Slug: "living-kitchen", Name: "Kitchen"},
		{ID: 42, ParentID: idPtr(40), Depth: 2, Slug: "living-interior", Name: "Interior"},

		{ID: 50, Depth: 1, Slug: "fitness", Name: "Fitness"},
		{ID: 51, ParentID: idPtr(50), Depth: 2, Slug: "fitness-equipment", Name: "Equipment"},
		{ID: 52, ParentID: idPtr(50), Depth: 2, Slug: "fitness-supplement", Name: "Supplements"},
	}

	return db.Create(&categories).Error
}
