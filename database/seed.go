package database

import (
	"log"

	"lunch_manager/constants"
	"lunch_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}
	accounts := []model.Account{
		{Username: "Administration", Email: "admin@lunch.local", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	// Quán mẫu kèm thực đơn để dev nhanh
	var shopCount int64
	db.Model(&model.Shop{}).Count(&shopCount)
	if shopCount > 0 {
		return
	}

	shop := model.Shop{
		Name:    "Quán Bún Bò 79",
		Slug:    "quan-bun-bo-79",
		Phone:   "0979 000 079",
		Address: "79 Lê Lợi",
		Active:  true,
	}
	if err := db.Create(&shop).Error; err != nil {
		log.Println("failed to seed shop:", err)
		return
	}

	menu := model.Menu{ShopId: shop.ID, Name: "Thực đơn trưa", Active: true}
	if err := db.Create(&menu).Error; err != nil {
		log.Println("failed to seed menu:", err)
		return
	}

	categories := []model.Category{
		{MenuId: menu.ID, Name: "Món nước", SortOrder: 1},
		{MenuId: menu.ID, Name: "Đồ uống", SortOrder: 2},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Println("failed to seed category:", err)
			return
		}
	}

	items := []model.MenuItem{
		{CategoryId: categories[0].ID, Name: "Bún bò đặc biệt", Price: 120, Active: true},
		{CategoryId: categories[0].ID, Name: "Bún bò tái", Price: 100, Active: true},
		{CategoryId: categories[1].ID, Name: "Trà đá", Price: 20, Active: true},
	}
	for _, item := range items {
		if err := db.Create(&item).Error; err != nil {
			log.Println("failed to seed menu item:", item.Name, "error:", err)
		}
	}
}
