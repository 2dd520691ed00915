package handler

import (
	"errors"
	"strings"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/helper"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetShops(c *fiber.Ctx) error {
	filterInput := new(model.FilterShop)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Shop{})

	if filterInput.SearchKey != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filterInput.SearchKey)) + "%"
		query = query.Where(
			db.Where("LOWER(name) LIKE ?", search).
				Or("LOWER(address) LIKE ?", search).
				Or("LOWER(phone) LIKE ?", search),
		)
	}
	if filterInput.Active != nil {
		query = query.Where("active = ?", *filterInput.Active)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var shops model.Shops
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).
		Order("id DESC").
		Find(&shops).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       shops,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetShopBySlug(c *fiber.Ctx) error {
	var shop model.Shop
	if err := database.DB.
		Preload("Menus", "active = ?", true).
		Preload("Menus.Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Menus.Categories.Items", "active = ?", true).
		Where("slug = ?", c.Params("slug")).
		First(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOP_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, shop)
}

func CreateShop(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateShop").(model.CreateShopInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	var newShop model.Shop
	copier.Copy(&newShop, &input)
	newShop.Slug = helper.GenerateUniqueShopSlug(db, input.Name)
	newShop.Active = true

	if err := db.Create(&newShop).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newShop)
}

func EditShop(c *fiber.Ctx) error {
	shopId, ok := c.Locals("shopId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	input, ok := c.Locals("inputEditShop").(model.EditShopInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB
	var shop model.Shop
	if err := db.First(&shop, shopId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOP_NOT_FOUND, err)
	}

	if input.Name != nil && *input.Name != shop.Name {
		shop.Name = *input.Name
		shop.Slug = helper.GenerateUniqueShopSlug(db, *input.Name)
	}
	if input.Phone != nil {
		shop.Phone = *input.Phone
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.Note != nil {
		shop.Note = *input.Note
	}
	if input.Active != nil {
		shop.Active = *input.Active
	}

	if err := db.Save(&shop).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, shop)
}

// UploadShopLogo lưu URL logo đã upload ở validate middleware.
func UploadShopLogo(c *fiber.Ctx) error {
	shopId, ok := c.Locals("shopId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	logoUrl, ok := c.Locals("uploadedLogoUrl").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB
	var shop model.Shop
	if err := db.First(&shop, shopId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SHOP_NOT_FOUND, err)
	}

	if err := db.Model(&shop).Update("logo_url", logoUrl).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"logoUrl": logoUrl})
}

func DeleteShop(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	// Quán đang gắn với sự kiện thì chỉ ẩn đi, không xoá
	var usedCount int64
	db.Model(&model.Event{}).Where("shop_id IN ?", input.IDs).Count(&usedCount)
	if usedCount > 0 {
		if err := db.Model(&model.Shop{}).Where("id IN ?", input.IDs).Update("active", false).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Quán đang được sử dụng nên chỉ được ẩn"})
	}

	if err := db.Delete(&model.Shop{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
