package handler

import (
	"errors"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/helper"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetMenuById(c *fiber.Ctx) error {
	menuId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	var menu model.Menu
	if err := database.DB.
		Preload("Shop").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Categories.Items", "active = ?", true).
		First(&menu, menuId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, menu)
}

func CreateMenu(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateMenu").(model.CreateMenuInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	var newMenu model.Menu
	copier.Copy(&newMenu, &input)
	newMenu.Active = true

	if err := database.DB.Create(&newMenu).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newMenu)
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	var newCategory model.Category
	copier.Copy(&newCategory, &input)

	if err := database.DB.Create(&newCategory).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newCategory)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateMenuItem").(model.CreateMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	var newItem model.MenuItem
	copier.Copy(&newItem, &input)
	newItem.Active = true

	if err := database.DB.Create(&newItem).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newItem)
}

// EditMenuItem chỉ sửa bản ghi menu — đơn đã đặt giữ nguyên snapshot name/price.
func EditMenuItem(c *fiber.Ctx) error {
	itemId, ok := c.Locals("menuItemId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	input, ok := c.Locals("inputEditMenuItem").(model.EditMenuItemInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB
	var item model.MenuItem
	if err := db.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Active != nil {
		item.Active = *input.Active
	}

	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// UploadMenuItemImage lưu URL ảnh đã upload ở validate middleware.
func UploadMenuItemImage(c *fiber.Ctx) error {
	itemId, ok := c.Locals("menuItemId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	imageUrl, ok := c.Locals("uploadedImageUrl").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB
	var item model.MenuItem
	if err := db.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MENU_ITEM_NOT_FOUND, err)
	}

	if err := db.Model(&item).Update("image_url", imageUrl).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"imageUrl": imageUrl})
}

func DeleteMenuItem(c *fiber.Ctx) error {
	_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isModerator {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	// Món chỉ bị ẩn, không xoá vật lý: OrderItem tham chiếu menu_item_id để truy vết
	if err := database.DB.Model(&model.MenuItem{}).Where("id IN ?", input.IDs).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"disabled": input.IDs})
}
