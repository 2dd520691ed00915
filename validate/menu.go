package validate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/helper"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

func CreateMenu() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isModerator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}

		var count int64
		database.DB.Model(&model.Shop{}).Where("id = ?", input.ShopId).Count(&count)
		if count == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.SHOP_NOT_FOUND, nil, "shopId")
		}

		c.Locals("inputCreateMenu", input)
		return c.Next()
	}
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isModerator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}

		var count int64
		database.DB.Model(&model.Menu{}).Where("id = ?", input.MenuId).Count(&count)
		if count == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.MENU_NOT_FOUND, nil, "menuId")
		}

		c.Locals("inputCreateCategory", input)
		return c.Next()
	}
}

func CreateMenuItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMenuItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isModerator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}

		var count int64
		database.DB.Model(&model.Category{}).Where("id = ?", input.CategoryId).Count(&count)
		if count == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.MENU_NOT_FOUND, nil, "categoryId")
		}

		c.Locals("inputCreateMenuItem", input)
		return c.Next()
	}
}

func EditMenuItem(itemIdKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemId, err := strconv.ParseUint(c.Params(itemIdKey), 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditMenuItemInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isModerator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}

		c.Locals("menuItemId", uint(itemId))
		c.Locals("inputEditMenuItem", input)
		return c.Next()
	}
}

// UploadMenuItemImage: nhận multipart "image", đẩy lên Cloudinary,
// gắn secure URL vào Locals cho handler lưu lại.
func UploadMenuItemImage(itemIdKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemId, err := strconv.ParseUint(c.Params(itemIdKey), 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isModerator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}

		file, err := c.FormFile("image")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu file ảnh", err, "image")
		}

		// Kiểm tra định dạng file
		ext := filepath.Ext(file.Filename)
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Định dạng file không hỗ trợ (chỉ hỗ trợ PNG, JPG, JPEG)", fmt.Errorf("invalid file format"), "image")
		}

		fileReader, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể đọc file ảnh", err)
		}
		defer fileReader.Close()

		cld := helper.InitCloudinary()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		uploadResult, err := cld.Upload.Upload(ctx, fileReader, uploader.UploadParams{
			Folder:   "lunch_manager/menu_items",
			PublicID: fmt.Sprintf("item_%d", itemId),
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload ảnh thất bại", err)
		}

		c.Locals("menuItemId", uint(itemId))
		c.Locals("uploadedImageUrl", uploadResult.SecureURL)
		return c.Next()
	}
}

// UploadShopLogo tương tự UploadMenuItemImage nhưng cho logo quán.
func UploadShopLogo(shopIdKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shopId, err := strconv.ParseUint(c.Params(shopIdKey), 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isModerator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}

		file, err := c.FormFile("logo")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Thiếu file logo", err, "logo")
		}

		ext := filepath.Ext(file.Filename)
		if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Định dạng file không hỗ trợ (chỉ hỗ trợ PNG, JPG, JPEG)", fmt.Errorf("invalid file format"), "logo")
		}

		fileReader, err := file.Open()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể đọc file logo", err)
		}
		defer fileReader.Close()

		cld := helper.InitCloudinary()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		uploadResult, err := cld.Upload.Upload(ctx, fileReader, uploader.UploadParams{
			Folder:   "lunch_manager/shops",
			PublicID: fmt.Sprintf("shop_%d", shopId),
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload logo thất bại", err)
		}

		c.Locals("shopId", uint(shopId))
		c.Locals("uploadedLogoUrl", uploadResult.SecureURL)
		return c.Next()
	}
}
