package validate

import (
	"errors"
	"strconv"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/helper"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateShop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShopInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		// Chỉ admin hoặc moderator được quản lý quán
		_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isModerator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}

		// Kiểm tra tên trùng (không phân biệt hoa thường)
		var count int64
		database.DB.Model(&model.Shop{}).Where("LOWER(name) = LOWER(?)", input.Name).Count(&count)
		if count > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.SHOP_NAME_EXISTS, nil, "name")
		}

		c.Locals("inputCreateShop", input)
		return c.Next()
	}
}

func EditShop(shopIdKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shopId, err := strconv.ParseUint(c.Params(shopIdKey), 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditShopInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		_, isAdmin, isModerator := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isModerator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}

		if input.Name != nil {
			var count int64
			database.DB.Model(&model.Shop{}).
				Where("LOWER(name) = LOWER(?) AND id <> ?", *input.Name, shopId).
				Count(&count)
			if count > 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, constants.SHOP_NAME_EXISTS, nil, "name")
			}
		}

		c.Locals("shopId", uint(shopId))
		c.Locals("inputEditShop", input)
		return c.Next()
	}
}
