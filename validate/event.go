package validate

import (
	"errors"
	"strconv"
	"time"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/helper"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if input.OrderDeadline.Before(time.Now()) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hạn chốt đơn phải ở tương lai", errors.New("deadline in the past"), "orderDeadline")
		}

		if input.ShopId != nil {
			var count int64
			database.DB.Model(&model.Shop{}).Where("id = ? AND active = ?", *input.ShopId, true).Count(&count)
			if count == 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.SHOP_NOT_FOUND, nil, "shopId")
			}
		}
		if input.MenuId != nil {
			var count int64
			database.DB.Model(&model.Menu{}).Where("id = ? AND active = ?", *input.MenuId, true).Count(&count)
			if count == 0 {
				return utils.ErrorResponseHaveKey(c, fiber.StatusNotFound, constants.MENU_NOT_FOUND, nil, "menuId")
			}
		}

		c.Locals("inputCreateEvent", input)
		return c.Next()
	}
}

// EditEvent: người tạo sự kiện hoặc admin mới được sửa
func EditEvent(eventIdKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventId, err := strconv.ParseUint(c.Params(eventIdKey), 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var event model.Event
		if err := database.DB.First(&event, uint(eventId)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		accountInfo, isAdmin, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && event.OrganizerId != accountInfo.AccountId {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_ORGANIZER, errors.New("permission denied"))
		}

		var input model.EditEventInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.OrderDeadline != nil && input.OrderDeadline.Before(time.Now()) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Hạn chốt đơn phải ở tương lai", errors.New("deadline in the past"), "orderDeadline")
		}

		c.Locals("event", event)
		c.Locals("inputEditEvent", input)
		return c.Next()
	}
}

// EventOrganizer chỉ check quyền, dùng cho toggle-active / delete
func EventOrganizer(eventIdKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventId, err := strconv.ParseUint(c.Params(eventIdKey), 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var event model.Event
		if err := database.DB.First(&event, uint(eventId)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		accountInfo, isAdmin, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && event.OrganizerId != accountInfo.AccountId {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_ORGANIZER, errors.New("permission denied"))
		}

		c.Locals("event", event)
		return c.Next()
	}
}
