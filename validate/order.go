package validate

import (
	"errors"
	"strconv"
	"time"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadOpenEvent tìm sự kiện theo slug và chặn thao tác khi đã đóng/quá hạn.
func loadOpenEvent(c *fiber.Ctx, slugKey string) (*model.Event, error) {
	var event model.Event
	if err := database.DB.Where("slug = ?", c.Params(slugKey)).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return nil, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !event.IsActive || event.ClosedAt != nil {
		return nil, utils.ErrorResponse(c, fiber.StatusConflict, constants.EVENT_CLOSED, errors.New("event closed"))
	}
	if event.OrderDeadline.Before(time.Now()) {
		return nil, utils.ErrorResponse(c, fiber.StatusConflict, constants.EVENT_DEADLINE_PASSED, errors.New("deadline passed"))
	}

	return &event, nil
}

// OpenEvent chỉ kiểm tra sự kiện còn nhận đơn, dùng cho các thao tác không có body.
func OpenEvent(eventSlugKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		event, err := loadOpenEvent(c, eventSlugKey)
		if event == nil {
			return err
		}
		c.Locals("event", *event)
		return c.Next()
	}
}

func SubmitOrder(eventSlugKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		event, err := loadOpenEvent(c, eventSlugKey)
		if event == nil {
			return err
		}

		var input model.SubmitOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		if len(input.Items) == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.ORDER_EMPTY_ITEMS, nil, "items")
		}

		c.Locals("event", *event)
		c.Locals("inputSubmitOrder", input)
		return c.Next()
	}
}

// MarkPaid không cần sự kiện còn mở — organizer chốt tiền sau khi đóng đơn.
func MarkPaid(orderIdKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderId, err := strconv.ParseUint(c.Params(orderIdKey), 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.MarkPaidInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if input.IsPaid && input.PaidMethod != nil && !utils.IsValidValueOfConstant(*input.PaidMethod, constants.PAID_METHODS) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.INVALID_PAID_METHOD, nil, "paidMethod")
		}

		c.Locals("orderId", uint(orderId))
		c.Locals("inputMarkPaid", input)
		return c.Next()
	}
}
