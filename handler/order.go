package handler

import (
	"errors"
	"time"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/helper"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// buildOrderItems chụp snapshot name/price từ input, tính lại tổng tiền phía server.
func buildOrderItems(inputs []model.OrderItemInput) ([]model.OrderItem, float64) {
	items := make([]model.OrderItem, 0, len(inputs))
	total := 0.0
	for _, in := range inputs {
		items = append(items, model.OrderItem{
			Name:       in.Name,
			Price:      in.Price,
			Quantity:   in.Quantity,
			Note:       in.Note,
			MenuItemId: in.MenuItemId,
		})
		total += in.Price * float64(in.Quantity)
	}
	return items, total
}

// SubmitOrder: mỗi tài khoản một đơn cho mỗi sự kiện (unique idx_event_account).
func SubmitOrder(c *fiber.Ctx) error {
	event, ok := c.Locals("event").(model.Event)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	input, ok := c.Locals("inputSubmitOrder").(model.SubmitOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB

	var existing model.Order
	err := db.Where("event_id = ? AND account_id = ?", event.ID, accountInfo.AccountId).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ORDER_ALREADY_EXISTS, errors.New("order exists"))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	items, total := buildOrderItems(input.Items)
	newOrder := model.Order{
		EventId:   event.ID,
		AccountId: accountInfo.AccountId,
		Total:     total,
		Note:      input.Note,
		Items:     items,
	}

	if err := db.Create(&newOrder).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateEventStatistics(event.ID)
	helper.PublishOrderFeed(event.ID, fiber.Map{
		"type":    "order_submitted",
		"orderId": newOrder.ID,
		"total":   newOrder.Total,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, newOrder)
}

// UpdateOrder: chủ đơn sửa đơn của mình khi sự kiện còn mở, thay toàn bộ items.
func UpdateOrder(c *fiber.Ctx) error {
	event, ok := c.Locals("event").(model.Event)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	input, ok := c.Locals("inputSubmitOrder").(model.SubmitOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB

	var order model.Order
	if err := db.Where("event_id = ? AND account_id = ?", event.ID, accountInfo.AccountId).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	items, total := buildOrderItems(input.Items)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		order.Total = total
		order.Note = input.Note
		order.Items = items
		return tx.Save(&order).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateEventStatistics(event.ID)
	helper.PublishOrderFeed(event.ID, fiber.Map{
		"type":    "order_updated",
		"orderId": order.ID,
		"total":   order.Total,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// DeleteOrder: chủ đơn rút đơn khi sự kiện còn mở.
func DeleteOrder(c *fiber.Ctx) error {
	event, ok := c.Locals("event").(model.Event)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB

	var order model.Order
	if err := db.Where("event_id = ? AND account_id = ?", event.ID, accountInfo.AccountId).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Select("Items").Delete(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateEventStatistics(event.ID)
	helper.PublishOrderFeed(event.ID, fiber.Map{
		"type":    "order_deleted",
		"orderId": order.ID,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": order.ID})
}

// MarkOrderPaid: organizer hoặc admin đánh dấu đã thu tiền, kể cả sau khi đóng đơn.
func MarkOrderPaid(c *fiber.Ctx) error {
	orderId, ok := c.Locals("orderId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	input, ok := c.Locals("inputMarkPaid").(model.MarkPaidInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var event model.Event
	if err := db.First(&event, order.EventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	accountInfo, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && accountInfo.AccountId != event.OrganizerId {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_EVENT_ORGANIZER, errors.New("permission denied"))
	}

	order.IsPaid = input.IsPaid
	if input.IsPaid {
		now := time.Now()
		order.PaidAt = &now
		order.PaidMethod = input.PaidMethod
	} else {
		order.PaidAt = nil
		order.PaidMethod = nil
	}

	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.InvalidateEventStatistics(event.ID)
	helper.PublishOrderFeed(event.ID, fiber.Map{
		"type":    "order_paid",
		"orderId": order.ID,
		"isPaid":  order.IsPaid,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// GetMyOrder trả về đơn của người đang đăng nhập cho một sự kiện.
func GetMyOrder(c *fiber.Ctx) error {
	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB

	var event model.Event
	if err := db.Where("slug = ?", c.Params("slug")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var order model.Order
	if err := db.Preload("Items").
		Where("event_id = ? AND account_id = ?", event.ID, accountInfo.AccountId).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}
