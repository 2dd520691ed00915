package handler

import (
	"encoding/base64"
	"errors"
	"log"
	"strings"
	"time"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/helper"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetEvents(c *fiber.Ctx) error {
	filterInput := new(model.FilterEvent)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Event{})

	if filterInput.SearchKey != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filterInput.SearchKey)) + "%"
		query = query.Where("LOWER(title) LIKE ?", search)
	}
	if filterInput.IsActive != nil {
		query = query.Where("is_active = ?", *filterInput.IsActive)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	var events model.Events
	if err := utils.ApplyPagination(query, filterInput.Limit, filterInput.Page).
		Preload("Organizer").
		Preload("Shop").
		Order("order_deadline DESC").
		Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       events,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetEventBySlug(c *fiber.Ctx) error {
	var event model.Event
	if err := database.DB.
		Preload("Organizer").
		Preload("Shop").
		Preload("Menu.Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Menu.Categories.Items", "active = ?", true).
		Preload("Orders.Items").
		Preload("Orders.Account").
		Where("slug = ?", c.Params("slug")).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// QR link tham gia, render sẵn base64 cho client
	qrBase64 := ""
	if qrBytes, err := utils.EventJoinQR(event.Slug, 300); err != nil {
		log.Printf("Lỗi tạo QR cho sự kiện %s: %v", event.Slug, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"event":  event,
		"qrCode": qrBase64,
	})
}

// GetEventQR trả thẳng PNG để in/chia sẻ link tham gia.
func GetEventQR(c *fiber.Ctx) error {
	var event model.Event
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	qrBytes, err := utils.EventJoinQR(event.Slug, 300)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(qrBytes)
}

func CreateEvent(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateEvent").(model.CreateEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	accountInfo, _, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, nil)
	}

	db := database.DB

	newEvent := model.Event{
		PublicCode:    uuid.NewString(),
		Slug:          helper.GenerateUniqueEventSlug(db, input.Title),
		Title:         input.Title,
		Description:   input.Description,
		OrderDeadline: input.OrderDeadline,
		IsActive:      true,
		OrganizerId:   accountInfo.AccountId,
		ShopId:        input.ShopId,
		MenuId:        input.MenuId,
	}

	if err := db.Create(&newEvent).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newEvent)
}

func EditEvent(c *fiber.Ctx) error {
	event, ok := c.Locals("event").(model.Event)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}
	input, ok := c.Locals("inputEditEvent").(model.EditEventInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	if input.Title != nil && *input.Title != event.Title {
		event.Title = *input.Title
		event.Slug = helper.GenerateUniqueEventSlug(db, *input.Title)
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.OrderDeadline != nil {
		event.OrderDeadline = *input.OrderDeadline
		// Dời deadline về tương lai thì mở lại sự kiện đã bị scheduler đóng
		if event.ClosedAt != nil && input.OrderDeadline.After(time.Now()) {
			event.ClosedAt = nil
			event.IsActive = true
		}
	}
	if input.ShopId != nil {
		event.ShopId = input.ShopId
	}
	if input.MenuId != nil {
		event.MenuId = input.MenuId
	}

	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func ToggleEventActive(c *fiber.Ctx) error {
	event, ok := c.Locals("event").(model.Event)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	event.IsActive = !event.IsActive
	if event.IsActive {
		event.ClosedAt = nil
	} else {
		now := time.Now()
		event.ClosedAt = &now
	}

	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// DeleteEvent: sự kiện đã có đơn thì không xoá được
func DeleteEvent(c *fiber.Ctx) error {
	event, ok := c.Locals("event").(model.Event)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, nil)
	}

	db := database.DB

	var orderCount int64
	db.Model(&model.Order{}).Where("event_id = ?", event.ID).Count(&orderCount)
	if orderCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EVENT_HAS_ORDERS, errors.New("event has orders"))
	}

	if err := db.Delete(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": event.ID})
}
