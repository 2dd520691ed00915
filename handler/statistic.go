package handler

import (
	"errors"
	"fmt"
	"time"

	"lunch_manager/constants"
	"lunch_manager/database"
	"lunch_manager/helper"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func loadEventWithOrders(c *fiber.Ctx) (*model.Event, error) {
	var event model.Event
	if err := database.DB.
		Preload("Shop").
		Preload("Orders.Items").
		Preload("Orders.Account").
		Where("slug = ?", c.Params("slug")).
		First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
		}
		return nil, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return &event, nil
}

func eventStatistics(event *model.Event, groupByPrice bool) model.EventStatistics {
	if cached, ok := helper.GetCachedEventStatistics(event.ID, groupByPrice); ok {
		return *cached
	}

	stats := helper.Aggregate(event.Orders, helper.AggregateOptions{GroupByPrice: groupByPrice})
	stats.Shop = event.Shop
	helper.CacheEventStatistics(event.ID, groupByPrice, stats)
	return stats
}

// GetEventStatistics trả thống kê gộp theo món; ?split_by_price=1 tách
// món trùng tên khác giá thành hai dòng.
func GetEventStatistics(c *fiber.Ctx) error {
	event, err := loadEventWithOrders(c)
	if event == nil {
		return err
	}

	groupByPrice := c.Query("split_by_price") == "1"
	stats := eventStatistics(event, groupByPrice)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// DownloadEventReport xuất report text để organizer gửi nhóm/gọi quán.
func DownloadEventReport(c *fiber.Ctx) error {
	event, err := loadEventWithOrders(c)
	if event == nil {
		return err
	}

	groupByPrice := c.Query("split_by_price") == "1"
	stats := eventStatistics(event, groupByPrice)

	report := utils.BuildReportText(*event, stats)
	filename := fmt.Sprintf("order_report_%s_%s.txt", event.Slug, time.Now().Format("2006-01-02"))

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.SendString(report)
}

// GetEventRowsByUser: từng dòng (đơn × món) cho bảng "theo người".
func GetEventRowsByUser(c *fiber.Ctx) error {
	event, err := loadEventWithOrders(c)
	if event == nil {
		return err
	}

	stats := eventStatistics(event, false)
	return utils.SuccessResponse(c, fiber.StatusOK, utils.ByUserRows(stats))
}

// GetEventRowsByItem: các dòng đã gộp theo món cho bảng "theo món".
func GetEventRowsByItem(c *fiber.Ctx) error {
	event, err := loadEventWithOrders(c)
	if event == nil {
		return err
	}

	stats := eventStatistics(event, false)
	return utils.SuccessResponse(c, fiber.StatusOK, utils.ByItemRows(stats))
}

// GetAdminStats: số liệu tổng quan cho dashboard admin, so sánh hôm nay/hôm qua.
func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	var totalAccounts, totalShops, totalEvents, activeEvents, totalOrders int64
	db.Model(&model.Account{}).Count(&totalAccounts)
	db.Model(&model.Shop{}).Count(&totalShops)
	db.Model(&model.Event{}).Count(&totalEvents)
	db.Model(&model.Event{}).Where("is_active = ?", true).Count(&activeEvents)
	db.Model(&model.Order{}).Count(&totalOrders)

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var ordersToday, ordersYesterday int64
	db.Model(&model.Order{}).Where("created_at >= ?", todayStart).Count(&ordersToday)
	db.Model(&model.Order{}).Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).Count(&ordersYesterday)

	var amountToday, amountYesterday float64
	db.Model(&model.Order{}).Where("created_at >= ?", todayStart).
		Select("COALESCE(SUM(total), 0)").Scan(&amountToday)
	db.Model(&model.Order{}).Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).
		Select("COALESCE(SUM(total), 0)").Scan(&amountYesterday)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalAccounts":   totalAccounts,
		"totalShops":      totalShops,
		"totalEvents":     totalEvents,
		"activeEvents":    activeEvents,
		"totalOrders":     totalOrders,
		"ordersToday":     ordersToday,
		"ordersGrowth":    utils.CalculateGrowth(float64(ordersToday), float64(ordersYesterday)),
		"amountToday":     amountToday,
		"amountGrowth":    utils.CalculateGrowth(amountToday, amountYesterday),
		"amountYesterday": amountYesterday,
	})
}
