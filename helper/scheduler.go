package helper

import (
	"log"
	"time"

	"lunch_manager/database"
	"lunch_manager/model"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

// StartEventScheduler quét định kỳ và đóng sự kiện đã qua hạn chốt đơn.
func StartEventScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút là đủ, deadline còn được check lại trong handler
	_, err := scheduler.AddFunc("*/5 * * * *", closeExpiredEvents)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("Scheduler đóng sự kiện đã khởi động (mỗi 5 phút)")
}

func closeExpiredEvents() {
	now := time.Now()
	result := database.DB.Model(&model.Event{}).
		Where("is_active = ? AND order_deadline < ? AND closed_at IS NULL", true, now).
		Updates(map[string]interface{}{
			"is_active": false,
			"closed_at": now,
		})

	if result.Error != nil {
		log.Printf("Lỗi đóng sự kiện quá hạn: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Đã đóng %d sự kiện quá hạn chốt đơn", result.RowsAffected)
	}
}

// Dừng scheduler khi tắt server
func StopEventScheduler() {
	if scheduler != nil {
		scheduler.Stop()
	}
}
