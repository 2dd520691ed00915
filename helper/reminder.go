package helper

import (
	"log"
	"time"

	"lunch_manager/database"
	"lunch_manager/model"
	"lunch_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

var reminderScheduler gocron.Scheduler

// SendDeadlineReminders nhắc người tạo các sự kiện chốt đơn trong hôm nay.
func SendDeadlineReminders() {
	log.Println("[CRON] SendDeadlineReminders triggered")

	db := database.DB
	now := time.Now()
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	var events []model.Event
	if err := db.Preload("Organizer").Preload("Shop").
		Where("is_active = ? AND order_deadline BETWEEN ? AND ?", true, now, endOfDay).
		Find(&events).Error; err != nil {
		log.Printf("Lỗi khi quét sự kiện sắp chốt: %v", err)
		return
	}

	for _, event := range events {
		if event.Organizer.Email == "" {
			continue
		}

		var orders []model.Order
		if err := db.Preload("Items").Preload("Account").
			Where("event_id = ?", event.ID).
			Find(&orders).Error; err != nil {
			log.Printf("Lỗi tải đơn cho sự kiện '%s': %v", event.Title, err)
			continue
		}
		stats := Aggregate(orders, AggregateOptions{})

		shopName := ""
		if event.Shop != nil {
			shopName = event.Shop.Name
		}

		utils.SendDeadlineReminderEmail(event.Organizer.Email, utils.DeadlineReminderData{
			EventTitle:  event.Title,
			Deadline:    event.OrderDeadline.Format("02/01/2006 15:04"),
			ShopName:    shopName,
			OrderCount:  stats.TotalOrders,
			TotalAmount: utils.FormatTWD(stats.TotalAmount),
			DetailLink:  "/events/" + event.Slug,
		})
		log.Printf("Đã gửi nhắc chốt đơn cho sự kiện '%s'", event.Title)
	}
}

func StartReminderScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	reminderScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(9, 0, 0),
			),
		),
		gocron.NewTask(SendDeadlineReminders),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Deadline reminder scheduler started (09:00)")
}
