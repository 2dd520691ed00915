package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// DeadlineReminderData dữ liệu cho template email nhắc chốt đơn
type DeadlineReminderData struct {
	EventTitle  string
	Deadline    string
	ShopName    string
	OrderCount  int
	TotalAmount string
	DetailLink  string
}

// SendDeadlineReminderEmail gửi email nhắc người tạo sự kiện sắp tới hạn chốt (async)
func SendDeadlineReminderEmail(to string, data DeadlineReminderData) {
	go func() { // Async để không delay caller
		tmplPath := "templates/deadline_reminder.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Sắp tới hạn chốt đơn: "+data.EventTitle)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email: %v", err)
		}
	}()
}
