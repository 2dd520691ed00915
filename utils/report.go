package utils

import (
	"fmt"
	"math"
	"strings"

	"lunch_manager/model"
)

// FormatTWD định dạng tiền Đài tệ: không lẻ, có phân cách hàng nghìn.
// Dùng chung cho report tải về, bảng thống kê và summary để số liệu
// hiển thị luôn khớp nhau.
func FormatTWD(amount float64) string {
	negative := amount < 0
	n := int64(math.Round(math.Abs(amount)))

	s := fmt.Sprintf("%d", n)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := "NT$" + strings.Join(parts, ",")
	if negative {
		out = "-" + out
	}
	return out
}

// BuildReportText dựng report thuần text để tải về.
// Thứ tự section cố định: thông tin quán → tổng quan → theo món → theo người.
// Sự kiện chưa có đơn thì các section dữ liệu bị bỏ trống, không lỗi.
func BuildReportText(event model.Event, stats model.EventStatistics) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== %s ===\n", event.Title))
	b.WriteString(fmt.Sprintf("Hạn chốt đơn: %s\n", event.OrderDeadline.Format("2006-01-02 15:04")))
	b.WriteString("\n")

	if stats.Shop != nil {
		b.WriteString("--- Quán ---\n")
		b.WriteString(fmt.Sprintf("Tên: %s\n", stats.Shop.Name))
		if stats.Shop.Phone != "" {
			b.WriteString(fmt.Sprintf("Điện thoại: %s\n", stats.Shop.Phone))
		}
		if stats.Shop.Address != "" {
			b.WriteString(fmt.Sprintf("Địa chỉ: %s\n", stats.Shop.Address))
		}
		b.WriteString("\n")
	}

	b.WriteString("--- Tổng quan ---\n")
	b.WriteString(fmt.Sprintf("Số đơn: %d\n", stats.TotalOrders))
	b.WriteString(fmt.Sprintf("Số người tham gia: %d\n", stats.ParticipantCount))
	b.WriteString(fmt.Sprintf("Đã thanh toán: %d / Chưa thanh toán: %d\n", stats.PaidCount, stats.UnpaidCount))
	b.WriteString(fmt.Sprintf("Tổng tiền: %s\n", FormatTWD(stats.TotalAmount)))
	b.WriteString("\n")

	if len(stats.ItemSummary) > 0 {
		b.WriteString("--- Theo món ---\n")
		for _, item := range stats.ItemSummary {
			b.WriteString(fmt.Sprintf("%s x%d = %s\n", item.Name, item.Quantity, FormatTWD(item.Total)))
			for _, d := range item.Details {
				line := fmt.Sprintf("  - %s x%d", d.Username, d.Quantity)
				if d.ItemNote != "" {
					line += fmt.Sprintf(" (%s)", d.ItemNote)
				}
				b.WriteString(line + "\n")
			}
		}
		b.WriteString("\n")
	}

	if len(stats.Orders) > 0 {
		b.WriteString("--- Theo người ---\n")
		for _, order := range stats.Orders {
			username := order.Account.DisplayName
			if username == "" {
				username = order.Account.Username
			}
			paid := "chưa thanh toán"
			if order.IsPaid {
				paid = "đã thanh toán"
			}
			b.WriteString(fmt.Sprintf("%s — %s (%s)\n", username, FormatTWD(order.Total), paid))
			for _, item := range order.Items {
				line := fmt.Sprintf("  %s x%d = %s", item.Name, item.Quantity, FormatTWD(item.Price*float64(item.Quantity)))
				if item.Note != "" {
					line += fmt.Sprintf(" (%s)", item.Note)
				}
				b.WriteString(line + "\n")
			}
			if order.Note != "" {
				b.WriteString(fmt.Sprintf("  Ghi chú: %s\n", order.Note))
			}
		}
	}

	return b.String()
}

// ByUserRows trải phẳng thống kê thành từng dòng (đơn × món),
// giữ nguyên thứ tự duyệt đơn rồi đến món.
func ByUserRows(stats model.EventStatistics) []model.ByUserRow {
	rows := []model.ByUserRow{}
	for _, order := range stats.Orders {
		username := order.Account.DisplayName
		if username == "" {
			username = order.Account.Username
		}
		for _, item := range order.Items {
			rows = append(rows, model.ByUserRow{
				IsPaid:   order.IsPaid,
				Username: username,
				Name:     item.Name,
				Price:    item.Price,
				Quantity: item.Quantity,
				Note:     item.Note,
			})
		}
	}
	return rows
}

// ByItemRows gộp các dòng ByUserRows theo tên món; note rỗng bị bỏ qua,
// danh sách items giữ lại cho phần drill-down trên UI.
func ByItemRows(stats model.EventStatistics) []model.ByItemRow {
	rows := []model.ByItemRow{}
	index := make(map[string]int)

	for _, r := range ByUserRows(stats) {
		if idx, ok := index[r.Name]; ok {
			row := &rows[idx]
			row.Quantity += r.Quantity
			if r.Note != "" {
				row.Notes = append(row.Notes, r.Note)
			}
			row.Items = append(row.Items, r)
		} else {
			notes := []string{}
			if r.Note != "" {
				notes = append(notes, r.Note)
			}
			index[r.Name] = len(rows)
			rows = append(rows, model.ByItemRow{
				Name:     r.Name,
				Price:    r.Price,
				Quantity: r.Quantity,
				Notes:    notes,
				Items:    []model.ByUserRow{r},
			})
		}
	}
	return rows
}
