package helper

import (
	"fmt"

	"lunch_manager/model"
)

// AggregateOptions điều khiển khoá gộp món khi thống kê.
// Mặc định gộp theo tên món; GroupByPrice tách thêm theo đơn giá
// cho trường hợp hai món trùng tên nhưng khác giá.
type AggregateOptions struct {
	GroupByPrice bool
}

func itemKey(item model.OrderItem, opts AggregateOptions) string {
	if opts.GroupByPrice {
		return fmt.Sprintf("%s|%.2f", item.Name, item.Price)
	}
	return item.Name
}

// Aggregate tính thống kê cho một sự kiện từ danh sách đơn đã nạp sẵn items + account.
// Thuần tính toán: không query, không sửa input. Dữ liệu thiếu (account rỗng,
// note rỗng) được thay bằng giá trị mặc định thay vì panic.
func Aggregate(orders []model.Order, opts AggregateOptions) model.EventStatistics {
	stats := model.EventStatistics{
		TotalOrders: len(orders),
		Orders:      orders,
		ItemSummary: []model.AggregatedItemSummary{},
	}

	participants := make(map[uint]bool)
	// map khoá → vị trí trong ItemSummary, giữ thứ tự món xuất hiện lần đầu
	summaryIndex := make(map[string]int)

	for _, order := range orders {
		stats.TotalAmount += order.Total
		if order.IsPaid {
			stats.PaidCount++
		} else {
			stats.UnpaidCount++
		}
		participants[order.AccountId] = true

		username := order.Account.DisplayName
		if username == "" {
			username = order.Account.Username
		}

		// OrderCount đếm số đơn chứa món, không đếm số dòng
		seenInOrder := make(map[string]bool)

		for _, item := range order.Items {
			quantity := item.Quantity
			if quantity < 0 {
				quantity = 0
			}

			detail := model.ItemDetail{
				Username:  username,
				Quantity:  quantity,
				OrderNote: order.Note,
				ItemNote:  item.Note,
				Price:     item.Price,
			}

			key := itemKey(item, opts)
			if idx, ok := summaryIndex[key]; ok {
				summary := &stats.ItemSummary[idx]
				summary.Quantity += quantity
				summary.Total += float64(quantity) * item.Price
				if !seenInOrder[key] {
					summary.OrderCount++
				}
				summary.Details = append(summary.Details, detail)
			} else {
				summaryIndex[key] = len(stats.ItemSummary)
				stats.ItemSummary = append(stats.ItemSummary, model.AggregatedItemSummary{
					Name:       item.Name,
					Price:      item.Price, // đơn giá thấy lần đầu
					Quantity:   quantity,
					Total:      float64(quantity) * item.Price,
					OrderCount: 1,
					Details:    []model.ItemDetail{detail},
				})
			}
			seenInOrder[key] = true
		}
	}

	stats.ParticipantCount = len(participants)
	return stats
}
