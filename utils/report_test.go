package utils

import (
	"strings"
	"testing"
	"time"

	"lunch_manager/model"
)

func TestFormatTWD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "NT$0"},
		{5, "NT$5"},
		{120, "NT$120"},
		{1000, "NT$1,000"},
		{1234567, "NT$1,234,567"},
		{999.4, "NT$999"},
		{999.5, "NT$1,000"},
		{-1500, "-NT$1,500"},
	}
	for _, tt := range tests {
		if got := FormatTWD(tt.amount); got != tt.want {
			t.Errorf("FormatTWD(%v) = %q, muốn %q", tt.amount, got, tt.want)
		}
	}
}

func reportStats() (model.Event, model.EventStatistics) {
	event := model.Event{
		Title:         "Trưa thứ sáu",
		Slug:          "trua-thu-sau",
		OrderDeadline: time.Date(2026, 3, 6, 11, 0, 0, 0, time.Local),
	}

	orders := []model.Order{
		{
			Total:   180,
			IsPaid:  true,
			Account: model.Account{Username: "an", DisplayName: "Anh An"},
			Items: []model.OrderItem{
				{Name: "Bún bò", Price: 120, Quantity: 1},
				{Name: "Trà sữa", Price: 60, Quantity: 1, Note: "ít đường"},
			},
		},
		{
			Total:   120,
			Note:    "giao tầng 3",
			Account: model.Account{Username: "binh"},
			Items: []model.OrderItem{
				{Name: "Bún bò", Price: 120, Quantity: 1},
			},
		},
	}

	stats := model.EventStatistics{
		TotalOrders:      2,
		TotalAmount:      300,
		ParticipantCount: 2,
		PaidCount:        1,
		UnpaidCount:      1,
		Orders:           orders,
		ItemSummary: []model.AggregatedItemSummary{
			{
				Name: "Bún bò", Price: 120, Quantity: 2, Total: 240, OrderCount: 2,
				Details: []model.ItemDetail{
					{Username: "Anh An", Quantity: 1},
					{Username: "binh", Quantity: 1},
				},
			},
			{
				Name: "Trà sữa", Price: 60, Quantity: 1, Total: 60, OrderCount: 1,
				Details: []model.ItemDetail{
					{Username: "Anh An", Quantity: 1, ItemNote: "ít đường"},
				},
			},
		},
	}
	return event, stats
}

func TestBuildReportTextSections(t *testing.T) {
	event, stats := reportStats()
	stats.Shop = &model.Shop{Name: "Quán 79", Phone: "0912345678", Address: "79 Lê Lợi"}

	report := BuildReportText(event, stats)

	for _, want := range []string{
		"=== Trưa thứ sáu ===",
		"Hạn chốt đơn: 2026-03-06 11:00",
		"--- Quán ---",
		"Tên: Quán 79",
		"--- Tổng quan ---",
		"Số đơn: 2",
		"Tổng tiền: NT$300",
		"--- Theo món ---",
		"Bún bò x2 = NT$240",
		"  - Anh An x1",
		"(ít đường)",
		"--- Theo người ---",
		"Anh An — NT$180 (đã thanh toán)",
		"binh — NT$120 (chưa thanh toán)",
		"  Ghi chú: giao tầng 3",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report thiếu %q\n%s", want, report)
		}
	}

	// Thứ tự section cố định
	shopIdx := strings.Index(report, "--- Quán ---")
	overviewIdx := strings.Index(report, "--- Tổng quan ---")
	byItemIdx := strings.Index(report, "--- Theo món ---")
	byUserIdx := strings.Index(report, "--- Theo người ---")
	if !(shopIdx < overviewIdx && overviewIdx < byItemIdx && byItemIdx < byUserIdx) {
		t.Error("thứ tự section sai")
	}
}

func TestBuildReportTextWithoutShopAndOrders(t *testing.T) {
	event, _ := reportStats()
	empty := model.EventStatistics{ItemSummary: []model.AggregatedItemSummary{}}

	report := BuildReportText(event, empty)

	if strings.Contains(report, "--- Quán ---") {
		t.Error("không có shop thì không in section Quán")
	}
	if strings.Contains(report, "--- Theo món ---") || strings.Contains(report, "--- Theo người ---") {
		t.Error("sự kiện chưa có đơn thì bỏ section dữ liệu")
	}
	if !strings.Contains(report, "Số đơn: 0") {
		t.Error("section tổng quan luôn phải có")
	}
}

func TestByUserRows(t *testing.T) {
	_, stats := reportStats()
	rows := ByUserRows(stats)

	if len(rows) != 3 {
		t.Fatalf("có %d dòng, muốn 3 (đơn × món)", len(rows))
	}
	if rows[0].Username != "Anh An" || rows[0].Name != "Bún bò" {
		t.Errorf("dòng đầu = %+v, thứ tự phải theo đơn rồi đến món", rows[0])
	}
	if rows[2].Username != "binh" || rows[2].IsPaid {
		t.Errorf("dòng cuối = %+v, muốn đơn chưa thanh toán của binh", rows[2])
	}
}

func TestByItemRows(t *testing.T) {
	_, stats := reportStats()
	rows := ByItemRows(stats)

	if len(rows) != 2 {
		t.Fatalf("có %d dòng, muốn 2", len(rows))
	}

	bunbo := rows[0]
	if bunbo.Name != "Bún bò" || bunbo.Quantity != 2 {
		t.Errorf("Bún bò = %+v, muốn quantity 2", bunbo)
	}
	if len(bunbo.Items) != 2 {
		t.Errorf("Bún bò giữ %d dòng gốc, muốn 2", len(bunbo.Items))
	}
	// Note rỗng không được gom vào Notes
	if len(bunbo.Notes) != 0 {
		t.Errorf("Bún bò Notes = %v, muốn rỗng", bunbo.Notes)
	}

	trasua := rows[1]
	if len(trasua.Notes) != 1 || trasua.Notes[0] != "ít đường" {
		t.Errorf("Trà sữa Notes = %v, muốn [ít đường]", trasua.Notes)
	}
}
