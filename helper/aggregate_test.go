package helper

import (
	"reflect"
	"testing"

	"lunch_manager/model"
)

func order(accountId uint, username string, isPaid bool, note string, items ...model.OrderItem) model.Order {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return model.Order{
		AccountId: accountId,
		Total:     total,
		Note:      note,
		IsPaid:    isPaid,
		Account:   model.Account{Username: username},
		Items:     items,
	}
}

func item(name string, price float64, quantity int, note string) model.OrderItem {
	return model.OrderItem{Name: name, Price: price, Quantity: quantity, Note: note}
}

func sampleOrders() []model.Order {
	return []model.Order{
		order(1, "an", true, "",
			item("Bún bò", 120, 1, ""),
			item("Trà sữa", 60, 2, "ít đường"),
		),
		order(2, "binh", false, "giao tầng 3",
			item("Bún bò", 120, 2, ""),
		),
		order(3, "chi", false, "",
			item("Trà sữa", 60, 1, ""),
			item("Bún bò", 150, 1, "size lớn"),
		),
	}
}

func TestAggregateTotals(t *testing.T) {
	stats := Aggregate(sampleOrders(), AggregateOptions{})

	if stats.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, muốn 3", stats.TotalOrders)
	}
	if stats.TotalAmount != 240+240+210 {
		t.Errorf("TotalAmount = %v, muốn %v", stats.TotalAmount, 240.0+240.0+210.0)
	}
	if stats.ParticipantCount != 3 {
		t.Errorf("ParticipantCount = %d, muốn 3", stats.ParticipantCount)
	}
	if stats.PaidCount != 1 || stats.UnpaidCount != 2 {
		t.Errorf("Paid/Unpaid = %d/%d, muốn 1/2", stats.PaidCount, stats.UnpaidCount)
	}
	if stats.PaidCount+stats.UnpaidCount != stats.TotalOrders {
		t.Errorf("Paid + Unpaid phải bằng TotalOrders")
	}
}

func TestAggregateGroupByName(t *testing.T) {
	stats := Aggregate(sampleOrders(), AggregateOptions{})

	// Mặc định gộp theo tên: Bún bò 120 và 150 chung một dòng
	if len(stats.ItemSummary) != 2 {
		t.Fatalf("ItemSummary có %d dòng, muốn 2", len(stats.ItemSummary))
	}

	bunbo := stats.ItemSummary[0]
	if bunbo.Name != "Bún bò" {
		t.Fatalf("dòng đầu là %q, muốn Bún bò (thứ tự xuất hiện)", bunbo.Name)
	}
	if bunbo.Quantity != 4 {
		t.Errorf("Bún bò Quantity = %d, muốn 4", bunbo.Quantity)
	}
	if bunbo.Total != 120+240+150 {
		t.Errorf("Bún bò Total = %v, muốn %v", bunbo.Total, 120.0+240.0+150.0)
	}
	if bunbo.OrderCount != 3 {
		t.Errorf("Bún bò OrderCount = %d, muốn 3", bunbo.OrderCount)
	}
	// Đơn giá lấy lần thấy đầu tiên
	if bunbo.Price != 120 {
		t.Errorf("Bún bò Price = %v, muốn 120", bunbo.Price)
	}

	trasua := stats.ItemSummary[1]
	if trasua.Quantity != 3 || trasua.OrderCount != 2 {
		t.Errorf("Trà sữa Quantity/OrderCount = %d/%d, muốn 3/2", trasua.Quantity, trasua.OrderCount)
	}
}

func TestAggregateGroupByPrice(t *testing.T) {
	stats := Aggregate(sampleOrders(), AggregateOptions{GroupByPrice: true})

	// Tách theo giá: Bún bò 120, Trà sữa 60, Bún bò 150
	if len(stats.ItemSummary) != 3 {
		t.Fatalf("ItemSummary có %d dòng, muốn 3", len(stats.ItemSummary))
	}
	if stats.ItemSummary[0].Price != 120 || stats.ItemSummary[0].Quantity != 3 {
		t.Errorf("Bún bò 120: Quantity = %d, muốn 3", stats.ItemSummary[0].Quantity)
	}
	if stats.ItemSummary[2].Price != 150 || stats.ItemSummary[2].Quantity != 1 {
		t.Errorf("Bún bò 150: Quantity = %d, muốn 1", stats.ItemSummary[2].Quantity)
	}
}

func TestAggregateOrderCountCountsOrdersNotLines(t *testing.T) {
	// Một đơn gọi cùng món hai dòng → OrderCount vẫn là 1
	orders := []model.Order{
		order(1, "an", false, "",
			item("Cơm gà", 100, 1, "không da"),
			item("Cơm gà", 100, 2, ""),
		),
	}
	stats := Aggregate(orders, AggregateOptions{})

	if len(stats.ItemSummary) != 1 {
		t.Fatalf("ItemSummary có %d dòng, muốn 1", len(stats.ItemSummary))
	}
	if stats.ItemSummary[0].OrderCount != 1 {
		t.Errorf("OrderCount = %d, muốn 1", stats.ItemSummary[0].OrderCount)
	}
	if stats.ItemSummary[0].Quantity != 3 {
		t.Errorf("Quantity = %d, muốn 3", stats.ItemSummary[0].Quantity)
	}
}

func TestAggregateUsernameFallback(t *testing.T) {
	orders := []model.Order{
		order(1, "an", false, "", item("Phở", 90, 1, "")),
	}
	orders[0].Account.DisplayName = "Anh An"
	stats := Aggregate(orders, AggregateOptions{})
	if got := stats.ItemSummary[0].Details[0].Username; got != "Anh An" {
		t.Errorf("Username = %q, muốn DisplayName", got)
	}

	orders[0].Account.DisplayName = ""
	stats = Aggregate(orders, AggregateOptions{})
	if got := stats.ItemSummary[0].Details[0].Username; got != "an" {
		t.Errorf("Username = %q, muốn fallback về Username", got)
	}
}

func TestAggregateNegativeQuantityClamped(t *testing.T) {
	orders := []model.Order{
		order(1, "an", false, "", item("Phở", 90, -2, "")),
	}
	stats := Aggregate(orders, AggregateOptions{})
	if stats.ItemSummary[0].Quantity != 0 {
		t.Errorf("Quantity = %d, muốn 0 (số âm bị kẹp về 0)", stats.ItemSummary[0].Quantity)
	}
	if stats.ItemSummary[0].Total != 0 {
		t.Errorf("Total = %v, muốn 0", stats.ItemSummary[0].Total)
	}
}

func TestAggregateEmptyOrders(t *testing.T) {
	stats := Aggregate(nil, AggregateOptions{})
	if stats.TotalOrders != 0 || stats.TotalAmount != 0 || stats.ParticipantCount != 0 {
		t.Errorf("thống kê rỗng phải toàn 0, got %+v", stats)
	}
	if stats.ItemSummary == nil || len(stats.ItemSummary) != 0 {
		t.Errorf("ItemSummary phải là slice rỗng, không nil")
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	orders := sampleOrders()
	before := make([]model.Order, len(orders))
	copy(before, orders)

	first := Aggregate(orders, AggregateOptions{})
	second := Aggregate(orders, AggregateOptions{})

	if !reflect.DeepEqual(orders, before) {
		t.Error("Aggregate không được sửa input")
	}
	if !reflect.DeepEqual(first.ItemSummary, second.ItemSummary) {
		t.Error("gọi hai lần trên cùng input phải ra cùng kết quả")
	}
}

func TestAggregateDistinctParticipants(t *testing.T) {
	// Hai đơn cùng account (dữ liệu cũ trước khi có unique index) chỉ tính một người
	orders := []model.Order{
		order(7, "an", false, "", item("Phở", 90, 1, "")),
		order(7, "an", false, "", item("Bún", 80, 1, "")),
	}
	stats := Aggregate(orders, AggregateOptions{})
	if stats.ParticipantCount != 1 {
		t.Errorf("ParticipantCount = %d, muốn 1", stats.ParticipantCount)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, muốn 2", stats.TotalOrders)
	}
}
