package model

// Các struct dẫn xuất cho thống kê sự kiện — không lưu DB.

type ItemDetail struct {
	Username  string  `json:"username"`
	Quantity  int     `json:"quantity"`
	OrderNote string  `json:"orderNote"`
	ItemNote  string  `json:"itemNote"`
	Price     float64 `json:"price"`
}

type AggregatedItemSummary struct {
	Name       string       `json:"name"`
	Price      float64      `json:"price"` // đơn giá thấy lần đầu (xem GroupByPrice)
	Quantity   int          `json:"quantity"`
	Total      float64      `json:"total"`
	OrderCount int          `json:"orderCount"`
	Details    []ItemDetail `json:"details"`
}

type EventStatistics struct {
	Shop             *Shop                   `json:"shop,omitempty"`
	TotalOrders      int                     `json:"totalOrders"`
	TotalAmount      float64                 `json:"totalAmount"`
	ParticipantCount int                     `json:"participantCount"`
	PaidCount        int                     `json:"paidCount"`
	UnpaidCount      int                     `json:"unpaidCount"`
	Orders           []Order                 `json:"orders"`
	ItemSummary      []AggregatedItemSummary `json:"itemSummary"`
}

// ByUserRow: một dòng cho mỗi cặp (đơn × món), dùng cho bảng "theo người".
type ByUserRow struct {
	IsPaid   bool    `json:"isPaid"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note"`
}

// ByItemRow: một dòng cho mỗi món đã gộp, dùng cho bảng "theo món".
type ByItemRow struct {
	Name     string      `json:"name"`
	Price    float64     `json:"price"`
	Quantity int         `json:"quantity"`
	Notes    []string    `json:"notes"`
	Items    []ByUserRow `json:"items"`
}
