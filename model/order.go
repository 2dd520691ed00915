package model

import "time"

type Order struct {
	DTO
	EventId   uint    `gorm:"not null;index:idx_event_account,unique" json:"eventId"`
	AccountId uint    `gorm:"not null;index:idx_event_account,unique" json:"accountId"`
	Total     float64 `json:"total"` // luôn tính lại từ items, không tin client
	Note      string  `json:"note"`

	IsPaid     bool       `gorm:"not null;default:false" json:"isPaid"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
	PaidMethod *string    `gorm:"size:20" json:"paidMethod,omitempty"`

	Account Account     `gorm:"foreignKey:AccountId" json:"account"`
	Items   []OrderItem `gorm:"foreignKey:OrderId;constraint:OnDelete:CASCADE" json:"items"`
}

type Orders []Order

// OrderItem chụp lại name/price tại thời điểm đặt — sửa menu sau này
// không làm thay đổi đơn đã đặt.
type OrderItem struct {
	DTO
	OrderId    uint    `gorm:"not null;index" json:"orderId"`
	Name       string  `gorm:"not null" json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	Note       string  `json:"note"`
	MenuItemId *uint   `json:"menuItemId,omitempty"` // chỉ để truy vết, không join
}

type OrderItemInput struct {
	Name       string  `validate:"required,min=1,max=100" json:"name"`
	Price      float64 `validate:"gte=0" json:"price"`
	Quantity   int     `validate:"required,gte=1" json:"quantity"`
	Note       string  `json:"note"`
	MenuItemId *uint   `json:"menuItemId"`
}

type SubmitOrderInput struct {
	Note  string           `json:"note"`
	Items []OrderItemInput `validate:"required,min=1,dive" json:"items"`
}

type MarkPaidInput struct {
	IsPaid     bool    `json:"isPaid"`
	PaidMethod *string `json:"paidMethod"`
}
