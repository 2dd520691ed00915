package model

import "time"

type Event struct {
	DTO
	PublicCode    string     `gorm:"size:40;uniqueIndex" json:"publicCode"`
	Slug          string     `gorm:"uniqueIndex;size:140" json:"slug"`
	Title         string     `gorm:"not null" validate:"required,min=1,max=120" json:"title"`
	Description   string     `json:"description"`
	OrderDeadline time.Time  `validate:"required" json:"orderDeadline"`
	IsActive      bool       `gorm:"not null;default:true" json:"isActive"`
	ClosedAt      *time.Time `json:"closedAt,omitempty"`
	OrganizerId   uint       `gorm:"not null;index" json:"organizerId"`
	ShopId        *uint      `json:"shopId,omitempty"`
	MenuId        *uint      `json:"menuId,omitempty"`

	Organizer Account `gorm:"foreignKey:OrganizerId" json:"organizer"`
	Shop      *Shop   `gorm:"foreignKey:ShopId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"shop,omitempty"`
	Menu      *Menu   `gorm:"foreignKey:MenuId;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"menu,omitempty"`
	Orders    []Order `gorm:"foreignKey:EventId" json:"orders,omitempty"`
}

type Events []Event

type CreateEventInput struct {
	Title         string    `validate:"required,min=1,max=120" json:"title"`
	Description   string    `json:"description"`
	OrderDeadline time.Time `validate:"required" json:"orderDeadline"`
	ShopId        *uint     `json:"shopId"`
	MenuId        *uint     `json:"menuId"`
}

type EditEventInput struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	OrderDeadline *time.Time `json:"orderDeadline,omitempty"`
	ShopId        *uint      `json:"shopId,omitempty"`
	MenuId        *uint      `json:"menuId,omitempty"`
}

type FilterEvent struct {
	Pagination
	SearchKey string `query:"searchKey"`
	IsActive  *bool  `query:"isActive"`
}
