package model

type Menu struct {
	DTO
	ShopId uint   `gorm:"not null;index" json:"shopId"`
	Name   string `gorm:"not null" validate:"required,min=1,max=100" json:"name"`
	Active bool   `gorm:"not null;default:true" json:"active"`

	Shop       *Shop      `gorm:"foreignKey:ShopId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"shop,omitempty"`
	Categories []Category `gorm:"foreignKey:MenuId" json:"categories,omitempty"`
}

type Category struct {
	DTO
	MenuId    uint   `gorm:"not null;index" json:"menuId"`
	Name      string `gorm:"not null" validate:"required,min=1,max=100" json:"name"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`

	Items []MenuItem `gorm:"foreignKey:CategoryId" json:"items,omitempty"`
}

type MenuItem struct {
	DTO
	CategoryId uint    `gorm:"not null;index" json:"categoryId"`
	Name       string  `gorm:"not null" validate:"required,min=1,max=100" json:"name"`
	Price      float64 `validate:"gte=0" json:"price"`
	ImageUrl   *string `json:"imageUrl"`
	Active     bool    `gorm:"not null;default:true" json:"active"`
}

type CreateMenuInput struct {
	ShopId uint   `validate:"required" json:"shopId"`
	Name   string `validate:"required,min=1,max=100" json:"name"`
}

type CreateCategoryInput struct {
	MenuId    uint   `validate:"required" json:"menuId"`
	Name      string `validate:"required,min=1,max=100" json:"name"`
	SortOrder int    `json:"sortOrder"`
}

type CreateMenuItemInput struct {
	CategoryId uint    `validate:"required" json:"categoryId"`
	Name       string  `validate:"required,min=1,max=100" json:"name"`
	Price      float64 `validate:"gte=0" json:"price"`
}

type EditMenuItemInput struct {
	Name   *string  `json:"name,omitempty"`
	Price  *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Active *bool    `json:"active,omitempty"`
}
