package model

type Shop struct {
	DTO
	Name    string  `gorm:"not null" validate:"required,min=1,max=100" json:"name"`
	Slug    string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	LogoUrl *string `json:"logoUrl"`
	Note    string  `json:"note"`
	Active  bool    `gorm:"not null;default:true" json:"active"`

	Menus []Menu `gorm:"foreignKey:ShopId" json:"menus,omitempty"`
}

type Shops []Shop

type CreateShopInput struct {
	Name    string `validate:"required,min=1,max=100" json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

type EditShopInput struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Note    *string `json:"note,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

type FilterShop struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Active    *bool  `query:"active"`
}
