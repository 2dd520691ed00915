package model

import "time"

type Account struct {
	DTO
	Username     string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	DisplayName  string `json:"displayName"`
	AccessToken  string `gorm:"-" json:"accessToken,omitempty"`
	RefreshToken string `gorm:"-" json:"refreshToken,omitempty"`
	Active       bool   `gorm:"not null;default:true" json:"active"`
	Role         string `gorm:"size:20;default:USER" json:"role"` // ADMIN MODERATOR USER
}

type Accounts []Account

type RegisterAccountInput struct {
	Username    string `validate:"required,min=3,max=50" json:"username"`
	Email       string `validate:"required,email" json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `validate:"required,min=6" json:"password"`
}

type LoginInput struct {
	Username string `validate:"required" json:"username"`
	Password string `validate:"required" json:"password"`
}

type UpdateAccountInput struct {
	DisplayName *string `json:"displayName,omitempty"`
	Active      *bool   `json:"active,omitempty"` // bật/tắt tài khoản
	Role        *string `json:"role,omitempty"`   // thay đổi quyền (rất cẩn thận)
}

type FilterAccount struct {
	Pagination
	SearchKey string  `query:"searchKey"`
	Active    *bool   `query:"active"`
	Role      *string `query:"role"`
}

type PasswordResetToken struct {
	DTO
	AccountId uint      `gorm:"not null" json:"accountId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Account   Account   `gorm:"foreignKey:AccountId" json:"account"`
}
