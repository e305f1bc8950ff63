package models

import "time"

// Token opaco de sessão. Um token ativo por usuário;
// login repetido reutiliza o token existente.
type AuthToken struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Key    string `gorm:"size:64;uniqueIndex;not null" json:"key"`
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
