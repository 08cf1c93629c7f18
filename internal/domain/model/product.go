package model

import (
	"time"

	"gorm.io/gorm"
)

// 商品（電子タバコ）。
// NicotineContentはラベル文字列（"18mg" と "5%" が混在。単位は揃えない仕様）
type Product struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Brand           string         `gorm:"type:varchar(100);not null;index" json:"brand"`
	Category        string         `gorm:"type:varchar(100);index" json:"category"`
	Flavor          string         `gorm:"type:varchar(100);not null" json:"flavor"`
	NicotineContent string         `gorm:"type:varchar(50);not null" json:"nicotine_content"`
	Puffs           int64          `gorm:"not null;default:0" json:"puffs"`
	Price           int64          `gorm:"not null" json:"price"` // AUDセント
	Description     string         `gorm:"type:text" json:"description"`
	ImageURL        string         `gorm:"type:varchar(500)" json:"image_url"`
	SKU             string         `gorm:"type:varchar(100);uniqueIndex" json:"sku"`
	Stock           int64          `gorm:"not null;default:0" json:"stock"`
	IsActive        bool           `gorm:"not null;default:false" json:"is_active"`
	CreatedAt       time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
