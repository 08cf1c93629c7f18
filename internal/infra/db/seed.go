package db

import (
	"fmt"

	"vapestore/internal/domain/model"

	"gorm.io/gorm"
)

// カタログの初期データ（4ブランド×3商品）。
// テーブルが空のときだけ投入する。
var seedProducts = []model.Product{
	{Name: "RELX Infinity Plus", Brand: "RELX", Category: "Pod Systems", Price: 4999, NicotineContent: "18mg", Flavor: "Menthol", Puffs: 2000,
		Description: "Premium rechargeable pod system with advanced heating technology. Smooth vapor production and long-lasting battery.",
		ImageURL:    "/products/relx/infinity-plus.jpg", IsActive: true},
	{Name: "RELX Super Smooth", Brand: "RELX", Category: "Pod Systems", Price: 4499, NicotineContent: "12mg", Flavor: "Strawberry", Puffs: 1800,
		Description: "Ergonomic design with ultra-smooth vapor. Perfect for all-day use with consistent flavor delivery.",
		ImageURL:    "/products/relx/super-smooth.jpg", IsActive: true},
	{Name: "RELX Phantom", Brand: "RELX", Category: "Disposables", Price: 2999, NicotineContent: "20mg", Flavor: "Mint", Puffs: 1200,
		Description: "Compact disposable vape with premium flavor options. No charging required, ready to use out of the box.",
		ImageURL:    "/products/relx/phantom.jpg", IsActive: true},
	{Name: "ALIBARBAR Ingot 9000", Brand: "ALIBARBAR", Category: "Disposables", Price: 3499, NicotineContent: "5%", Flavor: "Blackberry Dragon Fruit", Puffs: 9000,
		Description: "High-capacity disposable with 9000 puffs. Smooth draw and consistent flavor throughout the entire device.",
		ImageURL:    "/products/alibarbar/ingot-9000.webp", IsActive: true},
	{Name: "ALIBARBAR Ingot 9000 Strawberry Coconut", Brand: "ALIBARBAR", Category: "Disposables", Price: 3499, NicotineContent: "5%", Flavor: "Strawberry Coconut Watermelon", Puffs: 9000,
		Description: "Tropical flavor blend with 9000 puffs. Premium taste and long-lasting performance.",
		ImageURL:    "/products/alibarbar/ingot-9000-alt.jpg", IsActive: true},
	{Name: "ALIBARBAR Ice Adjust", Brand: "ALIBARBAR", Category: "Disposables", Price: 3299, NicotineContent: "3%", Flavor: "Mixed Fruits", Puffs: 7000,
		Description: "Adjustable cooling feature for personalized vaping experience. Perfect for those who like to customize their session.",
		ImageURL:    "/products/alibarbar/ice-adjust.jpg", IsActive: true},
	{Name: "IGET KP20000", Brand: "IGET", Category: "Disposables", Price: 4299, NicotineContent: "5%", Flavor: "Mint", Puffs: 20000,
		Description: "Ultra-high capacity disposable with 20000 puffs. Advanced mesh coil technology for superior flavor.",
		ImageURL:    "/products/iget/kp20000.webp", IsActive: true},
	{Name: "IGET Legend 4000", Brand: "IGET", Category: "Disposables", Price: 2799, NicotineContent: "5%", Flavor: "Blueberry Raspberry", Puffs: 4000,
		Description: "Reliable mid-range disposable with excellent flavor profile. Great for everyday vaping.",
		ImageURL:    "/products/iget/legend-4000.webp", IsActive: true},
	{Name: "IGET Bar Pro", Brand: "IGET", Category: "Disposables", Price: 3199, NicotineContent: "5%", Flavor: "Strawberry Watermelon", Puffs: 6000,
		Description: "Premium disposable with sleek design and consistent vapor production. Perfect for on-the-go use.",
		ImageURL:    "/products/iget/bar-pro.webp", IsActive: true},
	{Name: "BIMO Turbo 20000", Brand: "BIMO", Category: "Disposables", Price: 4599, NicotineContent: "5%", Flavor: "Watermelon Ice", Puffs: 20000,
		Description: "Rechargeable disposable with smart display screen. 20000 puffs with adjustable nicotine levels.",
		ImageURL:    "/products/bimo/turbo-20000.png", IsActive: true},
	{Name: "BIMO Turbo 20000 Full Screen", Brand: "BIMO", Category: "Disposables", Price: 4599, NicotineContent: "2%", Flavor: "Mixed Fruits", Puffs: 20000,
		Description: "Advanced model with full-screen display. Real-time puff counter and battery indicator.",
		ImageURL:    "/products/bimo/turbo-20000-full.webp", IsActive: true},
	{Name: "BIMO Crystal X 50", Brand: "BIMO", Category: "Disposables", Price: 3899, NicotineContent: "0%", Flavor: "Strawberry Kiwi", Puffs: 10000,
		Description: "Nicotine-free option with 10000 puffs. Perfect for those reducing nicotine intake while enjoying flavor.",
		ImageURL:    "/products/bimo/turbo-20000-alt.webp", IsActive: true},
}

// SeedProducts は商品テーブルが空なら初期カタログを入れる。
func SeedProducts(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := make([]model.Product, len(seedProducts))
	copy(products, seedProducts)
	for i := range products {
		products[i].SKU = fmt.Sprintf("VS-%s-%03d", products[i].Brand, i+1)
		products[i].Stock = 100
	}

	return gormDB.Create(&products).Error
}
