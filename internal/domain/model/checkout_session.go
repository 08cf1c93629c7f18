package model

import "time"

// チェックアウトの段階
type CheckoutStep int

const (
	StepContactInfo      CheckoutStep = 1
	StepShippingAddress  CheckoutStep = 2
	StepReviewAndConfirm CheckoutStep = 3
)

// 配送方法
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

// 配送料（セント）
const (
	ShippingCostStandard int64 = 0
	ShippingCostExpress  int64 = 1500
)

// ShippingCostFor は配送方法に対する送料を返す。
func ShippingCostFor(m ShippingMethod) int64 {
	if m == ShippingExpress {
		return ShippingCostExpress
	}
	return ShippingCostStandard
}

// オーストラリアの州・特別地域（8つ）
var AUStates = []string{"NSW", "VIC", "QLD", "SA", "WA", "TAS", "NT", "ACT"}

const DefaultAUState = "NSW"

func IsValidAUState(s string) bool {
	for _, st := range AUStates {
		if st == s {
			return true
		}
	}
	return false
}

// チェックアウト中の下書き状態。セッションにつき1件。
// step1〜2で編集され、注文確定時にOrderへスナップショットされる。
// 戻る操作で内容は消えない。
type CheckoutSession struct {
	ID        int64        `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID string       `gorm:"type:varchar(64);not null;uniqueIndex" json:"-"`
	Step      CheckoutStep `gorm:"not null;default:1" json:"step"`

	//Step1: 連絡先
	FirstName string `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string `gorm:"type:varchar(100)" json:"last_name"`
	Email     string `gorm:"type:varchar(320)" json:"email"`
	Phone     string `gorm:"type:varchar(20)" json:"phone"`

	//Step2: 配送先住所。Stateは常に値を持つ（デフォルトNSW）
	StreetAddress string `gorm:"type:varchar(255)" json:"street_address"`
	Suburb        string `gorm:"type:varchar(100)" json:"suburb"`
	State         string `gorm:"type:varchar(10);not null;default:NSW" json:"state"`
	Postcode      string `gorm:"type:varchar(10)" json:"postcode"`

	ShippingMethod ShippingMethod `gorm:"type:varchar(20);not null;default:standard" json:"shipping_method"`

	//Step3: 同意（両方trueでないと確定できない）
	AgreeToAge   bool `gorm:"not null;default:false" json:"agree_to_age"`
	AgreeToTerms bool `gorm:"not null;default:false" json:"agree_to_terms"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// 注文に保存する住所スナップショットの形。
type ShippingAddress struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	StreetAddress string `json:"street_address"`
	Suburb        string `json:"suburb"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
}

// Address はチェックアウト下書きから住所スナップショットを作る。
func (c *CheckoutSession) Address() ShippingAddress {
	return ShippingAddress{
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		StreetAddress: c.StreetAddress,
		Suburb:        c.Suburb,
		State:         c.State,
		Postcode:      c.Postcode,
	}
}
