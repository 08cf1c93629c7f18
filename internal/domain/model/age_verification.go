package model

import "time"

// 年齢確認の方法
type VerificationMethod string

const (
	//生年月日入力による確認
	VerificationMethodBirthdate VerificationMethod = "birthdate"
	//チェックボックスによる自己申告
	VerificationMethodCheckbox VerificationMethod = "checkbox"
)

// 年齢確認の監査レコード（規制対応の証跡）。
// 成功・失敗どちらも1回の試行につき1件追記する。更新・削除はしない。
type AgeVerification struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//ログインしていない場合はnull
	UserID *int64 `gorm:"index" json:"user_id,omitempty"`

	//匿名セッションの識別子
	SessionID string `gorm:"type:varchar(64);index" json:"-"`

	Method VerificationMethod `gorm:"type:varchar(50);not null" json:"method"`

	VerifiedAt time.Time `gorm:"not null" json:"verified_at"`

	//IPv4/IPv6両対応
	IPAddress string `gorm:"type:varchar(45)" json:"ip_address"`

	UserAgent string `gorm:"type:text" json:"user_agent"`

	//判定結果（falseも記録する）
	IsVerified bool `gorm:"not null" json:"is_verified"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
