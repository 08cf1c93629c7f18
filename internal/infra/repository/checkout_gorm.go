package repository

import (
	"context"
	"errors"
	"time"

	"vapestore/internal/domain/model"
	repo "vapestore/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckoutGormRepository struct {
	db *gorm.DB
}

// DI
func NewCheckoutGormRepository(db *gorm.DB) *CheckoutGormRepository {
	return &CheckoutGormRepository{db: db}
}

// セッションの下書きを取得し、無ければStep1で作成
func (r *CheckoutGormRepository) GetOrCreateBySession(ctx context.Context, sessionID string) (model.CheckoutSession, error) {
	var cs model.CheckoutSession

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ?", sessionID).
			First(&cs).Error

		if findErr == nil {
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		now := time.Now()
		newCS := model.CheckoutSession{
			SessionID:      sessionID,
			Step:           model.StepContactInfo,
			State:          model.DefaultAUState,
			ShippingMethod: model.ShippingStandard,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if err := tx.Create(&newCS).Error; err != nil {
			//同時作成に負けたらもう一度読む
			retryErr := tx.Where("session_id = ?", sessionID).First(&cs).Error
			if retryErr == nil {
				return nil
			}
			return err
		}

		cs = newCS
		return nil
	})

	if err != nil {
		return model.CheckoutSession{}, err
	}
	return cs, nil
}

func (r *CheckoutGormRepository) FindBySession(ctx context.Context, sessionID string) (model.CheckoutSession, error) {
	var cs model.CheckoutSession

	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&cs).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CheckoutSession{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CheckoutSession{}, err
	}
	return cs, nil
}

// 下書きを丸ごと保存（stepや同意フラグも含む）
func (r *CheckoutGormRepository) Save(ctx context.Context, cs model.CheckoutSession) error {
	cs.UpdatedAt = time.Now()

	res := r.db.WithContext(ctx).
		Model(&model.CheckoutSession{}).
		Where("id = ?", cs.ID).
		Updates(map[string]interface{}{
			"step":            cs.Step,
			"first_name":      cs.FirstName,
			"last_name":       cs.LastName,
			"email":           cs.Email,
			"phone":           cs.Phone,
			"street_address":  cs.StreetAddress,
			"suburb":          cs.Suburb,
			"state":           cs.State,
			"postcode":        cs.Postcode,
			"shipping_method": cs.ShippingMethod,
			"agree_to_age":    cs.AgreeToAge,
			"agree_to_terms":  cs.AgreeToTerms,
			"updated_at":      cs.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CheckoutGormRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	res := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&model.CheckoutSession{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
