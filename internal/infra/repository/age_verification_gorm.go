package repository

import (
	"context"
	"errors"

	"vapestore/internal/domain/model"
	repo "vapestore/internal/repository"

	"gorm.io/gorm"
)

type ageVerificationGormRepository struct {
	db *gorm.DB
}

func NewAgeVerificationGormRepository(db *gorm.DB) repo.AgeVerificationRepository {
	return &ageVerificationGormRepository{db: db}
}

// 追記のみ。失敗した試行もそのまま残す。
func (r *ageVerificationGormRepository) Create(ctx context.Context, v model.AgeVerification) error {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return err
	}
	return nil
}

func (r *ageVerificationGormRepository) LatestBySession(ctx context.Context, sessionID string) (model.AgeVerification, error) {
	var v model.AgeVerification

	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id desc").
		First(&v).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.AgeVerification{}, repo.ErrNotFound
	}
	if err != nil {
		return model.AgeVerification{}, err
	}
	return v, nil
}

func (r *ageVerificationGormRepository) List(ctx context.Context, f repo.AgeVerificationFilter) ([]model.AgeVerification, error) {
	q := r.db.WithContext(ctx).Model(&model.AgeVerification{})

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.SessionID != nil {
		q = q.Where("session_id = ?", *f.SessionID)
	}
	if f.Method != nil {
		q = q.Where("method = ?", *f.Method)
	}
	if f.IsVerified != nil {
		q = q.Where("is_verified = ?", *f.IsVerified)
	}
	if f.VerifiedFrom != nil {
		q = q.Where("verified_at >= ?", *f.VerifiedFrom)
	}
	if f.VerifiedTo != nil {
		q = q.Where("verified_at <= ?", *f.VerifiedTo)
	}

	//新しい順
	q = q.Order("id DESC")

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	q = q.Limit(limit).Offset(f.Offset)

	var rows []model.AgeVerification
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
