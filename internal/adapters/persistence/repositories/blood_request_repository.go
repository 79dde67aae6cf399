package repositories

import (
	"context"

	"tabaro3-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// bloodRequestRepository implements BloodRequestRepository interface
type bloodRequestRepository struct {
	db *gorm.DB
}

// NewBloodRequestRepository creates a new blood request repository
func NewBloodRequestRepository(db *gorm.DB) BloodRequestRepository {
	return &bloodRequestRepository{db: db}
}

// Create creates a new blood request
func (r *bloodRequestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a blood request by ID with its requester
func (r *bloodRequestRepository) GetByID(ctx context.Context, id uint) (*models.BloodRequest, error) {
	var request models.BloodRequest
	err := r.db.WithContext(ctx).
		Preload("Requester").
		First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Update updates a blood request
func (r *bloodRequestRepository) Update(ctx context.Context, request *models.BloodRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

// Delete permanently removes a blood request
func (r *bloodRequestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.BloodRequest{}, id).Error
}

// ListOpen lists unfulfilled requests, newest first
func (r *bloodRequestRepository) ListOpen(ctx context.Context, urgentOnly bool, limit int) ([]*models.BloodRequest, error) {
	query := r.db.WithContext(ctx).
		Preload("Requester").
		Where("is_fulfilled = ?", false)

	if urgentOnly {
		query = query.Where("is_urgent = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var requests []*models.BloodRequest
	err := query.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// ListByRequester lists a user's own requests, newest first
func (r *bloodRequestRepository) ListByRequester(ctx context.Context, requesterID uint) ([]*models.BloodRequest, error) {
	var requests []*models.BloodRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// ListAll lists every request including fulfilled ones, with pagination
func (r *bloodRequestRepository) ListAll(ctx context.Context, offset, limit int) ([]*models.BloodRequest, int64, error) {
	var requests []*models.BloodRequest
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.BloodRequest{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Requester").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error

	return requests, total, err
}
