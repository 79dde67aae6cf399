package repositories

import (
	"context"

	"tabaro3-api/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// donorReportRepository implements DonorReportRepository interface
type donorReportRepository struct {
	db *gorm.DB
}

// NewDonorReportRepository creates a new donor report repository
func NewDonorReportRepository(db *gorm.DB) DonorReportRepository {
	return &donorReportRepository{db: db}
}

// Create creates a new donor report
func (r *donorReportRepository) Create(ctx context.Context, report *models.DonorReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// GetByID gets a report by ID
func (r *donorReportRepository) GetByID(ctx context.Context, id uint) (*models.DonorReport, error) {
	var report models.DonorReport
	err := r.db.WithContext(ctx).First(&report, id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// Update updates a report
func (r *donorReportRepository) Update(ctx context.Context, report *models.DonorReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// List lists all reports with their donors, newest first
func (r *donorReportRepository) List(ctx context.Context) ([]*models.DonorReport, error) {
	var reports []*models.DonorReport
	err := r.db.WithContext(ctx).
		Preload("Donor").
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
