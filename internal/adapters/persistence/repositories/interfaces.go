package repositories

import (
	"context"

	"tabaro3-api/internal/adapters/persistence/models"
)

// DonorFilter holds the optional donor search filters. A nil/empty field
// means the filter is not applied.
type DonorFilter struct {
	BloodType string
	Region    string
	SubRegion string
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// DeleteWithOwned removes the user, their blood requests and the
	// reports filed against them in a single transaction.
	DeleteWithOwned(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	SearchDonors(ctx context.Context, filter DonorFilter) ([]*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// BloodRequestRepository defines blood request repository interface
type BloodRequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) error
	GetByID(ctx context.Context, id uint) (*models.BloodRequest, error)
	Update(ctx context.Context, request *models.BloodRequest) error
	Delete(ctx context.Context, id uint) error
	// ListOpen returns unfulfilled requests, newest first. limit <= 0
	// means no cap. urgentOnly additionally filters is_urgent.
	ListOpen(ctx context.Context, urgentOnly bool, limit int) ([]*models.BloodRequest, error)
	ListByRequester(ctx context.Context, requesterID uint) ([]*models.BloodRequest, error)
	ListAll(ctx context.Context, offset, limit int) ([]*models.BloodRequest, int64, error)
}

// DonorReportRepository defines donor report repository interface
type DonorReportRepository interface {
	Create(ctx context.Context, report *models.DonorReport) error
	GetByID(ctx context.Context, id uint) (*models.DonorReport, error)
	Update(ctx context.Context, report *models.DonorReport) error
	List(ctx context.Context) ([]*models.DonorReport, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}
