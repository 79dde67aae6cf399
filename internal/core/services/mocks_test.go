package services_test

import (
	"context"

	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/adapters/persistence/repositories"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteWithOwned(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) SearchDonors(ctx context.Context, filter repositories.DonorFilter) ([]*models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockBloodRequestRepository is a testify mock of repositories.BloodRequestRepository.
type MockBloodRequestRepository struct {
	mock.Mock
}

func (m *MockBloodRequestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockBloodRequestRepository) GetByID(ctx context.Context, id uint) (*models.BloodRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepository) Update(ctx context.Context, request *models.BloodRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockBloodRequestRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBloodRequestRepository) ListOpen(ctx context.Context, urgentOnly bool, limit int) ([]*models.BloodRequest, error) {
	args := m.Called(ctx, urgentOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepository) ListByRequester(ctx context.Context, requesterID uint) ([]*models.BloodRequest, error) {
	args := m.Called(ctx, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepository) ListAll(ctx context.Context, offset, limit int) ([]*models.BloodRequest, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.BloodRequest), args.Get(1).(int64), args.Error(2)
}

// MockDonorReportRepository is a testify mock of repositories.DonorReportRepository.
type MockDonorReportRepository struct {
	mock.Mock
}

func (m *MockDonorReportRepository) Create(ctx context.Context, report *models.DonorReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockDonorReportRepository) GetByID(ctx context.Context, id uint) (*models.DonorReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DonorReport), args.Error(1)
}

func (m *MockDonorReportRepository) Update(ctx context.Context, report *models.DonorReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockDonorReportRepository) List(ctx context.Context) ([]*models.DonorReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.DonorReport), args.Error(1)
}

// MockRefreshTokenRepository is a testify mock of repositories.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Revoke(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
