package services_test

import (
	"context"
	"testing"

	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func fileReportInput() *services.FileReportInput {
	return &services.FileReportInput{
		ReportType:    models.ReportTypeUnavailable,
		ReportDetails: "Number rings out, donor never answers",
	}
}

// TestFileReportAnonymous verifies a report without reporter identity is
// accepted.
func TestFileReportAnonymous(t *testing.T) {
	reportRepo := new(MockDonorReportRepository)
	userRepo := new(MockUserRepository)
	svc := services.NewReportService(reportRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, uint(5)).Return(&models.User{ID: 5, IsDonor: true}, nil)

	var created *models.DonorReport
	reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.DonorReport")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.DonorReport)
		}).Return(nil)

	result, err := svc.FileReport(context.Background(), 5, fileReportInput())

	assert.NoError(t, err)
	assert.Equal(t, uint(5), created.DonorID)
	assert.Empty(t, created.ReporterName)
	assert.False(t, result.IsResolved)
}

// TestFileReportMissingDetails verifies details are mandatory.
func TestFileReportMissingDetails(t *testing.T) {
	reportRepo := new(MockDonorReportRepository)
	svc := services.NewReportService(reportRepo, new(MockUserRepository))

	input := fileReportInput()
	input.ReportDetails = ""

	_, err := svc.FileReport(context.Background(), 5, input)

	assert.ErrorIs(t, err, services.ErrMissingDetails)
	reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestFileReportInvalidCategory verifies unknown report types are refused.
func TestFileReportInvalidCategory(t *testing.T) {
	svc := services.NewReportService(new(MockDonorReportRepository), new(MockUserRepository))

	input := fileReportInput()
	input.ReportType = "spam"

	_, err := svc.FileReport(context.Background(), 5, input)

	assert.ErrorIs(t, err, services.ErrInvalidCategory)
}

// TestFileReportUnknownDonor verifies reports against nonexistent users fail.
func TestFileReportUnknownDonor(t *testing.T) {
	reportRepo := new(MockDonorReportRepository)
	userRepo := new(MockUserRepository)
	svc := services.NewReportService(reportRepo, userRepo)

	userRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.FileReport(context.Background(), 404, fileReportInput())

	assert.ErrorIs(t, err, services.ErrDonorNotFound)
	reportRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestResolveReport verifies resolution flips the flag and persists.
func TestResolveReport(t *testing.T) {
	reportRepo := new(MockDonorReportRepository)
	svc := services.NewReportService(reportRepo, new(MockUserRepository))

	report := &models.DonorReport{ID: 2, DonorID: 5, ReportType: models.ReportTypeOther, ReportDetails: "details"}
	reportRepo.On("GetByID", mock.Anything, uint(2)).Return(report, nil)
	reportRepo.On("Update", mock.Anything, report).Return(nil)

	result, err := svc.ResolveReport(context.Background(), 2)

	assert.NoError(t, err)
	assert.True(t, result.IsResolved)
	reportRepo.AssertExpectations(t)
}

// TestResolveReportIdempotent verifies resolving an already resolved report is
// a no-op success without a second write.
func TestResolveReportIdempotent(t *testing.T) {
	reportRepo := new(MockDonorReportRepository)
	svc := services.NewReportService(reportRepo, new(MockUserRepository))

	report := &models.DonorReport{ID: 2, IsResolved: true}
	reportRepo.On("GetByID", mock.Anything, uint(2)).Return(report, nil)

	result, err := svc.ResolveReport(context.Background(), 2)

	assert.NoError(t, err)
	assert.True(t, result.IsResolved)
	reportRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestResolveReportMissing verifies an unknown report id reports not found.
func TestResolveReportMissing(t *testing.T) {
	reportRepo := new(MockDonorReportRepository)
	svc := services.NewReportService(reportRepo, new(MockUserRepository))

	reportRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ResolveReport(context.Background(), 404)

	assert.ErrorIs(t, err, services.ErrReportNotFound)
}
