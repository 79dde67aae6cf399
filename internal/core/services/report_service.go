package services

import (
	"context"
	"errors"
	"log"

	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Report service errors
var (
	ErrReportNotFound  = errors.New("report not found")
	ErrDonorNotFound   = errors.New("donor not found")
	ErrMissingDetails  = errors.New("report details are required")
	ErrInvalidCategory = errors.New("invalid report type")
)

// reportTypes is the accepted report category set
var reportTypes = map[string]bool{
	models.ReportTypeFakeProfile: true,
	models.ReportTypeUnavailable: true,
	models.ReportTypeHarassment:  true,
	models.ReportTypeOther:       true,
}

// ReportService handles the abuse report workflow. Filing is open to
// anyone, including anonymous visitors; resolution is admin territory.
type ReportService struct {
	reportRepo repositories.DonorReportRepository
	userRepo   repositories.UserRepository
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo repositories.DonorReportRepository,
	userRepo repositories.UserRepository,
) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

// FileReportInput represents report submission input. Reporter name and
// contact are optional so non-members can flag bad actors.
type FileReportInput struct {
	ReportType      string `json:"report_type"`
	ReportDetails   string `json:"report_details"`
	ReporterName    string `json:"reporter_name"`
	ReporterContact string `json:"reporter_contact"`
}

// FileReport files a report against an existing donor
func (s *ReportService) FileReport(ctx context.Context, donorID uint, input *FileReportInput) (*models.DonorReportResponse, error) {
	if input.ReportDetails == "" {
		return nil, ErrMissingDetails
	}
	if !reportTypes[input.ReportType] {
		return nil, ErrInvalidCategory
	}

	donor, err := s.userRepo.GetByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDonorNotFound
		}
		return nil, err
	}

	report := &models.DonorReport{
		DonorID:         donor.ID,
		ReportType:      input.ReportType,
		ReportDetails:   input.ReportDetails,
		ReporterName:    input.ReporterName,
		ReporterContact: input.ReporterContact,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	log.Printf("Report filed against donor %d: %s", donor.ID, report.ReportType)
	return report.ToResponse(), nil
}

// ListReports returns all reports, newest first
func (s *ReportService) ListReports(ctx context.Context) ([]*models.DonorReportResponse, error) {
	reports, err := s.reportRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.DonorReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = report.ToResponse()
	}
	return responses, nil
}

// ResolveReport marks a report resolved. Resolving an already-resolved
// report is a no-op success.
func (s *ReportService) ResolveReport(ctx context.Context, id uint) (*models.DonorReportResponse, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	if report.IsResolved {
		return report.ToResponse(), nil
	}

	report.IsResolved = true
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}

	return report.ToResponse(), nil
}
