package services

import (
	"context"
	"errors"
	"log"

	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/adapters/persistence/repositories"
	"tabaro3-api/internal/core/domain"

	"gorm.io/gorm"
)

// Caps for the landing view: the original directory surfaces up to five
// urgent and ten recent open requests.
const (
	HomeUrgentLimit = 5
	HomeRecentLimit = 10
)

// Request service errors
var (
	ErrRequestNotFound  = errors.New("blood request not found")
	ErrNotRequestOwner  = errors.New("only the requester may mark this request fulfilled")
	ErrInvalidUnits     = errors.New("units needed must be a positive number")
	ErrMissingHospital  = errors.New("hospital is required")
	ErrMissingPhone     = errors.New("contact phone is required")
)

// RequestService handles the blood request lifecycle
type RequestService struct {
	requestRepo repositories.BloodRequestRepository
}

// NewRequestService creates a new request service
func NewRequestService(requestRepo repositories.BloodRequestRepository) *RequestService {
	return &RequestService{requestRepo: requestRepo}
}

// CreateRequestInput represents request creation input. The requester is
// never part of this input; it always comes from the session user.
type CreateRequestInput struct {
	BloodType    string `json:"blood_type"`
	UnitsNeeded  int    `json:"units_needed"`
	Hospital     string `json:"hospital"`
	Region       string `json:"region"`
	ContactPhone string `json:"contact_phone"`
	Details      string `json:"details"`
	IsUrgent     bool   `json:"is_urgent"`
}

// UpdateRequestInput is the admin full field replace. Booleans follow
// checkbox semantics: absent means false.
type UpdateRequestInput struct {
	BloodType    string `json:"blood_type"`
	UnitsNeeded  int    `json:"units_needed"`
	Hospital     string `json:"hospital"`
	Region       string `json:"region"`
	ContactPhone string `json:"contact_phone"`
	Details      string `json:"details"`
	IsUrgent     bool   `json:"is_urgent"`
	IsFulfilled  bool   `json:"is_fulfilled"`
}

// HomeOutput is the landing view payload
type HomeOutput struct {
	UrgentRequests []*models.BloodRequestResponse `json:"urgent_requests"`
	RecentRequests []*models.BloodRequestResponse `json:"recent_requests"`
}

func (s *RequestService) validate(bloodType string, units int, hospital, phone string) error {
	if !domain.IsValidBloodType(bloodType) {
		return domain.ErrInvalidBloodType
	}
	if units <= 0 {
		return ErrInvalidUnits
	}
	if hospital == "" {
		return ErrMissingHospital
	}
	if phone == "" {
		return ErrMissingPhone
	}
	return nil
}

// Create creates a blood request on behalf of the authenticated requester.
// requesterID comes from the resolved session, never from client input.
func (s *RequestService) Create(ctx context.Context, requesterID uint, input *CreateRequestInput) (*models.BloodRequestResponse, error) {
	if err := s.validate(input.BloodType, input.UnitsNeeded, input.Hospital, input.ContactPhone); err != nil {
		return nil, err
	}

	request := &models.BloodRequest{
		RequesterID:  requesterID,
		BloodType:    input.BloodType,
		UnitsNeeded:  input.UnitsNeeded,
		Hospital:     input.Hospital,
		Region:       input.Region,
		ContactPhone: input.ContactPhone,
		Details:      input.Details,
		IsUrgent:     input.IsUrgent,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	log.Printf("Blood request created: id=%d requester=%d type=%s urgent=%v",
		request.ID, requesterID, request.BloodType, request.IsUrgent)

	return request.ToResponse(), nil
}

// Home returns the landing view: urgent open requests capped at five and
// recent open requests capped at ten, both newest first.
func (s *RequestService) Home(ctx context.Context) (*HomeOutput, error) {
	urgent, err := s.requestRepo.ListOpen(ctx, true, HomeUrgentLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.requestRepo.ListOpen(ctx, false, HomeRecentLimit)
	if err != nil {
		return nil, err
	}

	return &HomeOutput{
		UrgentRequests: toResponses(urgent),
		RecentRequests: toResponses(recent),
	}, nil
}

// ListOpen returns every unfulfilled request, newest first, uncapped
func (s *RequestService) ListOpen(ctx context.Context) ([]*models.BloodRequestResponse, error) {
	requests, err := s.requestRepo.ListOpen(ctx, false, 0)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// GetByID gets a blood request by ID
func (s *RequestService) GetByID(ctx context.Context, id uint) (*models.BloodRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return request.ToResponse(), nil
}

// ListByRequester returns a user's own requests, newest first
func (s *RequestService) ListByRequester(ctx context.Context, requesterID uint) ([]*models.BloodRequestResponse, error) {
	requests, err := s.requestRepo.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// MarkFulfilled marks a request fulfilled. Owner only: admins moderate
// through the edit operation instead.
func (s *RequestService) MarkFulfilled(ctx context.Context, id uint, actorID uint) (*models.BloodRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if request.RequesterID != actorID {
		return nil, ErrNotRequestOwner
	}

	request.IsFulfilled = true
	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	return request.ToResponse(), nil
}

// ListAll returns every request including fulfilled ones (admin moderation)
func (s *RequestService) ListAll(ctx context.Context, offset, limit int) ([]*models.BloodRequestResponse, int64, error) {
	requests, total, err := s.requestRepo.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toResponses(requests), total, nil
}

// UpdateByAdmin replaces every mutable field of a request
func (s *RequestService) UpdateByAdmin(ctx context.Context, id uint, input *UpdateRequestInput) (*models.BloodRequestResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	if err := s.validate(input.BloodType, input.UnitsNeeded, input.Hospital, input.ContactPhone); err != nil {
		return nil, err
	}

	request.BloodType = input.BloodType
	request.UnitsNeeded = input.UnitsNeeded
	request.Hospital = input.Hospital
	request.Region = input.Region
	request.ContactPhone = input.ContactPhone
	request.Details = input.Details
	request.IsUrgent = input.IsUrgent
	request.IsFulfilled = input.IsFulfilled

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	return request.ToResponse(), nil
}

// DeleteByAdmin permanently removes a request. No other table references
// blood requests, so there is nothing to detach first.
func (s *RequestService) DeleteByAdmin(ctx context.Context, id uint) error {
	if _, err := s.requestRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("Blood request deleted: id=%d", id)
	return nil
}

func toResponses(requests []*models.BloodRequest) []*models.BloodRequestResponse {
	responses := make([]*models.BloodRequestResponse, len(requests))
	for i, request := range requests {
		responses[i] = request.ToResponse()
	}
	return responses
}
