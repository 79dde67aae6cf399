package services

import (
	"context"

	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/adapters/persistence/repositories"
	"tabaro3-api/internal/core/domain"
)

// DonorService handles the donor directory search
type DonorService struct {
	userRepo repositories.UserRepository
}

// NewDonorService creates a new donor service
func NewDonorService(userRepo repositories.UserRepository) *DonorService {
	return &DonorService{userRepo: userRepo}
}

// SearchInput holds the optional search filters. Empty fields are not
// applied, so a fully empty input returns every registered donor.
type SearchInput struct {
	BloodType string
	Region    string
	SubRegion string
}

// Search finds donors by exact-match filters. Only users with is_donor set
// appear in results regardless of filters.
func (s *DonorService) Search(ctx context.Context, input *SearchInput) ([]*models.UserResponse, error) {
	if input.BloodType != "" && !domain.IsValidBloodType(input.BloodType) {
		return nil, domain.ErrInvalidBloodType
	}

	donors, err := s.userRepo.SearchDonors(ctx, repositories.DonorFilter{
		BloodType: input.BloodType,
		Region:    input.Region,
		SubRegion: input.SubRegion,
	})
	if err != nil {
		return nil, err
	}

	results := make([]*models.UserResponse, len(donors))
	for i, donor := range donors {
		results[i] = donor.ToResponse()
	}
	return results, nil
}
