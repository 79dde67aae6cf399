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

func createRequestInput() *services.CreateRequestInput {
	return &services.CreateRequestInput{
		BloodType:    "O+",
		UnitsNeeded:  2,
		Hospital:     "Mustapha Pacha",
		Region:       "Algiers",
		ContactPhone: "0555123456",
		Details:      "Surgery scheduled this week",
		IsUrgent:     true,
	}
}

// TestCreateRequestUsesSessionRequester verifies the requester always comes
// from the acting user, never from the request body.
func TestCreateRequestUsesSessionRequester(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	var created *models.BloodRequest
	requestRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.BloodRequest")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.BloodRequest)
		}).Return(nil)

	_, err := svc.Create(context.Background(), 7, createRequestInput())

	assert.NoError(t, err)
	assert.Equal(t, uint(7), created.RequesterID)
	assert.True(t, created.IsUrgent)
	assert.False(t, created.IsFulfilled)
}

// TestCreateRequestValidation covers the required-field checks.
func TestCreateRequestValidation(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	cases := []struct {
		name    string
		mutate  func(*services.CreateRequestInput)
		wantErr error
	}{
		{"invalid blood type", func(i *services.CreateRequestInput) { i.BloodType = "X" }, nil},
		{"zero units", func(i *services.CreateRequestInput) { i.UnitsNeeded = 0 }, services.ErrInvalidUnits},
		{"negative units", func(i *services.CreateRequestInput) { i.UnitsNeeded = -1 }, services.ErrInvalidUnits},
		{"missing hospital", func(i *services.CreateRequestInput) { i.Hospital = "" }, services.ErrMissingHospital},
		{"missing phone", func(i *services.CreateRequestInput) { i.ContactPhone = "" }, services.ErrMissingPhone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := createRequestInput()
			tc.mutate(input)

			_, err := svc.Create(context.Background(), 7, input)

			assert.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}

	requestRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestHomeCaps verifies the landing view asks for at most five urgent and ten
// recent open requests.
func TestHomeCaps(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	requestRepo.On("ListOpen", mock.Anything, true, 5).Return([]*models.BloodRequest{{ID: 1, IsUrgent: true}}, nil)
	requestRepo.On("ListOpen", mock.Anything, false, 10).Return([]*models.BloodRequest{{ID: 1}, {ID: 2}}, nil)

	home, err := svc.Home(context.Background())

	assert.NoError(t, err)
	assert.Len(t, home.UrgentRequests, 1)
	assert.Len(t, home.RecentRequests, 2)
	requestRepo.AssertExpectations(t)
}

// TestListOpenUncapped verifies the full browse listing has no cap.
func TestListOpenUncapped(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	requestRepo.On("ListOpen", mock.Anything, false, 0).Return([]*models.BloodRequest{}, nil)

	_, err := svc.ListOpen(context.Background())

	assert.NoError(t, err)
	requestRepo.AssertExpectations(t)
}

// TestMarkFulfilledByOwner verifies the requester can close their own request.
func TestMarkFulfilledByOwner(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	request := &models.BloodRequest{ID: 3, RequesterID: 7, BloodType: "O+"}
	requestRepo.On("GetByID", mock.Anything, uint(3)).Return(request, nil)
	requestRepo.On("Update", mock.Anything, request).Return(nil)

	result, err := svc.MarkFulfilled(context.Background(), 3, 7)

	assert.NoError(t, err)
	assert.True(t, result.IsFulfilled)
}

// TestMarkFulfilledByNonOwner verifies any other user is refused and the
// request state stays untouched.
func TestMarkFulfilledByNonOwner(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	request := &models.BloodRequest{ID: 3, RequesterID: 7}
	requestRepo.On("GetByID", mock.Anything, uint(3)).Return(request, nil)

	_, err := svc.MarkFulfilled(context.Background(), 3, 8)

	assert.ErrorIs(t, err, services.ErrNotRequestOwner)
	assert.False(t, request.IsFulfilled)
	requestRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestMarkFulfilledMissing verifies a missing request reports not found.
func TestMarkFulfilledMissing(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	requestRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.MarkFulfilled(context.Background(), 404, 7)

	assert.ErrorIs(t, err, services.ErrRequestNotFound)
}

// TestAdminUpdateReplacesFlags verifies the admin edit is a full replace:
// flags absent from the body reset to false.
func TestAdminUpdateReplacesFlags(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	request := &models.BloodRequest{
		ID:          3,
		RequesterID: 7,
		BloodType:   "O+",
		UnitsNeeded: 2,
		IsUrgent:    true,
		IsFulfilled: true,
	}
	requestRepo.On("GetByID", mock.Anything, uint(3)).Return(request, nil)
	requestRepo.On("Update", mock.Anything, request).Return(nil)

	result, err := svc.UpdateByAdmin(context.Background(), 3, &services.UpdateRequestInput{
		BloodType:    "A-",
		UnitsNeeded:  4,
		Hospital:     "CHU Oran",
		Region:       "Oran",
		ContactPhone: "0555999888",
	})

	assert.NoError(t, err)
	assert.Equal(t, "A-", result.BloodType)
	assert.Equal(t, 4, result.UnitsNeeded)
	assert.False(t, result.IsUrgent)
	assert.False(t, result.IsFulfilled)
	assert.Equal(t, uint(7), result.RequesterID)
}

// TestAdminDeleteMissing verifies deleting a missing request reports not found.
func TestAdminDeleteMissing(t *testing.T) {
	requestRepo := new(MockBloodRequestRepository)
	svc := services.NewRequestService(requestRepo)

	requestRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteByAdmin(context.Background(), 404)

	assert.ErrorIs(t, err, services.ErrRequestNotFound)
	requestRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
