package services_test

import (
	"context"
	"testing"

	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/core/domain"
	"tabaro3-api/internal/core/services"
	"tabaro3-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func existingUser() *models.User {
	hash, _ := password.Hash("old-password")
	return &models.User{
		ID:        5,
		Username:  "donor1",
		Email:     "donor1@example.com",
		Password:  hash,
		FullName:  "Donor One",
		Phone:     "0555123456",
		BloodType: "A+",
		Region:    "Oran",
		IsDonor:   true,
	}
}

// TestDeleteUserSelfGuard verifies an admin cannot delete their own account,
// and that nothing is touched when they try.
func TestDeleteUserSelfGuard(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	err := svc.DeleteUser(context.Background(), 5, 5)

	assert.ErrorIs(t, err, services.ErrCannotDeleteSelf)
	userRepo.AssertNotCalled(t, "DeleteWithOwned", mock.Anything, mock.Anything)
}

// TestDeleteUserCascades verifies deletion goes through DeleteWithOwned so the
// user's requests and reports go with them.
func TestDeleteUserCascades(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	userRepo.On("GetByID", mock.Anything, uint(5)).Return(existingUser(), nil)
	userRepo.On("DeleteWithOwned", mock.Anything, uint(5)).Return(nil)

	err := svc.DeleteUser(context.Background(), 5, 1)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

// TestDeleteUserNotFound verifies deleting a missing user reports not found.
func TestDeleteUserNotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	userRepo.On("GetByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteUser(context.Background(), 404, 1)

	assert.ErrorIs(t, err, services.ErrUserNotFoundSvc)
}

// TestCreateAdminUsesSentinels verifies admin accounts are created with the
// N/A placeholders and never as donors.
func TestCreateAdminUsesSentinels(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	var created *models.User
	userRepo.On("ExistsByUsername", mock.Anything, "admin2").Return(false, nil)
	userRepo.On("ExistsByEmail", mock.Anything, "admin2@example.com").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.User)
		}).Return(nil)

	_, err := svc.CreateAdmin(context.Background(), &services.CreateAdminInput{
		Username: "admin2",
		Email:    "admin2@example.com",
		Password: "admin-password",
		FullName: "Second Admin",
		Phone:    "0555000000",
	})

	assert.NoError(t, err)
	assert.True(t, created.IsAdmin)
	assert.False(t, created.IsDonor)
	assert.Equal(t, domain.BloodTypeNA, created.BloodType)
	assert.Equal(t, domain.BloodTypeNA, created.Region)
}

// TestUpdateUserKeepsPasswordWhenEmpty verifies an empty password field on the
// admin edit leaves the stored hash untouched.
func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	user := existingUser()
	oldHash := user.Password
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	_, err := svc.UpdateUserByAdmin(context.Background(), 5, &services.UpdateUserByAdminInput{
		Username:  "donor1",
		Email:     "donor1@example.com",
		FullName:  "Donor One Renamed",
		Phone:     "0555123456",
		BloodType: "A+",
		Region:    "Oran",
		IsDonor:   true,
	})

	assert.NoError(t, err)
	assert.Equal(t, oldHash, user.Password)
	assert.True(t, password.Verify("old-password", user.Password))
}

// TestUpdateUserReplacesPassword verifies a non-empty password field rehashes.
func TestUpdateUserReplacesPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	user := existingUser()
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	_, err := svc.UpdateUserByAdmin(context.Background(), 5, &services.UpdateUserByAdminInput{
		Username:  "donor1",
		Email:     "donor1@example.com",
		FullName:  "Donor One",
		Phone:     "0555123456",
		BloodType: "A+",
		Region:    "Oran",
		IsDonor:   true,
		Password:  "new-password",
	})

	assert.NoError(t, err)
	assert.True(t, password.Verify("new-password", user.Password))
	assert.False(t, password.Verify("old-password", user.Password))
}

// TestUpdateUserCheckboxClearsFlags verifies a body with both flags absent
// clears donor and admin status, since absent means false.
func TestUpdateUserCheckboxClearsFlags(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	user := existingUser()
	user.IsAdmin = true
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	result, err := svc.UpdateUserByAdmin(context.Background(), 5, &services.UpdateUserByAdminInput{
		Username:  "donor1",
		Email:     "donor1@example.com",
		FullName:  "Donor One",
		Phone:     "0555123456",
		BloodType: "A+",
		Region:    "Oran",
	})

	assert.NoError(t, err)
	assert.False(t, result.IsDonor)
	assert.False(t, result.IsAdmin)
}

// TestUpdateUserDuplicateUsername verifies renaming onto a taken username is
// refused without writing.
func TestUpdateUserDuplicateUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	userRepo.On("GetByID", mock.Anything, uint(5)).Return(existingUser(), nil)
	userRepo.On("ExistsByUsername", mock.Anything, "taken").Return(true, nil)

	_, err := svc.UpdateUserByAdmin(context.Background(), 5, &services.UpdateUserByAdminInput{
		Username:  "taken",
		Email:     "donor1@example.com",
		BloodType: "A+",
	})

	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestUpdateUserAcceptsNASentinel verifies the admin edit accepts the N/A
// blood type used by admin accounts.
func TestUpdateUserAcceptsNASentinel(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	user := existingUser()
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	_, err := svc.UpdateUserByAdmin(context.Background(), 5, &services.UpdateUserByAdminInput{
		Username:  "donor1",
		Email:     "donor1@example.com",
		BloodType: domain.BloodTypeNA,
		Region:    domain.BloodTypeNA,
		IsAdmin:   true,
	})

	assert.NoError(t, err)
}

// TestUpdateProfileKeepsIdentity verifies the self-service edit cannot touch
// username or email and keeps the password when the field is empty.
func TestUpdateProfileKeepsIdentity(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := services.NewUserService(userRepo)

	user := existingUser()
	oldHash := user.Password
	userRepo.On("GetByID", mock.Anything, uint(5)).Return(user, nil)
	userRepo.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	result, err := svc.UpdateProfile(context.Background(), 5, &services.UpdateProfileInput{
		FullName:  "Renamed",
		Phone:     "0666777888",
		BloodType: "B-",
		Region:    "Annaba",
		IsDonor:   true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "donor1", result.Username)
	assert.Equal(t, "donor1@example.com", result.Email)
	assert.Equal(t, "B-", result.BloodType)
	assert.Equal(t, oldHash, user.Password)
}
