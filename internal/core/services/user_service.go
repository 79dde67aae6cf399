package services

import (
	"context"
	"errors"
	"log"

	"tabaro3-api/internal/adapters/persistence/models"
	"tabaro3-api/internal/adapters/persistence/repositories"
	"tabaro3-api/internal/core/domain"
	"tabaro3-api/internal/pkg/password"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrUserNotFoundSvc  = errors.New("user not found")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateUserByAdminInput is a full field replace. The boolean flags follow
// checkbox semantics: a flag absent from the submitted body is false, not
// "unchanged". Password is replaced only when non-empty.
type UpdateUserByAdminInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	BloodType string `json:"blood_type"`
	Region    string `json:"region"`
	SubRegion string `json:"sub_region"`
	IsDonor   bool   `json:"is_donor"`
	IsAdmin   bool   `json:"is_admin"`
	Password  string `json:"password"`
}

// CreateAdminInput represents admin account creation input
type CreateAdminInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// UpdateProfileInput represents self-service profile update. Same checkbox
// semantics as the admin edit; username/email stay fixed.
type UpdateProfileInput struct {
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	BloodType string `json:"blood_type"`
	Region    string `json:"region"`
	SubRegion string `json:"sub_region"`
	IsDonor   bool   `json:"is_donor"`
	Password  string `json:"password"`
}

// ListUsers lists all users with pagination
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	userResponses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = user.ToResponse()
	}

	return userResponses, total, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// CreateAdmin creates an administrator account. Admins are not donors, so
// blood type and locality hold the N/A sentinel.
func (s *UserService) CreateAdmin(ctx context.Context, input *CreateAdminInput) (*models.UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashedPassword,
		FullName:  input.FullName,
		Phone:     input.Phone,
		BloodType: domain.BloodTypeNA,
		Region:    domain.BloodTypeNA,
		SubRegion: domain.BloodTypeNA,
		IsDonor:   false,
		IsAdmin:   true,
	}

	if err := s.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	log.Printf("Admin account created: %s", admin.Username)
	return admin.ToResponse(), nil
}

// UpdateUserByAdmin replaces a user's fields
func (s *UserService) UpdateUserByAdmin(ctx context.Context, id uint, input *UpdateUserByAdminInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}

	if !domain.IsValidBloodTypeOrNA(input.BloodType) {
		return nil, domain.ErrInvalidBloodType
	}

	// Re-check uniqueness only when the identifying fields change
	if input.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUserAlreadyExists
		}
		user.Username = input.Username
	}
	if input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUserAlreadyExists
		}
		user.Email = input.Email
	}

	user.FullName = input.FullName
	user.Phone = input.Phone
	user.BloodType = input.BloodType
	user.Region = input.Region
	user.SubRegion = input.SubRegion
	user.IsDonor = input.IsDonor
	user.IsAdmin = input.IsAdmin

	if input.Password != "" {
		hashedPassword, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return user.ToResponse(), nil
}

// DeleteUser removes a user and their owned records. Admins cannot delete
// their own account.
func (s *UserService) DeleteUser(ctx context.Context, id uint, actorID uint) error {
	if id == actorID {
		return ErrCannotDeleteSelf
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFoundSvc
		}
		return err
	}

	if err := s.userRepo.DeleteWithOwned(ctx, id); err != nil {
		return err
	}

	log.Printf("User deleted: id=%d", id)
	return nil
}

// GetProfile gets own profile
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	return s.GetUserByID(ctx, userID)
}

// UpdateProfile updates own profile
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFoundSvc
		}
		return nil, err
	}

	if !domain.IsValidBloodTypeOrNA(input.BloodType) {
		return nil, domain.ErrInvalidBloodType
	}

	user.FullName = input.FullName
	user.Phone = input.Phone
	user.BloodType = input.BloodType
	user.Region = input.Region
	user.SubRegion = input.SubRegion
	user.IsDonor = input.IsDonor

	if input.Password != "" {
		hashedPassword, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}
