package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table. Donors carry a blood type and locality;
// admin accounts store the "N/A" sentinel instead.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	BloodType string    `gorm:"size:5;not null" json:"blood_type"`
	Region    string    `gorm:"size:50;not null;index" json:"region"`
	SubRegion string    `gorm:"size:50" json:"sub_region"`
	IsDonor   bool      `gorm:"not null" json:"is_donor"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	BloodType string    `json:"blood_type"`
	Region    string    `json:"region"`
	SubRegion string    `json:"sub_region,omitempty"`
	IsDonor   bool      `json:"is_donor"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		BloodType: u.BloodType,
		Region:    u.Region,
		SubRegion: u.SubRegion,
		IsDonor:   u.IsDonor,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Blood Request & Report Tables
// ============================================================

// BloodRequest represents blood_requests table
type BloodRequest struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RequesterID  uint      `gorm:"not null;index" json:"requester_id"`
	BloodType    string    `gorm:"size:5;not null" json:"blood_type"`
	UnitsNeeded  int       `gorm:"not null" json:"units_needed"`
	Hospital     string    `gorm:"size:100;not null" json:"hospital"`
	Region       string    `gorm:"size:50;not null" json:"region"`
	ContactPhone string    `gorm:"size:20;not null" json:"contact_phone"`
	Details      string    `gorm:"type:text" json:"details"`
	IsUrgent     bool      `gorm:"default:false" json:"is_urgent"`
	IsFulfilled  bool      `gorm:"default:false" json:"is_fulfilled"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Requester *User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
}

func (BloodRequest) TableName() string {
	return "blood_requests"
}

// BloodRequestResponse DTO
type BloodRequestResponse struct {
	ID            uint      `json:"id"`
	RequesterID   uint      `json:"requester_id"`
	RequesterName string    `json:"requester_name,omitempty"`
	BloodType     string    `json:"blood_type"`
	UnitsNeeded   int       `json:"units_needed"`
	Hospital      string    `json:"hospital"`
	Region        string    `json:"region"`
	ContactPhone  string    `json:"contact_phone"`
	Details       string    `json:"details,omitempty"`
	IsUrgent      bool      `json:"is_urgent"`
	IsFulfilled   bool      `json:"is_fulfilled"`
	CreatedAt     time.Time `json:"created_at"`
}

func (r *BloodRequest) ToResponse() *BloodRequestResponse {
	resp := &BloodRequestResponse{
		ID:           r.ID,
		RequesterID:  r.RequesterID,
		BloodType:    r.BloodType,
		UnitsNeeded:  r.UnitsNeeded,
		Hospital:     r.Hospital,
		Region:       r.Region,
		ContactPhone: r.ContactPhone,
		Details:      r.Details,
		IsUrgent:     r.IsUrgent,
		IsFulfilled:  r.IsFulfilled,
		CreatedAt:    r.CreatedAt,
	}

	if r.Requester != nil {
		resp.RequesterName = r.Requester.FullName
	}

	return resp
}

// Report types accepted from the report form
const (
	ReportTypeFakeProfile = "fake_profile"
	ReportTypeUnavailable = "unavailable"
	ReportTypeHarassment  = "harassment"
	ReportTypeOther       = "other"
)

// DonorReport represents donor_reports table. Reports may be filed
// anonymously, so reporter name/contact are optional.
type DonorReport struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	DonorID         uint      `gorm:"not null;index" json:"donor_id"`
	ReportType      string    `gorm:"size:50;not null" json:"report_type"`
	ReportDetails   string    `gorm:"type:text;not null" json:"report_details"`
	ReporterName    string    `gorm:"size:100" json:"reporter_name"`
	ReporterContact string    `gorm:"size:100" json:"reporter_contact"`
	IsResolved      bool      `gorm:"default:false" json:"is_resolved"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	Donor *User `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
}

func (DonorReport) TableName() string {
	return "donor_reports"
}

// DonorReportResponse DTO
type DonorReportResponse struct {
	ID              uint      `json:"id"`
	DonorID         uint      `json:"donor_id"`
	DonorName       string    `json:"donor_name,omitempty"`
	ReportType      string    `json:"report_type"`
	ReportDetails   string    `json:"report_details"`
	ReporterName    string    `json:"reporter_name,omitempty"`
	ReporterContact string    `json:"reporter_contact,omitempty"`
	IsResolved      bool      `json:"is_resolved"`
	CreatedAt       time.Time `json:"created_at"`
}

func (r *DonorReport) ToResponse() *DonorReportResponse {
	resp := &DonorReportResponse{
		ID:              r.ID,
		DonorID:         r.DonorID,
		ReportType:      r.ReportType,
		ReportDetails:   r.ReportDetails,
		ReporterName:    r.ReporterName,
		ReporterContact: r.ReporterContact,
		IsResolved:      r.IsResolved,
		CreatedAt:       r.CreatedAt,
	}

	if r.Donor != nil {
		resp.DonorName = r.Donor.FullName
	}

	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates tables if they do not exist. Unique indexes on
// username/email are part of the schema so duplicate registration races
// are closed at the store level, not just by the application pre-check.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&RefreshToken{},
		&BloodRequest{},
		&DonorReport{},
	)
}
