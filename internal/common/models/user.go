package models

import "strings"

// Role pengguna sesuai nilai yang dikirim backend.
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RolePatient      = "patient"
	RoleReceptionist = "receptionist"
	RoleNurse        = "nurse"
	RolePharmacist   = "pharmacist"
	RoleAccountant   = "accountant"
	RoleLabTech      = "lab_tech"

	// Alias lama yang masih dipakai layout staf
	RoleLaboratory = "laboratory"
	RolePharmacy   = "pharmacy"
)

type User struct {
	ID             int          `json:"id,omitempty"`
	Email          string       `json:"email,omitempty"`
	FullName       string       `json:"full_name,omitempty"`
	Role           string       `json:"role"`
	IsActive       *bool        `json:"is_active,omitempty"`
	PatientProfile *PatientInfo `json:"patient_profile,omitempty"`
	DoctorProfile  *DoctorInfo  `json:"doctor_profile,omitempty"`
}

// HasRole membandingkan role tanpa memperhatikan huruf besar/kecil.
func (u User) HasRole(roles ...string) bool {
	r := strings.ToLower(u.Role)
	for _, allowed := range roles {
		if strings.ToLower(allowed) == r {
			return true
		}
	}
	return false
}

// DisplayName memakai full_name, lalu email, lalu role.
func (u User) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Email != "":
		return u.Email
	default:
		return u.Role
	}
}

type UserCreate struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role,omitempty"`
}

type UserInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type PatientInfo struct {
	ID          int      `json:"id"`
	User        UserInfo `json:"user"`
	BloodGroup  string   `json:"blood_group,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	Gender      string   `json:"gender,omitempty"`
}

type DoctorInfo struct {
	ID             int      `json:"id"`
	Specialization string   `json:"specialization"`
	User           UserInfo `json:"user"`
}

// PatientSummary baris daftar pasien di dashboard staf (GET /dashboard/patients).
type PatientSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	BloodGroup  string `json:"blood_group,omitempty"`
	Age         int    `json:"age,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Phone       string `json:"phone,omitempty"`
	LastVisit   string `json:"lastVisit,omitempty"`
	Status      string `json:"status,omitempty"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
