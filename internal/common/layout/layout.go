// Package layout menyusun shell halaman (header dan sidebar) untuk area
// pasien dan area staf.
package layout

import (
	"github.com/c14220110/clinic-portal/internal/common/guard"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/widgets"
)

type Area string

const (
	AreaPatient Area = "patient"
	AreaStaff   Area = "staff"
)

type Header struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Initials string `json:"initials"`
}

type NavItem struct {
	Label    string    `json:"label"`
	Path     string    `json:"path"`
	Children []NavItem `json:"children,omitempty"`

	// roles kosong berarti semua role di area boleh melihat
	roles []string
}

type Shell struct {
	Area   Area      `json:"area"`
	Header Header    `json:"header"`
	Nav    []NavItem `json:"nav"`
}

var patientNav = []NavItem{
	{Label: "Dashboard", Path: "/dashboard/patient"},
	{Label: "Appointments", Path: "/dashboard/patient/appointments"},
	{Label: "Medical Records", Path: "/dashboard/patient/records", Children: []NavItem{
		{Label: "Lab Results", Path: "/dashboard/patient/records/labs"},
		{Label: "Prescriptions", Path: "/dashboard/patient/records/prescriptions"},
		{Label: "Visit History", Path: "/dashboard/patient/records/visits"},
	}},
	{Label: "Wallet & Billing", Path: "/dashboard/patient/wallet"},
	{Label: "Vitals & Health", Path: "/dashboard/patient/vitals"},
	{Label: "Messages", Path: "/dashboard/patient/messages"},
}

var (
	clinicalRoles = []string{models.RoleAdmin, models.RoleDoctor, models.RoleNurse, models.RoleReceptionist}
	recordRoles   = []string{models.RoleAdmin, models.RoleDoctor, models.RoleNurse}
	doctorRoles   = []string{models.RoleAdmin, models.RoleDoctor}
	nurseRoles    = []string{models.RoleAdmin, models.RoleNurse}
)

var staffNav = []NavItem{
	{Label: "Overview", Path: "/dashboard/overview"},
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Patients", Path: "/dashboard/patients", roles: clinicalRoles},
	{Label: "Schedule", Path: "/dashboard/schedule/appointments", roles: clinicalRoles},
	{Label: "Consultations", Path: "/dashboard/consultations", roles: doctorRoles},
	{Label: "My Patients", Path: "/dashboard/doctor", roles: doctorRoles},
	{Label: "Nurse Station", Path: "/dashboard/nurse", roles: nurseRoles},
	{Label: "Medical Records", Path: "/dashboard/records", roles: recordRoles},
	{Label: "Rooms", Path: "/dashboard/rooms", roles: clinicalRoles},
	{Label: "Referrals", Path: "/dashboard/referrals", roles: doctorRoles},
	{Label: "Laboratory", Path: "/dashboard/laboratory", roles: guard.LaboratoryRoles},
	{Label: "Pharmacy", Path: "/dashboard/pharmacy", roles: guard.PharmacyRoles, Children: []NavItem{
		{Label: "Inventory", Path: "/dashboard/pharmacy/inventory"},
		{Label: "Prescriptions", Path: "/dashboard/pharmacy/prescriptions"},
	}},
	{Label: "Billing", Path: "/dashboard/billing", roles: guard.BillingRoles},
	{Label: "Attendance", Path: "/dashboard/attendance"},
	{Label: "Admin", Path: "/dashboard/admin", roles: guard.AdminRoles, Children: []NavItem{
		{Label: "Users", Path: "/dashboard/admin/users"},
	}},
}

// For membangun shell untuk user di area tertentu. Menu staf disaring per role.
func For(area Area, user models.User) Shell {
	shell := Shell{
		Area: area,
		Header: Header{
			FullName: user.DisplayName(),
			Role:     user.Role,
			Initials: widgets.Initials(user.DisplayName()),
		},
	}
	if area == AreaPatient {
		shell.Nav = patientNav
		return shell
	}
	shell.Nav = filterNav(staffNav, user)
	return shell
}

func filterNav(items []NavItem, user models.User) []NavItem {
	out := make([]NavItem, 0, len(items))
	for _, item := range items {
		if len(item.roles) > 0 && !user.HasRole(item.roles...) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Paths daftar path menu teratas, dipakai untuk logging dan test.
func (s Shell) Paths() []string {
	out := make([]string, len(s.Nav))
	for i, item := range s.Nav {
		out[i] = item.Path
	}
	return out
}
