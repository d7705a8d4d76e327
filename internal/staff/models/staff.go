package models

import (
	"sort"
	"strings"
	"time"

	common "github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/widgets"
)

// Status antrean yang dipakai backend selain status janji temu standar.
const AppointmentCheckedIn = "checked-in"

// Status pasien pada tabel /dashboard/patients.
const (
	PatientActive   = "Active"
	PatientFollowUp = "Follow-up"
)

type DashboardPage struct {
	Me           *common.User           `json:"me"`
	Stats        *common.DashboardStats `json:"stats"`
	Tiles        []widgets.StatTile     `json:"tiles"`
	Appointments []common.Appointment   `json:"appointments"`
	Failed       []string               `json:"failed_fetches,omitempty"`
}

type OverviewPage struct {
	Stats  *common.DashboardStats `json:"stats"`
	Tiles  []widgets.StatTile     `json:"tiles"`
	Failed []string               `json:"failed_fetches,omitempty"`
}

type PatientsPage struct {
	Query    string                  `json:"query,omitempty"`
	Status   string                  `json:"status,omitempty"`
	Patients []common.PatientSummary `json:"patients"`
	Total    int                     `json:"total"`
	Active   int                     `json:"active"`
	FollowUp int                     `json:"follow_up"`
	Failed   []string                `json:"failed_fetches,omitempty"`
}

type RecordsPage struct {
	Query   string                 `json:"query,omitempty"`
	Records []common.MedicalRecord `json:"records"`
	Failed  []string               `json:"failed_fetches,omitempty"`
}

type RecordPage struct {
	Record *common.MedicalRecord `json:"record"`
	Failed []string              `json:"failed_fetches,omitempty"`
}

type ConsultationsPage struct {
	Queue  []common.Appointment `json:"queue"`
	Failed []string             `json:"failed_fetches,omitempty"`
}

type ConsultationDetailPage struct {
	Appointment *common.Appointment  `json:"appointment"`
	Inventory   []common.Medicine    `json:"inventory"`
	Me          *common.User         `json:"me"`
	Existing    *common.Consultation `json:"existing,omitempty"`
	Failed      []string             `json:"failed_fetches,omitempty"`
}

// PrescriptionItem satu obat yang diresepkan saat konsultasi.
type PrescriptionItem struct {
	Medication   string `json:"medication" validate:"required"`
	Dosage       string `json:"dosage" validate:"required"`
	Frequency    string `json:"frequency" validate:"required"`
	Duration     string `json:"duration" validate:"required"`
	Instructions string `json:"instructions,omitempty"`
}

// ConsultationRequest form penyelesaian konsultasi.
type ConsultationRequest struct {
	Symptoms      string             `json:"symptoms" validate:"required"`
	Diagnosis     string             `json:"diagnosis" validate:"required"`
	Notes         string             `json:"notes,omitempty"`
	FollowUpDate  *time.Time         `json:"follow_up_date,omitempty"`
	IsAdmitted    bool               `json:"is_admitted"`
	Prescriptions []PrescriptionItem `json:"prescriptions" validate:"dive"`
}

type ConsultationResult struct {
	Consultation  *common.Consultation  `json:"consultation"`
	Prescriptions []common.Prescription `json:"prescriptions"`
	Redirect      string                `json:"redirect"`
}

type DoctorPage struct {
	Query    string               `json:"query,omitempty"`
	Upcoming []common.Appointment `json:"upcoming"`
	Failed   []string             `json:"failed_fetches,omitempty"`
}

type NursePage struct {
	Queue   []common.Appointment `json:"queue"`
	Waiting int                  `json:"waiting"`
	Failed  []string             `json:"failed_fetches,omitempty"`
}

// ScheduleFilter filter tabel janji temu.
type ScheduleFilter struct {
	Status string `json:"status,omitempty"`
	Query  string `json:"query,omitempty"`
	Date   string `json:"date,omitempty"`
}

type SchedulePage struct {
	Filter       ScheduleFilter          `json:"filter"`
	Appointments []common.Appointment    `json:"appointments"`
	Patients     []common.PatientSummary `json:"patients"`
	Counts       map[string]int          `json:"counts"`
	Failed       []string                `json:"failed_fetches,omitempty"`
}

type ReferralsPage struct {
	Received []common.Referral `json:"received"`
	Pending  int               `json:"pending"`
	Failed   []string          `json:"failed_fetches,omitempty"`
}

type AttendancePage struct {
	History   []common.AttendanceLog `json:"history"`
	CheckedIn bool                   `json:"checked_in"`
	Failed    []string               `json:"failed_fetches,omitempty"`
}

type AdminPage struct {
	Stats  *common.DashboardStats `json:"stats"`
	Tiles  []widgets.StatTile     `json:"tiles"`
	Failed []string               `json:"failed_fetches,omitempty"`
}

// CreateUserRequest form admin untuk akun staf.
type CreateUserRequest struct {
	FullName string `json:"full_name" form:"full_name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin doctor nurse receptionist pharmacist accountant lab_tech patient"`
}

type LaboratoryPage struct {
	Requests  []common.LabResult `json:"requests"`
	Pending   int                `json:"pending"`
	Completed int                `json:"completed"`
	Failed    []string           `json:"failed_fetches,omitempty"`
}

// StatTiles kartu statistik dashboard staf.
func StatTiles(s *common.DashboardStats) []widgets.StatTile {
	if s == nil {
		return []widgets.StatTile{}
	}
	return []widgets.StatTile{
		{Label: "Appointments Today", Value: s.AppointmentsToday, Change: widgets.Delta(s.AppointmentsDelta)},
		{Label: "Active Patients", Value: s.ActivePatients, Change: widgets.Delta(s.PatientsDelta)},
		{Label: "Pending Labs", Value: s.PendingLabs, Change: widgets.Delta(s.LabsDelta)},
		{Label: "Available Beds", Value: s.AvailableBeds, Change: widgets.Delta(s.BedsDelta)},
	}
}

// FilterPatients cari nama/email dan status (case-insensitive).
func FilterPatients(items []common.PatientSummary, query, status string) []common.PatientSummary {
	out := make([]common.PatientSummary, 0, len(items))
	for _, p := range items {
		if status != "" && !strings.EqualFold(p.Status, status) {
			continue
		}
		if !widgets.MatchesAny(query, p.Name, p.Email) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// CountPatients jumlah pasien Active dan Follow-up.
func CountPatients(items []common.PatientSummary) (active, followUp int) {
	for _, p := range items {
		switch {
		case strings.EqualFold(p.Status, PatientActive):
			active++
		case strings.EqualFold(p.Status, PatientFollowUp):
			followUp++
		}
	}
	return active, followUp
}

// FilterRecords cari diagnosis, gejala, atau treatment.
func FilterRecords(items []common.MedicalRecord, query string) []common.MedicalRecord {
	out := make([]common.MedicalRecord, 0, len(items))
	for _, r := range items {
		if widgets.MatchesAny(query, r.Diagnosis, r.Symptoms, r.Treatment) {
			out = append(out, r)
		}
	}
	return out
}

// FilterAppointments menerapkan ScheduleFilter. Date berformat YYYY-MM-DD
// dibandingkan dengan tanggal janji temu di zona loc.
func FilterAppointments(items []common.Appointment, f ScheduleFilter, loc *time.Location) []common.Appointment {
	if loc == nil {
		loc = time.Local
	}
	out := make([]common.Appointment, 0, len(items))
	for _, a := range items {
		if f.Status != "" && !strings.EqualFold(a.Status, f.Status) {
			continue
		}
		if f.Date != "" && a.AppointmentTime.In(loc).Format("2006-01-02") != f.Date {
			continue
		}
		if !widgets.MatchesAny(f.Query, a.PatientName(), a.DoctorName()) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// CountByStatus jumlah janji temu per status.
func CountByStatus(items []common.Appointment) map[string]int {
	out := map[string]int{}
	for _, a := range items {
		out[a.Status]++
	}
	return out
}

// UpcomingAppointments janji temu setelah now, terurut naik, disaring nama pasien.
func UpcomingAppointments(items []common.Appointment, now time.Time, query string) []common.Appointment {
	out := make([]common.Appointment, 0, len(items))
	for _, a := range items {
		if !a.AppointmentTime.After(now) {
			continue
		}
		if !widgets.MatchesAny(query, a.PatientName(), a.Reason) {
			continue
		}
		out = append(out, a)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentTime.Before(out[j].AppointmentTime)
	})
	return out
}

// WaitingForVitals antrean perawat: janji temu confirmed atau checked-in.
func WaitingForVitals(items []common.Appointment) []common.Appointment {
	out := make([]common.Appointment, 0, len(items))
	for _, a := range items {
		if a.Status == common.AppointmentConfirmed || a.Status == AppointmentCheckedIn {
			out = append(out, a)
		}
	}
	return out
}

// ConsultationQueue janji temu yang siap dikonsultasikan.
func ConsultationQueue(items []common.Appointment) []common.Appointment {
	out := WaitingForVitals(items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentTime.Before(out[j].AppointmentTime)
	})
	return out
}

// CountReferrals jumlah rujukan pending.
func CountReferrals(items []common.Referral) int {
	n := 0
	for _, r := range items {
		if r.Status == common.ReferralPending {
			n++
		}
	}
	return n
}

// IsCheckedIn true bila log terbaru belum check-out.
func IsCheckedIn(history []common.AttendanceLog) bool {
	var latest *common.AttendanceLog
	for i := range history {
		if latest == nil || history[i].CheckInTime.After(latest.CheckInTime) {
			latest = &history[i]
		}
	}
	return latest != nil && latest.CheckOutTime == nil
}

// CountLabs jumlah permintaan lab pending dan completed.
func CountLabs(items []common.LabResult) (pending, completed int) {
	for _, l := range items {
		switch l.Status {
		case common.LabPending:
			pending++
		case common.LabCompleted:
			completed++
		}
	}
	return pending, completed
}
