package models

import (
	"sort"
	"time"

	common "github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/widgets"
)

// DashboardPage beranda pasien.
type DashboardPage struct {
	Me              *common.User           `json:"me"`
	Appointments    []common.Appointment   `json:"appointments"`
	MedicalRecords  []common.MedicalRecord `json:"medical_records"`
	NextAppointment *common.Appointment    `json:"next_appointment,omitempty"`
	Failed          []string               `json:"failed_fetches,omitempty"`
}

type AppointmentsPage struct {
	Appointments []common.Appointment `json:"appointments"`
	Upcoming     int                  `json:"upcoming"`
	Failed       []string             `json:"failed_fetches,omitempty"`
}

type RecordsPage struct {
	Consultations []common.Consultation `json:"consultations"`
	Failed        []string              `json:"failed_fetches,omitempty"`
}

// ConsultationPage detail satu konsultasi beserta resep dan hasil lab.
type ConsultationPage struct {
	Consultation *common.Consultation `json:"consultation"`
	Failed       []string             `json:"failed_fetches,omitempty"`
}

type VisitsPage struct {
	Visits []common.MedicalRecord `json:"visits"`
	Failed []string               `json:"failed_fetches,omitempty"`
}

type PrescriptionsPage struct {
	Query         string                `json:"query,omitempty"`
	Prescriptions []common.Prescription `json:"prescriptions"`
	Total         int                   `json:"total"`
	Failed        []string              `json:"failed_fetches,omitempty"`
}

type LabsPage struct {
	LabResults []common.LabResult `json:"lab_results"`
	Pending    int                `json:"pending"`
	Completed  int                `json:"completed"`
	Failed     []string           `json:"failed_fetches,omitempty"`
}

type VitalsPage struct {
	Me     *common.User    `json:"me"`
	Vitals []common.Vitals `json:"vitals"`
	Latest *common.Vitals  `json:"latest,omitempty"`
	Failed []string        `json:"failed_fetches,omitempty"`
}

// MessagesPage data ruang chat; socket dibuka terpisah lewat /ws/consultations/:id.
type MessagesPage struct {
	Me     *common.User `json:"me"`
	Failed []string     `json:"failed_fetches,omitempty"`
}

// NextAppointment janji temu aktif terdekat setelah now.
func NextAppointment(appointments []common.Appointment, now time.Time) *common.Appointment {
	var next *common.Appointment
	for i := range appointments {
		a := &appointments[i]
		if a.Status == common.AppointmentCancelled || a.Status == common.AppointmentCompleted {
			continue
		}
		if !a.AppointmentTime.After(now) {
			continue
		}
		if next == nil || a.AppointmentTime.Before(next.AppointmentTime) {
			next = a
		}
	}
	return next
}

// CountUpcoming jumlah janji temu aktif setelah now.
func CountUpcoming(appointments []common.Appointment, now time.Time) int {
	n := 0
	for _, a := range appointments {
		if a.Status != common.AppointmentCancelled && a.Status != common.AppointmentCompleted && a.AppointmentTime.After(now) {
			n++
		}
	}
	return n
}

// FilterPrescriptions pencarian obat, dosis, atau instruksi.
func FilterPrescriptions(items []common.Prescription, query string) []common.Prescription {
	out := make([]common.Prescription, 0, len(items))
	for _, p := range items {
		if widgets.MatchesAny(query, p.Medication, p.Dosage, p.Instructions, p.Frequency) {
			out = append(out, p)
		}
	}
	return out
}

// LatestVitals pengukuran paling baru.
func LatestVitals(items []common.Vitals) *common.Vitals {
	if len(items) == 0 {
		return nil
	}
	sorted := make([]common.Vitals, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.After(sorted[j].RecordedAt)
	})
	return &sorted[0]
}

// CountLabs jumlah hasil lab pending dan completed.
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
