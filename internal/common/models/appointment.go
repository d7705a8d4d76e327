package models

import "time"

const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"

	AppointmentOnline  = "online"
	AppointmentOffline = "offline"
)

type Appointment struct {
	ID                      int          `json:"id"`
	PatientID               int          `json:"patient_id"`
	DoctorID                int          `json:"doctor_id"`
	AppointmentTime         time.Time    `json:"appointment_time"`
	Type                    string       `json:"type,omitempty"`
	CommunicationPreference string       `json:"communication_preference,omitempty"`
	Reason                  string       `json:"reason,omitempty"`
	Notes                   string       `json:"notes,omitempty"`
	Status                  string       `json:"status"`
	MeetingLink             string       `json:"meeting_link,omitempty"`
	CreatedAt               time.Time    `json:"created_at"`
	Doctor                  *DoctorInfo  `json:"doctor,omitempty"`
	Patient                 *PatientInfo `json:"patient,omitempty"`
}

// PatientName nama pasien bila relasi ikut dikirim.
func (a Appointment) PatientName() string {
	if a.Patient == nil {
		return ""
	}
	return a.Patient.User.FullName
}

// DoctorName nama dokter bila relasi ikut dikirim.
func (a Appointment) DoctorName() string {
	if a.Doctor == nil {
		return ""
	}
	return a.Doctor.User.FullName
}

type AppointmentCreate struct {
	DoctorID                int       `json:"doctor_id" validate:"required,gt=0"`
	AppointmentTime         time.Time `json:"appointment_time" validate:"required"`
	Type                    string    `json:"type,omitempty" validate:"omitempty,oneof=online offline"`
	CommunicationPreference string    `json:"communication_preference,omitempty"`
	Reason                  string    `json:"reason,omitempty"`
	Notes                   string    `json:"notes,omitempty"`
}

type AppointmentUpdate struct {
	Status          string     `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	MeetingLink     string     `json:"meeting_link,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	AppointmentTime *time.Time `json:"appointment_time,omitempty"`
}

type AttendanceLog struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
}

type DashboardStats struct {
	AppointmentsToday int `json:"appointments_today"`
	AppointmentsDelta int `json:"appointments_delta"`
	ActivePatients    int `json:"active_patients"`
	PatientsDelta     int `json:"patients_delta"`
	PendingLabs       int `json:"pending_labs"`
	LabsDelta         int `json:"labs_delta"`
	AvailableBeds     int `json:"available_beds"`
	BedsDelta         int `json:"beds_delta"`
}
