package models

import "time"

type Prescription struct {
	ID             int       `json:"id"`
	PatientID      int       `json:"patient_id"`
	DoctorID       int       `json:"doctor_id"`
	ConsultationID *int      `json:"consultation_id,omitempty"`
	Medication     string    `json:"medication"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Duration       string    `json:"duration"`
	Instructions   string    `json:"instructions,omitempty"`
	Status         string    `json:"status,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type PrescriptionCreate struct {
	PatientID      int    `json:"patient_id" validate:"required,gt=0"`
	DoctorID       int    `json:"doctor_id" validate:"required,gt=0"`
	ConsultationID *int   `json:"consultation_id,omitempty"`
	Medication     string `json:"medication" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Frequency      string `json:"frequency" validate:"required"`
	Duration       string `json:"duration" validate:"required"`
	Instructions   string `json:"instructions,omitempty"`
	Status         string `json:"status,omitempty"`
}

type MedicalRecord struct {
	ID        int        `json:"id"`
	PatientID int        `json:"patient_id"`
	DoctorID  int        `json:"doctor_id"`
	VisitDate *time.Time `json:"visit_date,omitempty"`
	Diagnosis string     `json:"diagnosis"`
	Symptoms  string     `json:"symptoms"`
	Treatment string     `json:"treatment"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type MedicalRecordCreate struct {
	PatientID int        `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int        `json:"doctor_id" validate:"required,gt=0"`
	VisitDate *time.Time `json:"visit_date,omitempty"`
	Diagnosis string     `json:"diagnosis" validate:"required"`
	Symptoms  string     `json:"symptoms" validate:"required"`
	Treatment string     `json:"treatment" validate:"required"`
	Notes     string     `json:"notes,omitempty"`
}

type Vitals struct {
	ID               int       `json:"id"`
	PatientID        int       `json:"patient_id"`
	Weight           *float64  `json:"weight,omitempty"`
	Height           *float64  `json:"height,omitempty"`
	BloodPressure    string    `json:"blood_pressure,omitempty"`
	HeartRate        *int      `json:"heart_rate,omitempty"`
	Temperature      *float64  `json:"temperature,omitempty"`
	OxygenSaturation *int      `json:"oxygen_saturation,omitempty"`
	RecordedAt       time.Time `json:"recorded_at"`
}

type VitalsCreate struct {
	PatientID        int      `json:"patient_id" validate:"required,gt=0"`
	Weight           *float64 `json:"weight,omitempty"`
	Height           *float64 `json:"height,omitempty"`
	BloodPressure    string   `json:"blood_pressure,omitempty"`
	HeartRate        *int     `json:"heart_rate,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	OxygenSaturation *int     `json:"oxygen_saturation,omitempty"`
}

const (
	LabPending   = "pending"
	LabCompleted = "completed"
)

type LabResult struct {
	ID             int       `json:"id"`
	PatientID      int       `json:"patient_id"`
	TestName       string    `json:"test_name"`
	Result         string    `json:"result"`
	Units          string    `json:"units,omitempty"`
	ReferenceRange string    `json:"reference_range,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type LabResultCreate struct {
	PatientID      int    `json:"patient_id" validate:"required,gt=0"`
	TestName       string `json:"test_name" validate:"required"`
	Result         string `json:"result"`
	Units          string `json:"units,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status,omitempty"`
}

type LabResultUpdate struct {
	Result         string `json:"result,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status,omitempty"`
	Units          string `json:"units,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
}

type Consultation struct {
	ID            int            `json:"id"`
	AppointmentID int            `json:"appointment_id"`
	DoctorID      int            `json:"doctor_id"`
	PatientID     int            `json:"patient_id"`
	Symptoms      string         `json:"symptoms"`
	Diagnosis     string         `json:"diagnosis"`
	Notes         string         `json:"notes,omitempty"`
	FollowUpDate  *time.Time     `json:"follow_up_date,omitempty"`
	IsAdmitted    bool           `json:"is_admitted"`
	CreatedAt     time.Time      `json:"created_at"`
	Prescriptions []Prescription `json:"prescriptions,omitempty"`
	LabResults    []LabResult    `json:"lab_results,omitempty"`
}

type ConsultationCreate struct {
	AppointmentID int        `json:"appointment_id" validate:"required,gt=0"`
	DoctorID      int        `json:"doctor_id" validate:"required,gt=0"`
	PatientID     int        `json:"patient_id" validate:"required,gt=0"`
	Symptoms      string     `json:"symptoms" validate:"required"`
	Diagnosis     string     `json:"diagnosis" validate:"required"`
	Notes         string     `json:"notes,omitempty"`
	FollowUpDate  *time.Time `json:"follow_up_date,omitempty"`
	IsAdmitted    bool       `json:"is_admitted"`
}

const (
	ReferralPending  = "pending"
	ReferralAccepted = "accepted"
	ReferralRejected = "rejected"
)

type Referral struct {
	ID           int       `json:"id"`
	FromDoctorID int       `json:"from_doctor_id"`
	ToDoctorID   int       `json:"to_doctor_id"`
	PatientID    int       `json:"patient_id"`
	Reason       string    `json:"reason"`
	Urgency      string    `json:"urgency"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ReferralCreate struct {
	ToDoctorID int    `json:"to_doctor_id" validate:"required,gt=0"`
	PatientID  int    `json:"patient_id" validate:"required,gt=0"`
	Reason     string `json:"reason" validate:"required"`
	Urgency    string `json:"urgency,omitempty" validate:"omitempty,oneof=routine urgent emergency"`
	Notes      string `json:"notes,omitempty"`
}
