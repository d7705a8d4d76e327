package models

import "time"

const (
	BedAvailable   = "available"
	BedOccupied    = "occupied"
	BedMaintenance = "maintenance"
)

type BedPatient struct {
	ID       int    `json:"id,omitempty"`
	FullName string `json:"full_name"`
}

type Bed struct {
	ID        int         `json:"id"`
	WardName  string      `json:"ward_name"`
	BedNumber string      `json:"bed_number"`
	Status    string      `json:"status"`
	PatientID *int        `json:"patient_id,omitempty"`
	Patient   *BedPatient `json:"patient,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type BedCreate struct {
	WardName  string `json:"ward_name" validate:"required"`
	BedNumber string `json:"bed_number" validate:"required"`
	Status    string `json:"status,omitempty" validate:"omitempty,oneof=available occupied maintenance"`
}

type Medicine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Dosage   string `json:"dosage"`
	Stock    int    `json:"stock"`
	Category string `json:"category"`
}
