package models

import (
	"fmt"
	"strings"

	common "github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/widgets"
)

// Stats okupansi tempat tidur.
type Stats struct {
	Total           int     `json:"totalRooms"`
	Available       int     `json:"availableRooms"`
	Occupied        int     `json:"occupiedRooms"`
	Maintenance     int     `json:"maintenanceRooms"`
	OccupancyRate   float64 `json:"occupancyRate"`
	AvailableRate   float64 `json:"availableRate"`
	MaintenanceRate float64 `json:"maintenanceRate"`
}

type RoomsPage struct {
	Query  string             `json:"query,omitempty"`
	Status string             `json:"status,omitempty"`
	Beds   []common.Bed       `json:"beds"`
	Stats  Stats              `json:"stats"`
	Tiles  []widgets.StatTile `json:"tiles"`
	Failed []string           `json:"failed_fetches,omitempty"`
}

// AdmitRequest pasien yang dirawat di sebuah bed.
type AdmitRequest struct {
	PatientID int `json:"patient_id" form:"patient_id" validate:"required,gt=0"`
}

func ComputeStats(beds []common.Bed) Stats {
	s := Stats{Total: len(beds)}
	for _, b := range beds {
		switch b.Status {
		case common.BedAvailable:
			s.Available++
		case common.BedOccupied:
			s.Occupied++
		case common.BedMaintenance:
			s.Maintenance++
		}
	}
	s.OccupancyRate = widgets.Percent(s.Occupied, s.Total)
	s.AvailableRate = widgets.Percent(s.Available, s.Total)
	s.MaintenanceRate = widgets.Percent(s.Maintenance, s.Total)
	return s
}

func Tiles(s Stats) []widgets.StatTile {
	return []widgets.StatTile{
		{Label: "Total Beds", Value: s.Total},
		{Label: "Available", Value: s.Available, Change: fmt.Sprintf("%.1f%% available", s.AvailableRate)},
		{Label: "Occupied", Value: s.Occupied, Change: fmt.Sprintf("%.1f%% occupancy", s.OccupancyRate)},
		{Label: "Maintenance", Value: s.Maintenance, Change: fmt.Sprintf("%.1f%%", s.MaintenanceRate)},
	}
}

// FilterBeds cari bangsal, nomor bed, atau nama pasien; filter status.
func FilterBeds(beds []common.Bed, query, status string) []common.Bed {
	out := make([]common.Bed, 0, len(beds))
	for _, b := range beds {
		if status != "" && !strings.EqualFold(status, "all") && !strings.EqualFold(b.Status, status) {
			continue
		}
		patient := ""
		if b.Patient != nil {
			patient = b.Patient.FullName
		}
		if !widgets.MatchesAny(query, b.WardName, b.BedNumber, patient) {
			continue
		}
		out = append(out, b)
	}
	return out
}
