package models

import (
	"sort"
	"strings"

	common "github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/widgets"
)

// LowStockThreshold stok di bawah nilai ini ditandai menipis.
const LowStockThreshold = 10

// PrescriptionPending status resep yang belum diserahkan.
const PrescriptionPending = "pending"

type DashboardPage struct {
	Tiles    []widgets.StatTile    `json:"tiles"`
	LowStock []common.Medicine     `json:"low_stock"`
	Pending  []common.Prescription `json:"pending"`
	Failed   []string              `json:"failed_fetches,omitempty"`
}

type InventoryPage struct {
	Query      string            `json:"query,omitempty"`
	Category   string            `json:"category,omitempty"`
	Items      []common.Medicine `json:"items"`
	Categories []string          `json:"categories"`
	LowStock   int               `json:"low_stock"`
	Failed     []string          `json:"failed_fetches,omitempty"`
}

type PrescriptionsPage struct {
	Status        string                `json:"status,omitempty"`
	Prescriptions []common.Prescription `json:"prescriptions"`
	Counts        map[string]int        `json:"counts"`
	Failed        []string              `json:"failed_fetches,omitempty"`
}

// PrescriptionPage satu resep beserta stok obatnya.
type PrescriptionPage struct {
	Prescription *common.Prescription `json:"prescription"`
	Stock        *common.Medicine     `json:"stock,omitempty"`
	Failed       []string             `json:"failed_fetches,omitempty"`
}

func IsLowStock(m common.Medicine) bool {
	return m.Stock < LowStockThreshold
}

// LowStock obat dengan stok menipis, stok terkecil lebih dulu.
func LowStock(items []common.Medicine) []common.Medicine {
	out := make([]common.Medicine, 0)
	for _, m := range items {
		if IsLowStock(m) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Stock < out[j].Stock })
	return out
}

// FilterInventory cari nama atau dosis, dan kategori (case-insensitive).
func FilterInventory(items []common.Medicine, query, category string) []common.Medicine {
	out := make([]common.Medicine, 0, len(items))
	for _, m := range items {
		if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(m.Category, category) {
			continue
		}
		if !widgets.MatchesAny(query, m.Name, m.Dosage) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FindMedicine obat di inventory dengan nama sama (case-insensitive).
func FindMedicine(items []common.Medicine, name string) *common.Medicine {
	for i := range items {
		if strings.EqualFold(strings.TrimSpace(items[i].Name), strings.TrimSpace(name)) {
			return &items[i]
		}
	}
	return nil
}

// Categories daftar kategori unik terurut.
func Categories(items []common.Medicine) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, m := range items {
		if m.Category == "" || seen[m.Category] {
			continue
		}
		seen[m.Category] = true
		out = append(out, m.Category)
	}
	sort.Strings(out)
	return out
}

// PrescriptionStatus status resep; kosong dianggap pending.
func PrescriptionStatus(p common.Prescription) string {
	if p.Status == "" {
		return PrescriptionPending
	}
	return strings.ToLower(p.Status)
}

func FilterPrescriptions(items []common.Prescription, status string) []common.Prescription {
	out := make([]common.Prescription, 0, len(items))
	for _, p := range items {
		if status != "" && !strings.EqualFold(status, "all") && PrescriptionStatus(p) != strings.ToLower(status) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func CountPrescriptions(items []common.Prescription) map[string]int {
	out := map[string]int{}
	for _, p := range items {
		out[PrescriptionStatus(p)]++
	}
	return out
}
