package services

import (
	"context"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	"github.com/c14220110/clinic-portal/internal/common/widgets"
	pharmacyModels "github.com/c14220110/clinic-portal/internal/pharmacy/models"
	"go.uber.org/zap"
)

// PharmacyService stok obat dan antrean resep.
type PharmacyService struct {
	API *apiclient.Client
	Log *zap.Logger
}

func NewPharmacyService(api *apiclient.Client, logger *zap.Logger) *PharmacyService {
	return &PharmacyService{API: api, Log: logger}
}

func (s *PharmacyService) Dashboard(ctx context.Context, tokens apiclient.TokenSource) pharmacyModels.DashboardPage {
	api := s.API.WithTokens(tokens)
	var page pharmacyModels.DashboardPage

	var inventory []models.Medicine
	var prescriptions []models.Prescription
	g := pagefetch.New(s.Log)
	g.Go("inventory", func() (err error) {
		inventory, err = api.GetInventory(ctx)
		return err
	})
	g.Go("prescriptions", func() (err error) {
		prescriptions, err = api.GetPrescriptions(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.LowStock = pharmacyModels.LowStock(inventory)
	page.Pending = pharmacyModels.FilterPrescriptions(prescriptions, pharmacyModels.PrescriptionPending)
	page.Tiles = []widgets.StatTile{
		{Label: "Medicines", Value: len(inventory)},
		{Label: "Low Stock", Value: len(page.LowStock)},
		{Label: "Pending Prescriptions", Value: len(page.Pending)},
	}
	return page
}

func (s *PharmacyService) Inventory(ctx context.Context, tokens apiclient.TokenSource, query, category string) pharmacyModels.InventoryPage {
	api := s.API.WithTokens(tokens)
	page := pharmacyModels.InventoryPage{Query: query, Category: category}

	var all []models.Medicine
	g := pagefetch.New(s.Log)
	g.Go("inventory", func() (err error) {
		all, err = api.GetInventory(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.Categories = pharmacyModels.Categories(all)
	page.LowStock = len(pharmacyModels.LowStock(all))
	page.Items = pharmacyModels.FilterInventory(all, query, category)
	return page
}

// Prescription memuat resep dan inventory bersamaan untuk cek stok.
func (s *PharmacyService) Prescription(ctx context.Context, tokens apiclient.TokenSource, id int) pharmacyModels.PrescriptionPage {
	api := s.API.WithTokens(tokens)
	var page pharmacyModels.PrescriptionPage

	var inventory []models.Medicine
	g := pagefetch.New(s.Log)
	g.Go("prescription", func() (err error) {
		page.Prescription, err = api.GetPrescription(ctx, id)
		return err
	})
	g.Go("inventory", func() (err error) {
		inventory, err = api.GetInventory(ctx)
		return err
	})
	page.Failed = g.Wait()

	if page.Prescription != nil {
		page.Stock = pharmacyModels.FindMedicine(inventory, page.Prescription.Medication)
	}
	return page
}

func (s *PharmacyService) Prescriptions(ctx context.Context, tokens apiclient.TokenSource, status string) pharmacyModels.PrescriptionsPage {
	api := s.API.WithTokens(tokens)
	page := pharmacyModels.PrescriptionsPage{Status: status}

	var all []models.Prescription
	g := pagefetch.New(s.Log)
	g.Go("prescriptions", func() (err error) {
		all, err = api.GetPrescriptions(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.Counts = pharmacyModels.CountPrescriptions(all)
	page.Prescriptions = pharmacyModels.FilterPrescriptions(all, status)
	return page
}
