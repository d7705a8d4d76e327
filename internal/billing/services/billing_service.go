package services

import (
	"context"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	billingModels "github.com/c14220110/clinic-portal/internal/billing/models"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	"go.uber.org/zap"
)

// BillingService halaman kasir: invoice, transaksi, dan pembayaran.
type BillingService struct {
	API *apiclient.Client
	Log *zap.Logger
}

func NewBillingService(api *apiclient.Client, logger *zap.Logger) *BillingService {
	return &BillingService{API: api, Log: logger}
}

// Page memuat invoices dan transactions bersamaan. Stats dihitung dari seluruh
// invoice, filter hanya berlaku untuk daftar.
func (s *BillingService) Page(ctx context.Context, tokens apiclient.TokenSource, query, status string) billingModels.BillingPage {
	api := s.API.WithTokens(tokens)
	page := billingModels.BillingPage{Query: query, Status: status}

	var invoices []models.Invoice
	g := pagefetch.New(s.Log)
	g.Go("invoices", func() (err error) {
		invoices, err = api.GetInvoices(ctx)
		return err
	})
	g.Go("transactions", func() (err error) {
		page.Transactions, err = api.GetMyTransactions(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.Stats = billingModels.ComputeStats(invoices, page.Transactions)
	page.Invoices = billingModels.FilterInvoices(invoices, query, status)
	return page
}

func (s *BillingService) CreateInvoice(ctx context.Context, tokens apiclient.TokenSource, in models.InvoiceCreate) (*models.Invoice, error) {
	inv, err := s.API.WithTokens(tokens).CreateInvoice(ctx, in)
	if err != nil {
		return nil, err
	}
	s.Log.Info("invoice created", zap.Int("invoice_id", inv.ID), zap.Int("patient_id", in.PatientID))
	return inv, nil
}

// Pay membayar invoice; metode default cash.
func (s *BillingService) Pay(ctx context.Context, tokens apiclient.TokenSource, id int, method string) (*models.Invoice, error) {
	if method == "" {
		method = models.PaymentCash
	}
	return s.API.WithTokens(tokens).PayInvoice(ctx, id, method)
}
