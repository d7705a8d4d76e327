package services

import (
	"context"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/pagefetch"
	patientModels "github.com/c14220110/clinic-portal/internal/patient/models"
	"go.uber.org/zap"
)

// WalletService halaman wallet & billing pasien.
type WalletService struct {
	API *apiclient.Client
	Log *zap.Logger
}

func NewWalletService(api *apiclient.Client, logger *zap.Logger) *WalletService {
	return &WalletService{API: api, Log: logger}
}

// Wallet memuat saldo, invoice, dan transaksi bersamaan lalu menghitung ringkasan.
func (s *WalletService) Wallet(ctx context.Context, tokens apiclient.TokenSource) patientModels.WalletPage {
	api := s.API.WithTokens(tokens)
	var page patientModels.WalletPage

	g := pagefetch.New(s.Log)
	g.Go("wallet", func() (err error) {
		page.Wallet, err = api.GetWallet(ctx)
		return err
	})
	g.Go("invoices", func() (err error) {
		page.Invoices, err = api.GetMyInvoices(ctx)
		return err
	})
	g.Go("transactions", func() (err error) {
		page.Transactions, err = api.GetMyTransactions(ctx)
		return err
	})
	page.Failed = g.Wait()

	page.Summary = patientModels.Summarize(page.Invoices, page.Transactions)
	return page
}

// PayInvoice membayar invoice; metode kosong berarti wallet.
func (s *WalletService) PayInvoice(ctx context.Context, tokens apiclient.TokenSource, invoiceID int, method string) (*models.Invoice, error) {
	if method == "" {
		method = models.PaymentWallet
	}
	return s.API.WithTokens(tokens).PayInvoice(ctx, invoiceID, method)
}

func (s *WalletService) Topup(ctx context.Context, tokens apiclient.TokenSource, in models.WalletTopup) (*models.Transaction, error) {
	return s.API.WithTokens(tokens).TopupWallet(ctx, in)
}
