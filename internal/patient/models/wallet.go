package models

import common "github.com/c14220110/clinic-portal/internal/common/models"

// WalletSummary ringkasan kartu di halaman wallet pasien.
type WalletSummary struct {
	PendingPayments float64 `json:"pendingPayments"`
	LastPayment     float64 `json:"lastPayment"`
	TotalSpent      float64 `json:"totalSpent"`
}

type WalletPage struct {
	Wallet       *common.Wallet       `json:"wallet"`
	Invoices     []common.Invoice     `json:"invoices"`
	Transactions []common.Transaction `json:"transactions"`
	Summary      WalletSummary        `json:"summary"`
	Failed       []string             `json:"failed_fetches,omitempty"`
}

// PayInvoiceRequest metode kosong berarti bayar dari wallet.
type PayInvoiceRequest struct {
	PaymentMethod string `json:"payment_method" form:"payment_method" validate:"omitempty,oneof=cash transfer wallet card"`
}

// Summarize menghitung ringkasan wallet:
// pendingPayments = jumlah invoice yang belum paid,
// lastPayment = nominal transaksi payment pertama dalam urutan dari backend,
// totalSpent = jumlah semua transaksi payment.
func Summarize(invoices []common.Invoice, transactions []common.Transaction) WalletSummary {
	var s WalletSummary
	for _, inv := range invoices {
		if inv.Status != common.InvoicePaid {
			s.PendingPayments += inv.Amount
		}
	}
	seenPayment := false
	for _, tx := range transactions {
		if tx.Type != common.TransactionPayment {
			continue
		}
		if !seenPayment {
			s.LastPayment = tx.Amount
			seenPayment = true
		}
		s.TotalSpent += tx.Amount
	}
	return s
}
