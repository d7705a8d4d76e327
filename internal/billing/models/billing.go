package models

import (
	"strings"

	common "github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/c14220110/clinic-portal/internal/common/widgets"
)

// Stats ringkasan keuangan halaman billing.
type Stats struct {
	TotalRevenue       float64 `json:"totalRevenue"`
	PendingAmount      float64 `json:"pendingAmount"`
	WalletTransactions int     `json:"walletTransactions"`
	CashPayments       float64 `json:"cashPayments"`
	TransferPayments   float64 `json:"transferPayments"`
	CardPayments       float64 `json:"cardPayments"`
}

type BillingPage struct {
	Query        string               `json:"query,omitempty"`
	Status       string               `json:"status,omitempty"`
	Invoices     []common.Invoice     `json:"invoices"`
	Transactions []common.Transaction `json:"transactions"`
	Stats        Stats                `json:"stats"`
	Failed       []string             `json:"failed_fetches,omitempty"`
}

// PayRequest pembayaran invoice di kasir.
type PayRequest struct {
	PaymentMethod string `json:"payment_method" form:"payment_method" validate:"omitempty,oneof=cash transfer wallet card"`
}

// ComputeStats menghitung Stats dari seluruh invoice dan transaksi.
func ComputeStats(invoices []common.Invoice, transactions []common.Transaction) Stats {
	var s Stats
	for _, inv := range invoices {
		switch inv.Status {
		case common.InvoicePaid:
			s.TotalRevenue += inv.Amount
		case common.InvoicePending, common.InvoiceOverdue:
			s.PendingAmount += inv.Amount
		}
	}
	for _, tx := range transactions {
		if tx.Type == common.TransactionTopup {
			s.WalletTransactions++
		}
		switch tx.PaymentMethod {
		case common.PaymentCash:
			s.CashPayments += tx.Amount
		case common.PaymentTransfer:
			s.TransferPayments += tx.Amount
		case common.PaymentCard:
			s.CardPayments += tx.Amount
		}
	}
	return s
}

// FilterInvoices cari nomor invoice atau nama pasien; status "" atau "all" berarti semua.
func FilterInvoices(items []common.Invoice, query, status string) []common.Invoice {
	out := make([]common.Invoice, 0, len(items))
	for _, inv := range items {
		if status != "" && !strings.EqualFold(status, "all") && inv.Status != status {
			continue
		}
		if !widgets.MatchesAny(query, inv.InvoiceNumber, inv.PatientName()) {
			continue
		}
		out = append(out, inv)
	}
	return out
}
