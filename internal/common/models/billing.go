package models

import "time"

const (
	InvoicePending   = "pending"
	InvoicePaid      = "paid"
	InvoiceOverdue   = "overdue"
	InvoiceCancelled = "cancelled"
	InvoicePartial   = "partial"

	TransactionPayment = "payment"
	TransactionRefund  = "refund"
	TransactionTopup   = "topup"

	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
	PaymentWallet   = "wallet"
	PaymentCard     = "card"
)

type InvoiceItem struct {
	ID          int     `json:"id,omitempty"`
	InvoiceID   int     `json:"invoice_id,omitempty"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

type Invoice struct {
	ID            int           `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	PatientID     int           `json:"patient_id"`
	Amount        float64       `json:"amount"`
	DueDate       time.Time     `json:"due_date"`
	Status        string        `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	Items         []InvoiceItem `json:"items"`
	Patient       *PatientInfo  `json:"patient,omitempty"`
}

// PatientName nama pasien pada invoice, "Unknown Patient" bila tidak ada.
func (i Invoice) PatientName() string {
	if i.Patient == nil || i.Patient.User.FullName == "" {
		return "Unknown Patient"
	}
	return i.Patient.User.FullName
}

type InvoiceCreate struct {
	PatientID int           `json:"patient_id" validate:"required,gt=0"`
	Amount    float64       `json:"amount" validate:"gt=0"`
	DueDate   time.Time     `json:"due_date" validate:"required"`
	Items     []InvoiceItem `json:"items" validate:"required,min=1,dive"`
}

type Wallet struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patient_id"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WalletTopup struct {
	Amount        float64 `json:"amount" validate:"gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash transfer wallet card"`
	Reference     string  `json:"reference" validate:"required"`
}

type TransactionInvoice struct {
	ID            int    `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
}

type Transaction struct {
	ID            int                 `json:"id"`
	PatientID     int                 `json:"patient_id"`
	Amount        float64             `json:"amount"`
	Type          string              `json:"type"`
	PaymentMethod string              `json:"payment_method"`
	Reference     string              `json:"reference"`
	InvoiceID     *int                `json:"invoice_id,omitempty"`
	CashierName   string              `json:"cashier_name,omitempty"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	Invoice       *TransactionInvoice `json:"invoice,omitempty"`
}

// InvoiceNumber nomor invoice terkait, "-" bila transaksi tidak terkait invoice.
func (t Transaction) InvoiceNumber() string {
	if t.Invoice == nil || t.Invoice.InvoiceNumber == "" {
		return "-"
	}
	return t.Invoice.InvoiceNumber
}
