package models

import (
	"testing"
	"time"

	common "github.com/c14220110/clinic-portal/internal/common/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	invoices := []common.Invoice{
		{ID: 1, Amount: 100000, Status: common.InvoicePaid},
		{ID: 2, Amount: 250000, Status: common.InvoicePending},
		{ID: 3, Amount: 50000, Status: common.InvoiceOverdue},
	}
	transactions := []common.Transaction{
		{Amount: 500000, Type: common.TransactionTopup},
		{Amount: 100000, Type: common.TransactionPayment},
		{Amount: 75000, Type: common.TransactionPayment},
		{Amount: 20000, Type: common.TransactionRefund},
	}

	s := Summarize(invoices, transactions)
	assert.Equal(t, 300000.0, s.PendingPayments)
	assert.Equal(t, 100000.0, s.LastPayment)
	assert.Equal(t, 175000.0, s.TotalSpent)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, WalletSummary{}, Summarize(nil, nil))
}

func TestNextAppointment(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	appts := []common.Appointment{
		{ID: 1, AppointmentTime: now.Add(-time.Hour), Status: common.AppointmentConfirmed},
		{ID: 2, AppointmentTime: now.Add(48 * time.Hour), Status: common.AppointmentPending},
		{ID: 3, AppointmentTime: now.Add(2 * time.Hour), Status: common.AppointmentCancelled},
		{ID: 4, AppointmentTime: now.Add(24 * time.Hour), Status: common.AppointmentConfirmed},
	}

	next := NextAppointment(appts, now)
	require.NotNil(t, next)
	assert.Equal(t, 4, next.ID)
	assert.Equal(t, 2, CountUpcoming(appts, now))
	assert.Nil(t, NextAppointment(nil, now))
}

func TestFilterPrescriptions(t *testing.T) {
	items := []common.Prescription{
		{ID: 1, Medication: "Amoxicillin", Dosage: "500mg"},
		{ID: 2, Medication: "Paracetamol", Instructions: "after meals"},
	}
	assert.Len(t, FilterPrescriptions(items, ""), 2)

	got := FilterPrescriptions(items, "MEALS")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestLatestVitalsAndLabs(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	v := LatestVitals([]common.Vitals{{ID: 1, RecordedAt: t0}, {ID: 2, RecordedAt: t0.Add(time.Hour)}})
	require.NotNil(t, v)
	assert.Equal(t, 2, v.ID)
	assert.Nil(t, LatestVitals(nil))

	pending, completed := CountLabs([]common.LabResult{{Status: "pending"}, {Status: "completed"}, {Status: "completed"}})
	assert.Equal(t, 1, pending)
	assert.Equal(t, 2, completed)
}
