package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/c14220110/clinic-portal/internal/apiclient"
	"github.com/c14220110/clinic-portal/internal/common/models"
)

func newBackend(t *testing.T, routes map[string]interface{}) (*[]url.Values, *apiclient.Client) {
	var mu sync.Mutex
	queries := &[]url.Values{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			mu.Lock()
			*queries = append(*queries, r.URL.Query())
			mu.Unlock()
		}
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.Error(w, `{"detail":"Not Found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return queries, apiclient.New(srv.URL, zap.NewNop())
}

var token = apiclient.StaticToken("cashier-token")

func TestBillingService_PayDefaultsToCash(t *testing.T) {
	queries, api := newBackend(t, map[string]interface{}{
		"PUT /billing/invoices/5/pay": models.Invoice{ID: 5, Status: "paid"},
	})
	svc := NewBillingService(api, zap.NewNop())

	inv, err := svc.Pay(context.Background(), token, 5, "")
	require.NoError(t, err)
	assert.Equal(t, 5, inv.ID)

	_, err = svc.Pay(context.Background(), token, 5, "transfer")
	require.NoError(t, err)

	require.Len(t, *queries, 2)
	assert.Equal(t, "cash", (*queries)[0].Get("payment_method"))
	assert.Equal(t, "transfer", (*queries)[1].Get("payment_method"))
}

func TestBillingService_PayForwardsBackendError(t *testing.T) {
	_, api := newBackend(t, map[string]interface{}{})

	_, err := NewBillingService(api, zap.NewNop()).Pay(context.Background(), token, 5, "")
	require.Error(t, err)
	assert.True(t, apiclient.IsStatus(err, http.StatusNotFound))
}

func TestBillingService_PageStatsIgnoreFilter(t *testing.T) {
	_, api := newBackend(t, map[string]interface{}{
		"GET /billing/invoices": []models.Invoice{
			{ID: 1, InvoiceNumber: "INV-1", Amount: 100, Status: "paid"},
			{ID: 2, InvoiceNumber: "INV-2", Amount: 60, Status: "pending"},
		},
		"GET /billing/transactions/my": []models.Transaction{
			{ID: 1, Amount: 100, Type: "payment", PaymentMethod: "cash"},
			{ID: 2, Amount: 20, Type: "topup", PaymentMethod: "transfer"},
		},
	})

	page := NewBillingService(api, zap.NewNop()).Page(context.Background(), token, "", "pending")
	assert.Empty(t, page.Failed)
	require.Len(t, page.Invoices, 1)
	assert.Equal(t, 2, page.Invoices[0].ID)
	assert.Equal(t, 100.0, page.Stats.TotalRevenue)
	assert.Equal(t, 60.0, page.Stats.PendingAmount)
	assert.Equal(t, 1, page.Stats.WalletTransactions)
}
