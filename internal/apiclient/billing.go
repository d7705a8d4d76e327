package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/c14220110/clinic-portal/internal/common/models"
)

func (c *Client) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	var out []models.Invoice
	if err := c.get(ctx, "/billing/invoices", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMyInvoices(ctx context.Context) ([]models.Invoice, error) {
	var out []models.Invoice
	if err := c.get(ctx, "/billing/invoices/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateInvoice(ctx context.Context, in models.InvoiceCreate) (*models.Invoice, error) {
	var out models.Invoice
	if err := c.post(ctx, "/billing/invoices", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PayInvoice PUT /billing/invoices/{id}/pay?payment_method=<method> tanpa body.
func (c *Client) PayInvoice(ctx context.Context, id int, paymentMethod string) (*models.Invoice, error) {
	query := url.Values{}
	query.Set("payment_method", paymentMethod)

	var out models.Invoice
	path := fmt.Sprintf("/billing/invoices/%d/pay", id)
	if err := c.send(ctx, http.MethodPut, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetWallet(ctx context.Context) (*models.Wallet, error) {
	var out models.Wallet
	if err := c.get(ctx, "/billing/wallet", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TopupWallet(ctx context.Context, in models.WalletTopup) (*models.Transaction, error) {
	var out models.Transaction
	if err := c.post(ctx, "/billing/wallet/topup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetMyTransactions(ctx context.Context) ([]models.Transaction, error) {
	var out []models.Transaction
	if err := c.get(ctx, "/billing/transactions/my", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetInventory(ctx context.Context) ([]models.Medicine, error) {
	var out []models.Medicine
	if err := c.get(ctx, "/pharmacy/inventory", &out); err != nil {
		return nil, err
	}
	return out, nil
}
