// Package fish provides the client for the Fi$h accounting REST API.
// Every operation is a single blocking request; the remote error message
// is surfaced verbatim when a call fails.
package fish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mattc321/fish-cli/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// APIError is a non-success response from the Fi$h API. Message carries
// the remote-provided message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
}

// Client provides access to the Fi$h API.
type Client struct {
	baseURL    string
	token      string
	clientID   string
	httpClient *http.Client
}

// NewClient creates a new Fi$h API client.
func NewClient(baseURL, token, clientID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		clientID:   clientID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope is the standard response wrapper: {"data": ..., "count": ...}.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Count *int            `json:"count"`
}

// do performs a request and returns the raw response body.
func (c *Client) do(ctx context.Context, method, path, org string, params url.Values, body any) ([]byte, error) {
	u := c.baseURL + "/api/v1" + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Client-Id", c.clientID)
	req.Header.Set("Content-Type", "application/json")
	if org != "" {
		req.Header.Set("X-Org-Id", org)
	}

	log.WithFields(logrus.Fields{"method": method, "path": path}).Debug("API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("connection error: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close response body")
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	return data, nil
}

// newAPIError extracts the remote error message if the body is JSON with a
// "message" field, otherwise uses the raw body.
func newAPIError(status int, body []byte) *APIError {
	var remote struct {
		Message string `json:"message"`
	}
	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &remote); err == nil && remote.Message != "" {
		msg = remote.Message
	}
	return &APIError{StatusCode: status, Message: msg}
}

// doData performs a request and unmarshals the "data" field of the
// response envelope into out.
func (c *Client) doData(ctx context.Context, method, path, org string, params url.Values, body, out any) (int, error) {
	data, err := c.do(ctx, method, path, org, params, body)
	if err != nil {
		return 0, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return 0, fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	if env.Count != nil {
		return *env.Count, nil
	}
	return 0, nil
}

// ListBusinesses lists all businesses visible to the client.
func (c *Client) ListBusinesses(ctx context.Context) ([]Business, error) {
	var out []Business
	_, err := c.doData(ctx, http.MethodGet, "/businesses", "", nil, nil, &out)
	return out, err
}

// ListAccounts lists the chart of accounts for an organization.
func (c *Client) ListAccounts(ctx context.Context, org string) ([]Account, error) {
	var out []Account
	_, err := c.doData(ctx, http.MethodGet, "/accounts", org, nil, nil, &out)
	return out, err
}

// ListVendors lists all vendors for an organization.
func (c *Client) ListVendors(ctx context.Context, org string) ([]Vendor, error) {
	var out []Vendor
	_, err := c.doData(ctx, http.MethodGet, "/vendors", org, nil, nil, &out)
	return out, err
}

// CreateVendor creates a vendor.
func (c *Client) CreateVendor(ctx context.Context, org string, req VendorCreate) (*Vendor, error) {
	var out Vendor
	if _, err := c.doData(ctx, http.MethodPost, "/vendors", org, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCustomers lists all customers for an organization.
func (c *Client) ListCustomers(ctx context.Context, org string) ([]Customer, error) {
	var out []Customer
	_, err := c.doData(ctx, http.MethodGet, "/customers", org, nil, nil, &out)
	return out, err
}

// ListTransactions lists transactions, optionally filtered by fiscal year.
// The second return value is the server-reported total count.
func (c *Client) ListTransactions(ctx context.Context, org, fiscalYear string) ([]TransactionRecord, int, error) {
	var params url.Values
	if fiscalYear != "" {
		params = url.Values{"fiscalYear": {fiscalYear}}
	}
	var out []TransactionRecord
	count, err := c.doData(ctx, http.MethodGet, "/transactions", org, params, nil, &out)
	if err != nil {
		return nil, 0, err
	}
	if count == 0 {
		count = len(out)
	}
	return out, count, nil
}

// CreateTransaction posts a transaction and returns the created record.
func (c *Client) CreateTransaction(ctx context.Context, org string, txn *models.Transaction) (*TransactionRecord, error) {
	var out TransactionRecord
	if _, err := c.doData(ctx, http.MethodPost, "/transactions", org, nil, txn, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListFiscalYears lists the fiscal years of an organization.
func (c *Client) ListFiscalYears(ctx context.Context, org string) ([]FiscalYear, error) {
	var out []FiscalYear
	_, err := c.doData(ctx, http.MethodGet, "/fiscal-years", org, nil, nil, &out)
	return out, err
}

// CreatePaymentApplication links a payment transaction to the bill or
// invoice it pays down.
func (c *Client) CreatePaymentApplication(ctx context.Context, org string, req PaymentApplicationRequest) (*PaymentApplication, error) {
	var out PaymentApplication
	if _, err := c.doData(ctx, http.MethodPost, "/payment-applications", org, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPaymentApplications lists payment applications, optionally filtered
// by transaction ID.
func (c *Client) ListPaymentApplications(ctx context.Context, org, txnID string) ([]PaymentApplication, error) {
	var params url.Values
	if txnID != "" {
		params = url.Values{"transactionId": {txnID}}
	}
	var out []PaymentApplication
	_, err := c.doData(ctx, http.MethodGet, "/payment-applications", org, params, nil, &out)
	return out, err
}

// PaymentStatus reports payment status for a comma-separated list of
// transaction IDs.
func (c *Client) PaymentStatus(ctx context.Context, org, ids string) (map[string]PaymentStatusEntry, error) {
	params := url.Values{"transactionIds": {ids}}
	var out map[string]PaymentStatusEntry
	_, err := c.doData(ctx, http.MethodGet, "/payment-status", org, params, nil, &out)
	return out, err
}

// Report pulls a financial report and returns the raw response body for
// display.
func (c *Client) Report(ctx context.Context, org, reportType string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/reports/"+reportType, org, params, nil)
}

// Dashboard returns the raw dashboard metrics response for display.
func (c *Client) Dashboard(ctx context.Context, org string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/dashboard", org, nil, nil)
}
