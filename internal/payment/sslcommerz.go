// Package payment integrates the SSLCommerz hosted-checkout gateway.
// A session is one form POST returning the URL the payer's browser is sent
// to; the gateway reports the outcome later through the success/fail
// callback routes.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	sandboxEndpoint = "https://sandbox.sslcommerz.com/gwprocess/v4/api.php"
	liveEndpoint    = "https://securepay.sslcommerz.com/gwprocess/v4/api.php"
)

// Gateway creates a hosted-payment session and returns the checkout URL.
type Gateway interface {
	CreateSession(ctx context.Context, s Session) (string, error)
}

// Session carries the per-order fields; billing and shipping placeholders
// required by the gateway are filled in by the client.
type Session struct {
	Amount        float64
	Currency      string
	TransactionID string
	SuccessURL    string
	FailURL       string
	CancelURL     string
	ProductName   string
	CustomerName  string
	CustomerEmail string
}

type SSLCommerz struct {
	StoreID       string
	StorePassword string
	Endpoint      string
	HTTPClient    *http.Client
}

func NewSSLCommerz(storeID, storePassword string, sandbox bool) *SSLCommerz {
	endpoint := liveEndpoint
	if sandbox {
		endpoint = sandboxEndpoint
	}
	return &SSLCommerz{
		StoreID:       storeID,
		StorePassword: storePassword,
		Endpoint:      endpoint,
		HTTPClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

func (g *SSLCommerz) CreateSession(ctx context.Context, s Session) (string, error) {
	form := url.Values{}
	form.Set("store_id", g.StoreID)
	form.Set("store_passwd", g.StorePassword)
	form.Set("total_amount", strconv.FormatFloat(s.Amount, 'f', 2, 64))
	form.Set("currency", s.Currency)
	form.Set("tran_id", s.TransactionID)
	form.Set("success_url", s.SuccessURL)
	form.Set("fail_url", s.FailURL)
	form.Set("cancel_url", s.CancelURL)
	form.Set("shipping_method", "NO")
	form.Set("product_name", s.ProductName)
	form.Set("product_category", "Healthcare")
	form.Set("product_profile", "general")
	form.Set("cus_name", s.CustomerName)
	form.Set("cus_email", s.CustomerEmail)
	form.Set("cus_add1", "Dhaka")
	form.Set("cus_city", "Dhaka")
	form.Set("cus_postcode", "1000")
	form.Set("cus_country", "Bangladesh")
	form.Set("cus_phone", "01711111111")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sslcommerz request: %w", err)
	}
	defer resp.Body.Close()

	var out sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("sslcommerz response: %w", err)
	}
	if out.Status != "SUCCESS" || out.GatewayPageURL == "" {
		return "", fmt.Errorf("sslcommerz session rejected: %s", out.FailedReason)
	}
	return out.GatewayPageURL, nil
}
