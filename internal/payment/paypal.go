package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shopora-be/internal/logger"

	"go.uber.org/zap"
)

type paypalGateway struct {
	baseURL    string
	clientID   string
	secret     string
	returnURL  string
	cancelURL  string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

func NewPayPalGateway(baseURL, clientID, secret, returnURL, cancelURL string) Gateway {
	if clientID == "" || secret == "" {
		logger.L().Warn("PayPal credentials are empty")
	}

	return &paypalGateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		clientID:  clientID,
		secret:    secret,
		returnURL: returnURL,
		cancelURL: cancelURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ----------------- OAuth -----------------

func (p *paypalGateway) accessToken(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, "POST",
		p.baseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.clientID, p.secret)
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read paypal token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("paypal token error: %s", string(bodyBytes))
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", fmt.Errorf("paypal token response missing access_token")
	}
	return res.AccessToken, nil
}

// ----------------- CreatePayment -----------------

func (p *paypalGateway) CreatePayment(ctx context.Context, items []Item, total float64) (*CreatePaymentResponse, error) {
	log := logger.FromCtx(ctx).With(
		zap.Float64("amount", total),
		zap.Int("items", len(items)),
	)

	token, err := p.accessToken(ctx)
	if err != nil {
		log.Error("Failed to obtain PayPal access token", zap.Error(err))
		return nil, err
	}

	payItems := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		payItems = append(payItems, map[string]interface{}{
			"name":     it.Name,
			"sku":      it.SKU,
			"price":    formatAmount(it.Price),
			"currency": "USD",
			"quantity": it.Quantity,
		})
	}

	body := map[string]interface{}{
		"intent": "sale",
		"payer": map[string]interface{}{
			"payment_method": "paypal",
		},
		"redirect_urls": map[string]interface{}{
			"return_url": p.returnURL,
			"cancel_url": p.cancelURL,
		},
		"transactions": []map[string]interface{}{
			{
				"item_list": map[string]interface{}{
					"items": payItems,
				},
				"amount": map[string]interface{}{
					"currency": "USD",
					"total":    formatAmount(total),
				},
				"description": "order payment",
			},
		},
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal payment request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		p.baseURL+"/v1/payments/payment", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+token)

	log.Info("Sending payment request to PayPal")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Error("PayPal request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read paypal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("PayPal returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("paypal error: %s", string(bodyBytes))
	}

	var res struct {
		ID    string `json:"id"`
		State string `json:"state"`
		Links []struct {
			Href   string `json:"href"`
			Rel    string `json:"rel"`
			Method string `json:"method"`
		} `json:"links"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding PayPal response", zap.Error(err))
		return nil, err
	}

	var approvalURL string
	for _, link := range res.Links {
		if link.Rel == "approval_url" {
			approvalURL = link.Href
			break
		}
	}
	if approvalURL == "" {
		log.Error("PayPal response missing approval_url", zap.ByteString("response", bodyBytes))
		return nil, fmt.Errorf("paypal response missing approval_url")
	}

	log.Info("PayPal payment created",
		zap.String("payment_id", res.ID),
		zap.String("state", res.State),
	)

	return &CreatePaymentResponse{
		PaymentID:   res.ID,
		ApprovalURL: approvalURL,
	}, nil
}

// ----------------- ExecutePayment -----------------

func (p *paypalGateway) ExecutePayment(ctx context.Context, paymentID, payerID string) (*CaptureResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("payment_id", paymentID),
		zap.String("payer_id", payerID),
	)

	token, err := p.accessToken(ctx)
	if err != nil {
		log.Error("Failed to obtain PayPal access token", zap.Error(err))
		return nil, err
	}

	jsonBody, err := json.Marshal(map[string]string{"payer_id": payerID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST",
		fmt.Sprintf("%s/v1/payments/payment/%s/execute", p.baseURL, paymentID),
		bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+token)

	log.Info("Executing PayPal payment")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Error("PayPal request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, fmt.Errorf("failed to read paypal response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Failed to execute payment",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("paypal execute error: %s", string(bodyBytes))
	}

	var res struct {
		ID    string `json:"id"`
		State string `json:"state"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding PayPal response", zap.Error(err))
		return nil, err
	}

	log.Info("PayPal payment executed", zap.String("state", res.State))

	return &CaptureResult{
		PaymentID: res.ID,
		State:     res.State,
	}, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
