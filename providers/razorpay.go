package providers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// RazorpayClient is the token top-up collaborator. The wallet core never
// talks to it directly; the payment controllers create orders through it and
// credit the wallet only after VerifySignature passes.
type RazorpayClient interface {
	KeyID() string
	CreateOrder(amountPaise int64, currency, receipt string, notes map[string]any) (*RazorpayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type razorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

func NewRazorpay() RazorpayClient {
	return &razorpayClient{
		keyID:     os.Getenv("RAZORPAY_KEY_ID"),
		keySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		baseURL:   razorpayBaseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *razorpayClient) KeyID() string {
	return p.keyID
}

func (p *razorpayClient) CreateOrder(amountPaise int64, currency, receipt string, notes map[string]any) (*RazorpayOrder, error) {
	payload := map[string]any{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
		"notes":           notes,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	httpReq, err := http.NewRequest("POST", p.baseURL+"/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.SetBasicAuth(p.keyID, p.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("create order failed, status=%d body=%s", resp.StatusCode, string(bodyBytes))
	}

	var order RazorpayOrder
	if err := json.Unmarshal(bodyBytes, &order); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the checkout callback signature: HMAC-SHA256 over
// "<order_id>|<payment_id>" with the key secret, hex encoded.
func (p *razorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(p.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
