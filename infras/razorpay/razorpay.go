package razorpay

//go:generate go run go.uber.org/mock/mockgen -source=./razorpay.go -destination=./mocks/razorpay_mock.go -package=mocks

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"bagpackers/config"
	"bagpackers/infras/otel"
	"bagpackers/shared/constant"
)

// CreateOrderRequest is the order payload sent to the gateway. Amount is in
// minor units (paise).
type CreateOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Order is the gateway's order representation.
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Razorpay is the payment gateway client. Checkout happens on the client side
// against the gateway directly; the backend only creates orders and verifies
// the signature the checkout hands back.
type Razorpay interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type razorpayImpl struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Razorpay {
	return &razorpayImpl{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Razorpay.TimeoutSeconds) * time.Second,
		},
		otel: ot,
	}
}

func (r *razorpayImpl) CreateOrder(ctx context.Context, req CreateOrderRequest) (order Order, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelGatewayScopeName, constant.OtelGatewayScopeName+".CreateOrder")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"razorpay.receipt":  req.Receipt,
		"razorpay.currency": req.Currency,
	})

	body, err := json.Marshal(req)
	if err != nil {
		return order, fmt.Errorf("failed to marshal order request: %w", err)
	}

	url := r.config.External.Razorpay.BaseURL + "/v1/orders"

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return order, fmt.Errorf("failed to build order request: %w", err)
	}

	httpReq.Header.Set("Content-Type", constant.ContentTypeJSON)
	httpReq.SetBasicAuth(r.config.External.Razorpay.KeyID, r.config.External.Razorpay.KeySecret)

	resp, err := r.client.Do(httpReq)
	if err != nil {
		log.Error().Err(err).Msg("failed to call razorpay order endpoint")

		return order, fmt.Errorf("failed to call razorpay order endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr != nil {
			return order, fmt.Errorf("razorpay order creation failed with status %d", resp.StatusCode)
		}

		log.Error().
			Int("status", resp.StatusCode).
			Str("code", apiErr.Error.Code).
			Str("description", apiErr.Error.Description).
			Msg("razorpay rejected order creation")

		return order, fmt.Errorf("razorpay order creation failed: %s", apiErr.Error.Description)
	}

	if err = json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return order, fmt.Errorf("failed to decode razorpay order response: %w", err)
	}

	return order, nil
}

// VerifySignature checks the checkout callback signature: hex HMAC-SHA256 of
// "<orderID>|<paymentID>" keyed with the API secret, compared in constant time.
func (r *razorpayImpl) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(r.config.External.Razorpay.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))

	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
