package services

import (
	"errors"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"
	rzperrors "github.com/razorpay/razorpay-go/errors"
)

// Gateway failure classes. Credentials failures are configuration errors and
// must not be retried; unavailability is transient and safe to retry with
// backoff at the caller's discretion.
var (
	ErrGatewayInvalidRequest = errors.New("invalid order parameters")
	ErrGatewayCredentials    = errors.New("invalid gateway credentials")
	ErrGatewayUnavailable    = errors.New("payment gateway unavailable")
)

const GatewayPaymentCaptured = "captured"

type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

type GatewayPayment struct {
	ID       string
	OrderID  string
	Amount   int64
	Currency string
	Status   string
	Method   string
}

// PaymentGateway is the contract this system expects from the external
// payment processor.
type PaymentGateway interface {
	CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error)
	FetchPayment(paymentID string) (*GatewayPayment, error)
	FetchOrder(orderID string) (*GatewayOrder, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(client *razorpay.Client) PaymentGateway {
	return &razorpayGateway{client: client}
}

func (g *razorpayGateway) CreateOrder(amountMinor int64, currency, receipt string, notes map[string]interface{}) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, classifyGatewayError(err)
	}
	return gatewayOrderFromBody(body), nil
}

func (g *razorpayGateway) FetchPayment(paymentID string) (*GatewayPayment, error) {
	body, err := g.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, classifyGatewayError(err)
	}
	return &GatewayPayment{
		ID:       stringField(body, "id"),
		OrderID:  stringField(body, "order_id"),
		Amount:   intField(body, "amount"),
		Currency: stringField(body, "currency"),
		Status:   stringField(body, "status"),
		Method:   stringField(body, "method"),
	}, nil
}

func (g *razorpayGateway) FetchOrder(orderID string) (*GatewayOrder, error) {
	body, err := g.client.Order.Fetch(orderID, nil, nil)
	if err != nil {
		return nil, classifyGatewayError(err)
	}
	return gatewayOrderFromBody(body), nil
}

// classifyGatewayError folds the SDK's error types into the three failure
// classes the services distinguish. A bad-request response mentioning
// authentication is a key misconfiguration, not a caller mistake.
func classifyGatewayError(err error) error {
	var badReq *rzperrors.BadRequestError
	if errors.As(err, &badReq) {
		if strings.Contains(strings.ToLower(badReq.Error()), "authentication") {
			return fmt.Errorf("%w: %s", ErrGatewayCredentials, badReq.Error())
		}
		return fmt.Errorf("%w: %s", ErrGatewayInvalidRequest, badReq.Error())
	}

	var srvErr *rzperrors.ServerError
	if errors.As(err, &srvErr) {
		return fmt.Errorf("%w: %s", ErrGatewayUnavailable, srvErr.Error())
	}

	var gwErr *rzperrors.GatewayError
	if errors.As(err, &gwErr) {
		return fmt.Errorf("%w: %s", ErrGatewayUnavailable, gwErr.Error())
	}

	return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
}

func gatewayOrderFromBody(body map[string]interface{}) *GatewayOrder {
	return &GatewayOrder{
		ID:       stringField(body, "id"),
		Amount:   intField(body, "amount"),
		Currency: stringField(body, "currency"),
		Receipt:  stringField(body, "receipt"),
		Status:   stringField(body, "status"),
	}
}

func stringField(body map[string]interface{}, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

func intField(body map[string]interface{}, key string) int64 {
	switch v := body[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
