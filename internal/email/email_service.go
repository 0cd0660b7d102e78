package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NewOrderLine is one item row in the vendor notification email.
type NewOrderLine struct {
	Title     string
	Quantity  int32
	UnitPrice decimal.Decimal
}

// NewOrderEmail carries everything the vendor notification needs: the order
// identity, the items, and the fee breakdown down to net earnings.
type NewOrderEmail struct {
	OrderNumber    string
	Lines          []NewOrderLine
	Subtotal       decimal.Decimal
	PlatformFee    decimal.Decimal
	PaymentFee     decimal.Decimal
	VendorEarnings decimal.Decimal
}

//go:generate mockgen -source=email_service.go -destination=../mock/email/email_service_mock.go -package=mock
type Service interface {
	SendNewOrderEmail(ctx context.Context, to, storeName string, order NewOrderEmail) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	baseURL   string
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "onboarding@resend.dev"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		baseURL:   "https://api.resend.com",
	}, nil
}

func NewNoopService() Service {
	return &noopService{}
}

func (s *resendService) SendNewOrderEmail(ctx context.Context, to, storeName string, order NewOrderEmail) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p><p>You have a new order <strong>%s</strong>:</p><ul>", storeName, order.OrderNumber)
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "<li>%d &times; %s @ $%s</li>", line.Quantity, line.Title, line.UnitPrice.StringFixed(2))
	}
	fmt.Fprintf(&b, "</ul><p>Subtotal: $%s<br>Platform fee: -$%s<br>Payment processing: -$%s<br><strong>Your earnings: $%s</strong></p>",
		order.Subtotal.StringFixed(2),
		order.PlatformFee.StringFixed(2),
		order.PaymentFee.StringFixed(2),
		order.VendorEarnings.StringFixed(2),
	)

	subject := fmt.Sprintf("New order %s", order.OrderNumber)
	return s.send(ctx, to, subject, b.String())
}

func (s *resendService) send(ctx context.Context, to, subject, html string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		msg := strings.TrimSpace(string(respBody))
		if len(msg) > 500 {
			msg = msg[:500]
		}
		if msg == "" {
			return fmt.Errorf("resend API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, msg)
	}

	return nil
}

type noopService struct{}

func (s *noopService) SendNewOrderEmail(_ context.Context, _, _ string, _ NewOrderEmail) error {
	return nil
}
