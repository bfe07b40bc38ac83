package hostval

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/custdesk/backend/internal/domain/customer"
)

// maxResponseSize caps the host response read; the host program writes
// a single line of at most 500 characters.
const maxResponseSize = 4096

// Client calls the legacy host validation bridge over HTTP.
// The bridge invokes the host validation program and relays its
// textual response verbatim.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new host validation client
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type validateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

// Validate submits the customer's fields to the host validation program
// and parses its textual response. Transport faults are folded into a
// failed result; callers never see a transport-level error.
func (c *Client) Validate(ctx context.Context, cust *customer.Customer) customer.ValidationResult {
	c.logger.Info("calling host validation program",
		zap.String("endpoint", c.endpoint),
		zap.String("tax_id", cust.TaxID),
	)

	body, err := json.Marshal(validateRequest{
		Name:    cust.Name,
		Phone:   cust.Phone,
		Email:   cust.Email,
		Address: cust.Address,
		TaxID:   cust.TaxID,
	})
	if err != nil {
		return c.unreachable(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.unreachable(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.unreachable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return c.unreachable(err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("host validation bridge returned unexpected status",
			zap.Int("status", resp.StatusCode),
		)
		return customer.ValidationResult{
			Valid:      false,
			Message:    "Host validation system error",
			Violations: []string{"Unable to connect to host validation system"},
		}
	}

	result := ParseResponse(string(bytes.TrimSpace(raw)))

	c.logger.Info("host validation result",
		zap.Bool("valid", result.Valid),
		zap.String("message", result.Message),
	)

	return result
}

func (c *Client) unreachable(err error) customer.ValidationResult {
	c.logger.Error("error calling host validation program", zap.Error(err))
	return customer.ValidationResult{
		Valid:      false,
		Message:    "Host validation system error",
		Violations: []string{"Unable to connect to host validation system"},
	}
}
