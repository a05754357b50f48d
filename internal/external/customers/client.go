// Package customers — HTTP-клиент внешнего сервиса клиентов.
//
// Сервис нам не принадлежит и считается ненадёжным: недоступность,
// таймаут и 404 — штатные исходы, которые превращаются в «снимка нет»,
// а не в ошибку вызывающего.
package customers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports"
	"github.com/Gunvolt24/riskgate/pkg/metrics"
)

var _ ports.CustomerProvider = (*Client)(nil)

// Client — реализация ports.CustomerProvider поверх net/http.
type Client struct {
	base string
	http *http.Client
	log  ports.Logger
}

// New - конструктор Client. timeout ограничивает каждый запрос целиком.
func New(baseURL string, timeout time.Duration, log ports.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// CustomerByID — снимок клиента. (nil, nil) при 404 и при любой сетевой
// проблеме: внешняя система не является источником отказов для ядра.
func (c *Client) CustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.ExternalCustomer, error) {
	url := fmt.Sprintf("%s/customers/%s", c.base, customerID)

	body, status, err := c.do(ctx, url)
	if err != nil {
		metrics.ExternalRequests.WithLabelValues("customer", "error").Inc()
		c.log.Warnf(ctx, "customers: fetch %s failed: %v", customerID, err)
		return nil, nil
	}
	if status == http.StatusNotFound {
		metrics.ExternalRequests.WithLabelValues("customer", "not_found").Inc()
		return nil, nil
	}
	if status != http.StatusOK {
		metrics.ExternalRequests.WithLabelValues("customer", "error").Inc()
		c.log.Warnf(ctx, "customers: fetch %s: unexpected status %d", customerID, status)
		return nil, nil
	}

	var cust domain.ExternalCustomer
	if err := json.Unmarshal(body, &cust); err != nil {
		metrics.ExternalRequests.WithLabelValues("customer", "error").Inc()
		c.log.Warnf(ctx, "customers: decode %s failed: %v", customerID, err)
		return nil, nil
	}
	if cust.ID == uuid.Nil {
		cust.ID = customerID
	}
	if level, perr := domain.ParseRiskLevel(string(cust.Risk)); perr == nil {
		cust.Risk = level
	} else {
		// Неизвестный уровень риска от удалённой системы — приводим к LOW.
		c.log.Warnf(ctx, "customers: %s: unknown risk %q, defaulting to LOW", customerID, cust.Risk)
		cust.Risk = domain.RiskLow
	}
	if cust.ValidatedAt.IsZero() {
		cust.ValidatedAt = time.Now().UTC()
	}

	metrics.ExternalRequests.WithLabelValues("customer", "ok").Inc()
	return &cust, nil
}

// riskResponse — ответ выделенного эндпоинта риска.
type riskResponse struct {
	RiskLevel string `json:"risk_level"`
}

// RiskLevelByID — уровень риска с выделенного эндпоинта;
// ("", false, nil), если данных нет или сервис недоступен.
func (c *Client) RiskLevelByID(ctx context.Context, customerID uuid.UUID) (domain.RiskLevel, bool, error) {
	url := fmt.Sprintf("%s/customers/%s/risk-level", c.base, customerID)

	body, status, err := c.do(ctx, url)
	if err != nil {
		metrics.ExternalRequests.WithLabelValues("risk", "error").Inc()
		c.log.Warnf(ctx, "customers: risk fetch %s failed: %v", customerID, err)
		return "", false, nil
	}
	if status == http.StatusNotFound {
		metrics.ExternalRequests.WithLabelValues("risk", "not_found").Inc()
		return "", false, nil
	}
	if status != http.StatusOK {
		metrics.ExternalRequests.WithLabelValues("risk", "error").Inc()
		c.log.Warnf(ctx, "customers: risk fetch %s: unexpected status %d", customerID, status)
		return "", false, nil
	}

	var resp riskResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.ExternalRequests.WithLabelValues("risk", "error").Inc()
		c.log.Warnf(ctx, "customers: risk decode %s failed: %v", customerID, err)
		return "", false, nil
	}

	level, err := domain.ParseRiskLevel(resp.RiskLevel)
	if err != nil {
		// Как и со снимком: неизвестная строка риска — LOW, а не отказ.
		c.log.Warnf(ctx, "customers: %s: unknown risk %q, defaulting to LOW", customerID, resp.RiskLevel)
		level = domain.RiskLow
	}

	metrics.ExternalRequests.WithLabelValues("risk", "ok").Inc()
	return level, true, nil
}

// do — GET с контекстом; тело читается целиком при любом статусе.
func (c *Client) do(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, nil
}
