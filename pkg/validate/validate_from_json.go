package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/internal/ports"
)

// ValidateCustomerFromJSON — валидация снимка клиента из JSON.
func ValidateCustomerFromJSON(ctx context.Context, validator ports.CustomerValidator, raw []byte) (*domain.ExternalCustomer, error) {
	var customer domain.ExternalCustomer
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&customer); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
