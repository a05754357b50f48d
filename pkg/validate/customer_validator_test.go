package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/riskgate/internal/domain"
	"github.com/Gunvolt24/riskgate/pkg/validate"
)

func validCustomer() *domain.ExternalCustomer {
	return &domain.ExternalCustomer{
		ID:          uuid.New(),
		Name:        "Acme LLC",
		Email:       "ops@acme.test",
		PhoneNumber: "+70000000000",
		Active:      true,
		Risk:        domain.RiskLow,
		ValidatedAt: time.Date(2025, 11, 26, 6, 22, 19, 0, time.UTC),
	}
}

func TestCustomerValidator_Validate(t *testing.T) {
	v := validate.NewCustomerValidator()
	ctx := context.Background()

	t.Run("valid customer", func(t *testing.T) {
		c := validCustomer()
		if err := v.Validate(ctx, c); err != nil {
			t.Fatalf("expected valid customer, got: %v", err)
		}
	})

	type testCase struct {
		name         string
		makeCustomer func() *domain.ExternalCustomer
		msg          string
	}

	cases := []testCase{
		{
			name:         "nil customer",
			makeCustomer: func() *domain.ExternalCustomer { return nil },
			msg:          "nil",
		},
		{
			name: "zero id",
			makeCustomer: func() *domain.ExternalCustomer {
				c := validCustomer()
				c.ID = uuid.Nil
				return c
			},
			msg: "customer_id",
		},
		{
			name: "empty name",
			makeCustomer: func() *domain.ExternalCustomer {
				c := validCustomer()
				c.Name = ""
				return c
			},
			msg: "name",
		},
		{
			name: "unknown risk",
			makeCustomer: func() *domain.ExternalCustomer {
				c := validCustomer()
				c.Risk = "SEVERE"
				return c
			},
			msg: "risk_level",
		},
		{
			name: "bad email",
			makeCustomer: func() *domain.ExternalCustomer {
				c := validCustomer()
				c.Email = "not-an-email"
				return c
			},
			msg: "email",
		},
		{
			name: "zero validated_at",
			makeCustomer: func() *domain.ExternalCustomer {
				c := validCustomer()
				c.ValidatedAt = time.Time{}
				return c
			},
			msg: "validated_at",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.makeCustomer())
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, validate.ErrInvalidCustomer) {
				t.Fatalf("expected ErrInvalidCustomer, got: %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected %q in error, got: %v", tc.msg, err)
			}
		})
	}

	t.Run("empty contacts are allowed", func(t *testing.T) {
		c := validCustomer()
		c.Email = ""
		c.PhoneNumber = ""
		if err := v.Validate(ctx, c); err != nil {
			t.Fatalf("contacts are optional, got: %v", err)
		}
	})
}
