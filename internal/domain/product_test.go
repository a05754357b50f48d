package domain_test

import (
	"testing"

	"github.com/Gunvolt24/riskgate/internal/domain"
)

func TestProduct_Available(t *testing.T) {
	t.Parallel()

	p := &domain.Product{Active: true, Stock: 3}
	if !p.Available() {
		t.Fatalf("active product with stock must be available")
	}

	p = &domain.Product{Active: true, Stock: 0}
	if p.Available() {
		t.Fatalf("zero stock must not be available")
	}

	p = &domain.Product{Active: false, Stock: 10}
	if p.Available() {
		t.Fatalf("inactive product must not be available")
	}
}

func TestProduct_DiscountedPrice(t *testing.T) {
	t.Parallel()

	p := &domain.Product{Price: 100}
	if got := p.DiscountedPrice(0.10); got != 90 {
		t.Fatalf("10%% discount: got %v, want 90", got)
	}
	if got := p.DiscountedPrice(0); got != 100 {
		t.Fatalf("zero rate must keep price, got %v", got)
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	if got, err := domain.ParseCategory("books"); err != nil || got != domain.CategoryBooks {
		t.Fatalf("parse books: got=%v err=%v", got, err)
	}
	if _, err := domain.ParseCategory("furniture"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestParseUserStatus(t *testing.T) {
	t.Parallel()

	if got, err := domain.ParseUserStatus(" suspended "); err != nil || got != domain.UserSuspended {
		t.Fatalf("parse suspended: got=%v err=%v", got, err)
	}
	if _, err := domain.ParseUserStatus("deleted"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestUser_FullName(t *testing.T) {
	t.Parallel()

	u := &domain.User{Username: "alice", FirstName: "Alice", LastName: "Smith"}
	if got := u.FullName(); got != "Alice Smith" {
		t.Fatalf("got %q, want %q", got, "Alice Smith")
	}

	u = &domain.User{Username: "alice"}
	if got := u.FullName(); got != "alice" {
		t.Fatalf("fallback to username: got %q", got)
	}
}
