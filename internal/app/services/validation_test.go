package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/freedaiy/intake/internal/app/domain"
)

func TestValidateLeadRejectsOutOfRangeNames(t *testing.T) {
	t.Parallel()

	v := NewSubmissionValidator()
	cases := map[string]string{
		"empty":    "",
		"one rune": "A",
		"too long": strings.Repeat("n", 121),
	}
	for name, value := range cases {
		err := v.ValidateLead(domain.Lead{Name: value, Email: "a@b.com"})
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("%s: expected validation failure, got %v", name, err)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Violations[0].Field != "name" {
			t.Fatalf("%s: expected name violation, got %#v", name, err)
		}
	}
}

func TestValidateLeadCountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	v := NewSubmissionValidator()
	if err := v.ValidateLead(domain.Lead{Name: "Zoë", Email: "zoe@example.com"}); err != nil {
		t.Fatalf("expected valid lead, got %v", err)
	}
	if err := v.ValidateLead(domain.Lead{Name: strings.Repeat("é", 120), Email: "e@example.com"}); err != nil {
		t.Fatalf("expected 120 runes to pass, got %v", err)
	}
}

func TestValidateLeadRejectsMalformedEmail(t *testing.T) {
	t.Parallel()

	v := NewSubmissionValidator()
	for _, email := range []string{"", "not-an-email", "a@", "@b.com", "a b@c.com"} {
		err := v.ValidateLead(domain.Lead{Name: "Al", Email: email})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("email %q: expected ValidationError, got %v", email, err)
		}
		if vErr.Violations[0].Field != "email" {
			t.Fatalf("email %q: unexpected field %q", email, vErr.Violations[0].Field)
		}
	}
}

func TestValidateLeadLeavesOptionalTextUnbounded(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 10000)
	lead := domain.Lead{Name: "Al", Email: "a@b.com", Company: &long, CurrentTools: &long, Message: &long}
	if err := NewSubmissionValidator().ValidateLead(lead); err != nil {
		t.Fatalf("expected optional text to pass, got %v", err)
	}
}

func TestValidateSubscriberAcceptsAnyInterests(t *testing.T) {
	t.Parallel()

	v := NewSubmissionValidator()
	interests := make([]string, 500)
	if err := v.ValidateSubscriber(domain.Subscriber{Email: "x@y.com", Interests: interests}); err != nil {
		t.Fatalf("expected valid subscriber, got %v", err)
	}
	if err := v.ValidateSubscriber(domain.Subscriber{Email: "nope"}); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected validation failure, got %v", err)
	}
}
