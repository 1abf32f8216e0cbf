package requestctx

import (
	"context"
	"testing"
)

func TestOperatorFromContextRoundTrip(t *testing.T) {
	ctx := WithOperator(context.Background(), " ops ")
	if got := OperatorFromContext(ctx); got != "ops" {
		t.Fatalf("OperatorFromContext = %q, want %q", got, "ops")
	}
}

func TestOperatorFromContextEmpty(t *testing.T) {
	if got := OperatorFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestOperatorFromContextNil(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract.
	if got := OperatorFromContext(nil); got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
}

func TestWithOperatorNilContext(t *testing.T) {
	//nolint:staticcheck // nil context is part of the contract.
	ctx := WithOperator(nil, "ops")
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	if got := OperatorFromContext(ctx); got != "ops" {
		t.Fatalf("OperatorFromContext = %q, want %q", got, "ops")
	}
}
