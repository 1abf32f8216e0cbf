// Package requestctx carries request-scoped identity through contexts.
package requestctx

import (
	"context"
	"strings"
)

// operatorContextKey is the context key for the authenticated operator.
type operatorContextKey struct{}

// WithOperator stores an operator subject in context.
func WithOperator(ctx context.Context, operator string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, operatorContextKey{}, strings.TrimSpace(operator))
}

// OperatorFromContext returns the operator subject stored in context.
func OperatorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(operatorContextKey{}).(string)
	return value
}
