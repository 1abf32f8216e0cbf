package admin

import (
	"context"

	"github.com/louisbranch/contentadmin/internal/platform/requestctx"
)

const anonymousOperator = "anonymous"

func contextWithOperator(ctx context.Context, operator string) context.Context {
	return requestctx.WithOperator(ctx, operator)
}

// operatorFromContext returns "anonymous" when auth is disabled.
func operatorFromContext(ctx context.Context) string {
	if operator := requestctx.OperatorFromContext(ctx); operator != "" {
		return operator
	}
	return anonymousOperator
}
