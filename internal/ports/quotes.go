package ports

import (
	"context"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
)

// QuoteStore provides the wisdom quotes for a locale.
type QuoteStore interface {
	Quotes(ctx context.Context, lang domain.Lang) ([]domain.Quote, error)
}
