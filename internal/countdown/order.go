package countdown

import "fmt"

// Order selects how future events are sequenced for display.
type Order int

const (
	// OrderAsc sorts soonest first. This is the default.
	OrderAsc Order = iota
	// OrderDesc sorts furthest-out first.
	OrderDesc
	// OrderShuffle returns a uniformly random permutation.
	OrderShuffle
)

// CLI tokens for the three orders.
const (
	TokenAsc     = "time-asc"
	TokenDesc    = "time-desc"
	TokenShuffle = "shuffle"
)

// Tokens lists the recognized order tokens.
var Tokens = []string{TokenAsc, TokenDesc, TokenShuffle}

// InvalidOrderError reports an order token outside the recognized set.
type InvalidOrderError struct {
	Token string
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("invalid order %q: must be one of %v", e.Token, Tokens)
}

// ParseOrder maps a CLI token to an Order. Unrecognized tokens return an
// *InvalidOrderError; callers are expected to reject them before invoking
// the pipeline.
func ParseOrder(s string) (Order, error) {
	switch s {
	case TokenAsc:
		return OrderAsc, nil
	case TokenDesc:
		return OrderDesc, nil
	case TokenShuffle:
		return OrderShuffle, nil
	default:
		return OrderAsc, &InvalidOrderError{Token: s}
	}
}

// String returns the order's CLI token.
func (o Order) String() string {
	switch o {
	case OrderDesc:
		return TokenDesc
	case OrderShuffle:
		return TokenShuffle
	default:
		return TokenAsc
	}
}
