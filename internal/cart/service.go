package cart

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/ubermelon/shop-backend/internal/melon"
	"github.com/ubermelon/shop-backend/internal/session"
	logx "github.com/ubermelon/shop-backend/pkg/logger"
)

var (
	// ErrUnknownMelon means an add referenced an id the catalog has never
	// heard of. The cart is left untouched.
	ErrUnknownMelon = errors.New("unknown melon")
	// ErrEmptyCart is the distinguished empty-cart result from ViewCart.
	// Callers should prompt or redirect, not render a zero-row view.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInconsistentCart means the session cart references an id the
	// catalog no longer resolves. That is a data/programming error, not a
	// user error; it is logged and surfaced as a generic failure rather
	// than silently dropped, which would misreport the total.
	ErrInconsistentCart = errors.New("cart references unknown melon")
)

// LineItem is one computed row of a cart view. It is derived on demand and
// never stored.
type LineItem struct {
	MelonID   string          `json:"melonId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// View is the full cart rendering: line items in cart insertion order plus
// the aggregate cost.
type View struct {
	Items     []LineItem      `json:"items"`
	TotalCost decimal.Decimal `json:"totalCost"`
}

// Service is the cart engine. It operates on a Session passed by the caller,
// consulting the catalog snapshot it was constructed with.
type Service struct {
	catalog melon.Repository
}

func NewService(catalog melon.Repository) *Service {
	return &Service{catalog: catalog}
}

// AddItem puts one more of the given melon in the session's cart, creating
// the cart if this is the session's first cart interaction. It returns the
// updated quantity for confirmation messaging.
func (s *Service) AddItem(sess *session.Session, melonID string) (int, error) {
	if _, err := s.catalog.GetByID(melonID); err != nil {
		return 0, ErrUnknownMelon
	}

	if sess.Cart == nil {
		sess.Cart = session.NewCart()
	}
	return sess.Cart.Add(melonID), nil
}

// ViewCart computes the line items and total cost for the session's cart.
// An absent or empty cart yields ErrEmptyCart. Summation walks the cart in
// insertion order with a single decimal accumulator, so totals are exact and
// deterministic.
func (s *Service) ViewCart(sess *session.Session) (View, error) {
	if sess.Cart == nil || sess.Cart.Len() == 0 {
		return View{}, ErrEmptyCart
	}

	cartItems := sess.Cart.Items()
	view := View{
		Items:     make([]LineItem, 0, len(cartItems)),
		TotalCost: decimal.Zero,
	}
	for _, item := range cartItems {
		m, err := s.catalog.GetByID(item.MelonID)
		if err != nil {
			logx.Error().
				Str("sessionId", sess.ID).
				Str("melonId", item.MelonID).
				Msg("cart references melon missing from catalog")
			return View{}, ErrInconsistentCart
		}

		lineTotal := m.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, LineItem{
			MelonID:   item.MelonID,
			Name:      m.CommonName,
			Quantity:  item.Quantity,
			UnitPrice: m.Price,
			LineTotal: lineTotal,
		})
		view.TotalCost = view.TotalCost.Add(lineTotal)
	}

	return view, nil
}

// EmptyCart unconditionally resets the session's cart. Emptying an absent or
// already-empty cart succeeds.
func (s *Service) EmptyCart(sess *session.Session) {
	sess.Cart = session.NewCart()
}
