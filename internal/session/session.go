package session

// Session is the per-visitor state held server-side between requests. It is
// addressed by an opaque id issued by the transport layer. Cart stays nil
// until the first cart interaction so callers can tell "never had a cart"
// from "cart is empty". LoggedInEmail is empty while anonymous.
//
// The engines mutate a Session in place; one request at a time per session is
// assumed, so the Session itself carries no lock.
type Session struct {
	ID            string
	Cart          *Cart
	LoggedInEmail string
}

// CartItem is one (melon id, quantity) pair from a cart, in insertion order.
type CartItem struct {
	MelonID  string
	Quantity int
}

// Cart is an order-preserving mapping from melon id to a positive quantity.
// Iteration order is the order ids were first added, which keeps cart views
// and cost summation deterministic.
type Cart struct {
	order []string
	qty   map[string]int
}

func NewCart() *Cart {
	return &Cart{qty: make(map[string]int)}
}

// Add increments the quantity for the given melon id, inserting it with
// quantity 1 if absent, and returns the updated quantity.
func (c *Cart) Add(melonID string) int {
	if _, ok := c.qty[melonID]; !ok {
		c.order = append(c.order, melonID)
	}
	c.qty[melonID]++
	return c.qty[melonID]
}

// Quantity returns the quantity for the given melon id, zero if absent.
func (c *Cart) Quantity(melonID string) int {
	return c.qty[melonID]
}

// Items returns the cart contents in insertion order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, CartItem{MelonID: id, Quantity: c.qty[id]})
	}
	return items
}

func (c *Cart) Len() int {
	return len(c.order)
}
