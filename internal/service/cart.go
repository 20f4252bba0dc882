package service

import "sync"

// CartLine is one product entry in a shopper's session cart. UnitPrice is in
// minor units (cents). At most one line exists per product id.
type CartLine struct {
	ProductID string
	Name      string
	UnitPrice int64
	Quantity  int32
	Image     string
	Category  string
}

// CartStore holds per-user session carts in memory. Cart persistence is the
// caller's concern; orders are the only durable record. All transitions go
// through mutate so the quantity invariants hold at a single chokepoint.
type CartStore struct {
	mu    sync.Mutex
	carts map[string][]CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[string][]CartLine),
	}
}

func (s *CartStore) mutate(userID string, fn func(lines []CartLine) []CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.carts[userID])
	if len(next) == 0 {
		delete(s.carts, userID)
		return
	}
	s.carts[userID] = next
}

// Add inserts a line or merges quantity into an existing line for the same
// product. Non-positive quantities are ignored. No stock ceiling is enforced.
func (s *CartStore) Add(userID string, line CartLine) {
	if line.Quantity <= 0 {
		return
	}

	s.mutate(userID, func(lines []CartLine) []CartLine {
		for i := range lines {
			if lines[i].ProductID == line.ProductID {
				lines[i].Quantity += line.Quantity
				return lines
			}
		}
		return append(lines, line)
	})
}

// Decrease lowers a line's quantity by one, removing the line when it would
// reach zero. Unknown product ids are a no-op.
func (s *CartStore) Decrease(userID, productID string) {
	s.mutate(userID, func(lines []CartLine) []CartLine {
		for i := range lines {
			if lines[i].ProductID != productID {
				continue
			}
			if lines[i].Quantity <= 1 {
				return append(lines[:i], lines[i+1:]...)
			}
			lines[i].Quantity--
			return lines
		}
		return lines
	})
}

// Remove deletes the line unconditionally.
func (s *CartStore) Remove(userID, productID string) {
	s.mutate(userID, func(lines []CartLine) []CartLine {
		for i := range lines {
			if lines[i].ProductID == productID {
				return append(lines[:i], lines[i+1:]...)
			}
		}
		return lines
	})
}

// Clear empties the user's cart.
func (s *CartStore) Clear(userID string) {
	s.mutate(userID, func([]CartLine) []CartLine {
		return nil
	})
}

// Lines returns a copy of the user's cart lines.
func (s *CartStore) Lines(userID string) []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[userID]
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

// Subtotal sums unit price times quantity across the cart, in minor units.
func (s *CartStore) Subtotal(userID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, line := range s.carts[userID] {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}
