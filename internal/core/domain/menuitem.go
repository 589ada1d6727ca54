package domain

// MenuItem is an immutable catalog entry. Items are created once when the
// catalog is seeded and are shared read-only by order lines.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       Money
}
