package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd_MergesSameProduct(t *testing.T) {
	sut := NewCartStore()

	sut.Add("u1", CartLine{ProductID: "p1", Name: "Hoodie", UnitPrice: 1000, Quantity: 2})
	sut.Add("u1", CartLine{ProductID: "p1", Name: "Hoodie", UnitPrice: 1000, Quantity: 3})
	sut.Add("u1", CartLine{ProductID: "p1", Name: "Hoodie", UnitPrice: 1000, Quantity: 1})

	lines := sut.Lines("u1")
	require.Len(t, lines, 1)
	assert.Equal(t, int32(6), lines[0].Quantity)
}

func TestCartAdd_IgnoresNonPositiveQuantity(t *testing.T) {
	sut := NewCartStore()

	sut.Add("u1", CartLine{ProductID: "p1", Quantity: 0})
	sut.Add("u1", CartLine{ProductID: "p1", Quantity: -2})

	assert.Empty(t, sut.Lines("u1"))
}

func TestCartDecrease_RemovesLineAtZero(t *testing.T) {
	sut := NewCartStore()
	sut.Add("u1", CartLine{ProductID: "p1", Quantity: 2})

	sut.Decrease("u1", "p1")
	lines := sut.Lines("u1")
	require.Len(t, lines, 1)
	assert.Equal(t, int32(1), lines[0].Quantity)

	sut.Decrease("u1", "p1")
	assert.Empty(t, sut.Lines("u1"))

	// decreasing an absent line is a no-op, never a negative quantity
	sut.Decrease("u1", "p1")
	assert.Empty(t, sut.Lines("u1"))
}

func TestCartRemove(t *testing.T) {
	sut := NewCartStore()
	sut.Add("u1", CartLine{ProductID: "p1", Quantity: 5})
	sut.Add("u1", CartLine{ProductID: "p2", Quantity: 1})

	sut.Remove("u1", "p1")

	lines := sut.Lines("u1")
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)

	sut.Remove("u1", "missing")
	assert.Len(t, sut.Lines("u1"), 1)
}

func TestCartClear(t *testing.T) {
	sut := NewCartStore()
	sut.Add("u1", CartLine{ProductID: "p1", Quantity: 2})
	sut.Add("u1", CartLine{ProductID: "p2", Quantity: 1})

	sut.Clear("u1")

	assert.Empty(t, sut.Lines("u1"))
	assert.Equal(t, int64(0), sut.Subtotal("u1"))
}

func TestCartSubtotal(t *testing.T) {
	sut := NewCartStore()
	sut.Add("u1", CartLine{ProductID: "a", UnitPrice: 1000, Quantity: 2})
	sut.Add("u1", CartLine{ProductID: "b", UnitPrice: 500, Quantity: 1})

	assert.Equal(t, int64(2500), sut.Subtotal("u1"))
}

func TestCartIsolatedPerUser(t *testing.T) {
	sut := NewCartStore()
	sut.Add("u1", CartLine{ProductID: "p1", Quantity: 1})
	sut.Add("u2", CartLine{ProductID: "p1", Quantity: 4})

	sut.Clear("u1")

	assert.Empty(t, sut.Lines("u1"))
	require.Len(t, sut.Lines("u2"), 1)
	assert.Equal(t, int32(4), sut.Lines("u2")[0].Quantity)
}

func TestCartLines_ReturnsCopy(t *testing.T) {
	sut := NewCartStore()
	sut.Add("u1", CartLine{ProductID: "p1", Quantity: 1})

	lines := sut.Lines("u1")
	lines[0].Quantity = 99

	assert.Equal(t, int32(1), sut.Lines("u1")[0].Quantity)
}
