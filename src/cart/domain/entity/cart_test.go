package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) Product {
	return Product{ID: id, Name: "Product " + id, Price: decimal.NewFromInt(price), ImageRef: id + ".png"}
}

func TestAddItem_DistinctIDs(t *testing.T) {
	cart := NewCart()
	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		cart.AddItem(product(id, 100))
	}

	totals := cart.Totals()
	assert.Equal(t, 4, totals.ItemCount)
	assert.Len(t, cart.Items(), 4)
	assert.True(t, decimal.NewFromInt(400).Equal(totals.Subtotal))
}

func TestAddItem_RepeatedIDIncrementsExistingLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))
	cart.AddItem(product("p2", 50))
	before := cart.Totals().ItemCount

	cart.AddItem(product("p1", 100))

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, before+1, cart.Totals().ItemCount)
}

func TestAddItem_KeepsFirstCapturedSnapshot(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))

	changed := product("p1", 999)
	changed.Name = "Renamed"
	cart.AddItem(changed)

	item := cart.Items()[0]
	assert.Equal(t, "Product p1", item.Name)
	assert.True(t, decimal.NewFromInt(100).Equal(item.UnitPrice))
	assert.Equal(t, 2, item.Quantity)
}

func TestChangeQuantity_FloorAtOne(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))

	cart.ChangeQuantity("p1", -100)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestChangeQuantity_Increment(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 250))

	cart.ChangeQuantity("p1", 3)

	assert.Equal(t, 4, cart.Items()[0].Quantity)
	assert.True(t, decimal.NewFromInt(1000).Equal(cart.Totals().Subtotal))
}

func TestChangeQuantity_UnknownIDIsNoop(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))

	cart.ChangeQuantity("missing", 5)

	assert.Equal(t, 1, cart.Totals().ItemCount)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))
	cart.AddItem(product("p2", 100))

	cart.SetQuantity("p1", 0)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
}

func TestSetQuantity_Positive(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 10))

	cart.SetQuantity("p1", 7)

	assert.Equal(t, 7, cart.Totals().ItemCount)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))
	cart.AddItem(product("p2", 100))
	cart.AddItem(product("p3", 100))

	cart.RemoveItem("missing")
	assert.Len(t, cart.Items(), 3)

	cart.RemoveItem("p2")
	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "p3", items[1].ID)
}

func TestClear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))

	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.Totals().ItemCount)
	assert.True(t, cart.Totals().Subtotal.IsZero())
}

func TestSnapshot_IsIndependentFromCart(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 500))
	cart.AddItem(product("p1", 500))

	snap := cart.Snapshot()
	cart.ChangeQuantity("p1", 5)
	cart.AddItem(product("p2", 1))

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 2, snap.ItemCount)
	assert.True(t, decimal.NewFromInt(1000).Equal(snap.Subtotal))
	assert.False(t, snap.IsEmpty())
}

func TestRemoveOrdered_KeepsWhatWasAddedAfterSnapshot(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))
	cart.AddItem(product("p2", 50))
	snap := cart.Snapshot()

	cart.AddItem(product("p1", 100))
	cart.AddItem(product("p3", 10))
	cart.RemoveOrdered(snap)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, "p3", items[1].ID)
}

func TestRemoveOrdered_LineReducedBelowSnapshotIsRemoved(t *testing.T) {
	cart := NewCart()
	cart.AddItem(product("p1", 100))
	cart.SetQuantity("p1", 3)
	snap := cart.Snapshot()

	cart.SetQuantity("p1", 1)
	cart.RemoveOrdered(snap)

	assert.Empty(t, cart.Items())
}
