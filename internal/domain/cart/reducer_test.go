package cart

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) entity.CartSnapshot {
	t.Helper()

	return ReduceAll(entity.NewCartSnapshot(),
		AddItem{LineID: "line-1", ProductID: "1", Quantity: 2},
		AddItem{LineID: "line-3", ProductID: "3", Quantity: 1},
	)
}

func TestReduce_AddItem_AppendsNewLine(t *testing.T) {
	next := Reduce(entity.NewCartSnapshot(), AddItem{LineID: "line-1", ProductID: "1", Quantity: 1, SelectedVariant: "black"})

	require.Len(t, next.Items, 1)
	assert.Equal(t, entity.CartLineItem{ID: "line-1", ProductID: "1", Quantity: 1, SelectedVariant: "black"}, next.Items[0])
	assert.Equal(t, 1, next.ItemCount())
}

func TestReduce_AddItem_SameProductAccumulates(t *testing.T) {
	quantities := []int{1, 3, 2, 5}

	snapshot := entity.NewCartSnapshot()
	for i, qty := range quantities {
		snapshot = Reduce(snapshot, AddItem{LineID: string(rune('a' + i)), ProductID: "1", Quantity: qty})
	}

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, 11, snapshot.Items[0].Quantity)
	assert.Equal(t, "a", snapshot.Items[0].ID, "the first line id is kept")
	assert.Equal(t, 11, snapshot.ItemCount())
}

func TestReduce_AddItem_NonPositiveQuantityIgnored(t *testing.T) {
	prev := seeded(t)

	assert.Equal(t, prev, Reduce(prev, AddItem{LineID: "x", ProductID: "2", Quantity: 0}))
	assert.Equal(t, prev, Reduce(prev, AddItem{LineID: "x", ProductID: "1", Quantity: -4}))
}

func TestReduce_AddItem_DoesNotMutatePrevious(t *testing.T) {
	prev := seeded(t)

	_ = Reduce(prev, AddItem{LineID: "again", ProductID: "1", Quantity: 5})

	assert.Equal(t, 2, prev.Items[0].Quantity)
}

func TestReduce_RemoveItem(t *testing.T) {
	next := Reduce(seeded(t), RemoveItem{ProductID: "1"})

	require.Len(t, next.Items, 1)
	assert.Equal(t, "3", next.Items[0].ProductID)
	assert.Equal(t, 1, next.ItemCount())
}

func TestReduce_RemoveItem_AbsentIsNoop(t *testing.T) {
	prev := seeded(t)

	assert.Equal(t, prev, Reduce(prev, RemoveItem{ProductID: "missing"}))
}

func TestReduce_UpdateQuantity_Overwrites(t *testing.T) {
	next := Reduce(seeded(t), UpdateQuantity{ProductID: "3", Quantity: 7})

	line, ok := next.Line("3")
	require.True(t, ok)
	assert.Equal(t, 7, line.Quantity)
	assert.Equal(t, 9, next.ItemCount())
}

func TestReduce_UpdateQuantity_ZeroEqualsRemove(t *testing.T) {
	for _, qty := range []int{0, -1} {
		prev := seeded(t)

		assert.Equal(t, Reduce(prev, RemoveItem{ProductID: "1"}), Reduce(prev, UpdateQuantity{ProductID: "1", Quantity: qty}))
	}
}

func TestReduce_UpdateQuantity_AbsentIsNoop(t *testing.T) {
	prev := seeded(t)

	assert.Equal(t, prev, Reduce(prev, UpdateQuantity{ProductID: "missing", Quantity: 3}))
}

func TestReduce_Clear_EqualsFreshSnapshot(t *testing.T) {
	prev := Reduce(seeded(t), Open{})

	next := Reduce(prev, Clear{})

	assert.Equal(t, entity.NewCartSnapshot(), next)
	assert.False(t, next.IsOpen)
	assert.Zero(t, next.ItemCount())
}

func TestReduce_CheckedOut_UnchangedCartEqualsClear(t *testing.T) {
	prev := Reduce(seeded(t), Open{})

	next := Reduce(prev, CheckedOut{Items: prev.Items})

	assert.Equal(t, Reduce(prev, Clear{}), next)
}

func TestReduce_CheckedOut_KeepsLaterAdditions(t *testing.T) {
	ordered := seeded(t)
	current := ReduceAll(ordered,
		AddItem{LineID: "line-1b", ProductID: "1", Quantity: 3},
		AddItem{LineID: "line-5", ProductID: "5", Quantity: 1},
		Open{},
	)

	next := Reduce(current, CheckedOut{Items: ordered.Items})

	require.Len(t, next.Items, 2)
	assert.Equal(t, entity.CartLineItem{ID: "line-1", ProductID: "1", Quantity: 3}, next.Items[0])
	assert.Equal(t, "5", next.Items[1].ProductID)
	assert.Equal(t, 4, next.ItemCount())
	assert.False(t, next.IsOpen)
}

func TestReduce_CheckedOut_LoweredQuantityRemovesLine(t *testing.T) {
	ordered := seeded(t)
	current := Reduce(ordered, UpdateQuantity{ProductID: "1", Quantity: 1})

	next := Reduce(current, CheckedOut{Items: ordered.Items})

	assert.Equal(t, entity.NewCartSnapshot(), next)
}

func TestReduce_PanelIntentsLeaveItems(t *testing.T) {
	prev := seeded(t)

	opened := Reduce(prev, Open{})
	assert.True(t, opened.IsOpen)
	assert.Equal(t, prev.Items, opened.Items)

	toggled := Reduce(opened, Toggle{})
	assert.False(t, toggled.IsOpen)
	assert.Equal(t, prev.Items, toggled.Items)

	closed := Reduce(Reduce(toggled, Toggle{}), Close{})
	assert.False(t, closed.IsOpen)
	assert.Equal(t, prev.Items, closed.Items)
}

func TestReduce_ItemCountTracksQuantities(t *testing.T) {
	snapshot := ReduceAll(entity.NewCartSnapshot(),
		AddItem{LineID: "a", ProductID: "1", Quantity: 2},
		AddItem{LineID: "b", ProductID: "2", Quantity: 4},
		UpdateQuantity{ProductID: "1", Quantity: 1},
		AddItem{LineID: "c", ProductID: "3", Quantity: 3},
		RemoveItem{ProductID: "2"},
		Toggle{},
	)

	sum := 0
	for _, item := range snapshot.Items {
		require.Positive(t, item.Quantity)
		sum += item.Quantity
	}
	assert.Equal(t, sum, snapshot.ItemCount())
	assert.Equal(t, 4, snapshot.ItemCount())
	assert.True(t, snapshot.IsOpen)
}

func TestName(t *testing.T) {
	assert.Equal(t, "add_item", Name(AddItem{}))
	assert.Equal(t, "close_cart", Name(Close{}))
	assert.Equal(t, "unknown", Name(nil))
}
