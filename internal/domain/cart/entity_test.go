// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64) Product {
	return Product{ID: id, Title: "t-" + id, Image: "img-" + id, Price: price, Size: "24x36", Medium: "Acrylic"}
}

func TestAddItemIncrementsSameProduct(t *testing.T) {
	c := &Cart{}

	for i := 0; i < 4; i++ {
		require.NoError(t, c.AddItem(product("p1", 100)))
	}

	require.Len(t, c.Items, 1)
	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, 4, c.Items[0].Quantity)
}

func TestAddItemRejectsEmptyID(t *testing.T) {
	c := &Cart{}
	assert.ErrorIs(t, c.AddItem(Product{}), ErrInvalidProduct)
	assert.Empty(t, c.Items)
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.AddItem(product("p1", 100)))
	require.NoError(t, c.AddItem(product("p1", 100)))

	c.UpdateQuantity("p1", 7)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 7, c.Items[0].Quantity)
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.AddItem(product("p1", 100)))
	require.NoError(t, c.AddItem(product("p2", 200)))

	c.UpdateQuantity("p1", 0)
	require.Len(t, c.Items, 1)
	assert.Equal(t, "p2", c.Items[0].ProductID)

	c.UpdateQuantity("p2", -3)
	assert.Empty(t, c.Items)
}

func TestRemoveItem(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.AddItem(product("p1", 100)))

	c.RemoveItem("p1")
	assert.Empty(t, c.Items)

	// removing an absent id is a no-op
	c.RemoveItem("nope")
	assert.Empty(t, c.Items)
}

func TestTotalIsDerivedSum(t *testing.T) {
	c := &Cart{}
	require.NoError(t, c.AddItem(product("p1", 800)))
	require.NoError(t, c.AddItem(product("p2", 1200)))
	require.NoError(t, c.AddItem(product("p2", 1200)))

	// 800*1 + 1200*2
	assert.Equal(t, 3200.0, c.Total())

	c.UpdateQuantity("p1", 3)
	assert.Equal(t, 800.0*3+1200*2, c.Total())

	c.Clear()
	assert.Equal(t, 0.0, c.Total())
}

func TestToggleIsIndependentOfContents(t *testing.T) {
	c := &Cart{}
	assert.False(t, c.IsOpen)

	c.Toggle()
	assert.True(t, c.IsOpen)

	c.Clear()
	assert.True(t, c.IsOpen, "clearing items must not close the panel")

	c.Toggle()
	assert.False(t, c.IsOpen)
}
