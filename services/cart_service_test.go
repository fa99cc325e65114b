package services_test

import (
	"testing"

	"github.com/gihanchamila/Little-Lemon-capston/entity"
	"github.com/gihanchamila/Little-Lemon-capston/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLineMergesDuplicates(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "alice@example.com", false)
	cat := createCategory(t, env.db, "mains")
	item := createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)

	_, err := env.carts.AddLine(user.ID, item.ID, 2)
	require.NoError(t, err)
	line, err := env.carts.AddLine(user.ID, item.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 5, line.Quantity)
	assert.True(t, line.UnitPrice.Equal(mustDecimal(t, "10.00")))
	assert.True(t, line.Price.Equal(mustDecimal(t, "50.00")))

	var lines []entity.CartLine
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&lines).Error)
	assert.Len(t, lines, 1, "duplicate adds must merge, never create a second line")
}

func TestAddLineValidation(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "alice@example.com", false)
	cat := createCategory(t, env.db, "mains")
	item := createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)

	_, err := env.carts.AddLine(user.ID, item.ID, 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = env.carts.AddLine(user.ID, item.ID, -2)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = env.carts.AddLine(user.ID, 9999, 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAddLineResnapshotsUnitPrice(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "alice@example.com", false)
	cat := createCategory(t, env.db, "mains")
	item := createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)

	_, err := env.carts.AddLine(user.ID, item.ID, 2)
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&entity.MenuItem{}).
		Where("id = ?", item.ID).
		Update("price", mustDecimal(t, "12.50")).Error)

	line, err := env.carts.AddLine(user.ID, item.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, line.Quantity)
	assert.True(t, line.UnitPrice.Equal(mustDecimal(t, "12.50")), "add must refresh the snapshot")
	assert.True(t, line.Price.Equal(mustDecimal(t, "37.50")))
}

func TestSetLineQuantityIsAbsolute(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "alice@example.com", false)
	cat := createCategory(t, env.db, "mains")
	item := createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)

	_, err := env.carts.AddLine(user.ID, item.ID, 2)
	require.NoError(t, err)

	line, err := env.carts.SetLineQuantity(user.ID, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, line.Quantity)
	assert.True(t, line.Price.Equal(mustDecimal(t, "70.00")))

	// setting quantity on an absent line creates it
	other := createMenuItem(t, env.db, "Salad", "4.25", cat.ID)
	line, err = env.carts.SetLineQuantity(user.ID, other.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
	assert.True(t, line.Price.Equal(mustDecimal(t, "8.50")))
}

func TestRemoveLine(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "alice@example.com", false)
	cat := createCategory(t, env.db, "mains")
	item := createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)

	_, err := env.carts.AddLine(user.ID, item.ID, 1)
	require.NoError(t, err)

	require.NoError(t, env.carts.RemoveLine(user.ID, item.ID))
	assert.ErrorIs(t, env.carts.RemoveLine(user.ID, item.ID), services.ErrNotFound)
}

func TestAddLineAfterRemove(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "alice@example.com", false)
	cat := createCategory(t, env.db, "mains")
	item := createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)

	_, err := env.carts.AddLine(user.ID, item.ID, 2)
	require.NoError(t, err)
	require.NoError(t, env.carts.RemoveLine(user.ID, item.ID))

	// a removed line must not linger in the unique index and block
	// adding the same item again
	line, err := env.carts.AddLine(user.ID, item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity, "quantity must start fresh, not resume the removed line")

	var lines []entity.CartLine
	require.NoError(t, env.db.Where("user_id = ?", user.ID).Find(&lines).Error)
	assert.Len(t, lines, 1)
}

func TestClearAlwaysSucceeds(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "alice@example.com", false)

	// empty cart: still no error
	require.NoError(t, env.carts.Clear(user.ID))

	cat := createCategory(t, env.db, "mains")
	item := createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)
	_, err := env.carts.AddLine(user.ID, item.ID, 2)
	require.NoError(t, err)

	require.NoError(t, env.carts.Clear(user.ID))
	lines, subtotal, err := env.carts.ListLines(user.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.True(t, subtotal.IsZero())
}

func TestListLinesSubtotal(t *testing.T) {
	env := newTestEnv(t)
	user := createUser(t, env.db, "alice@example.com", false)
	cat := createCategory(t, env.db, "mains")
	pasta := createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)
	salad := createMenuItem(t, env.db, "Salad", "4.25", cat.ID)

	_, err := env.carts.AddLine(user.ID, pasta.ID, 2)
	require.NoError(t, err)
	_, err = env.carts.AddLine(user.ID, salad.ID, 1)
	require.NoError(t, err)

	lines, subtotal, err := env.carts.ListLines(user.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.True(t, subtotal.Equal(mustDecimal(t, "24.25")))
}
