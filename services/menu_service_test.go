package services_test

import (
	"testing"

	"github.com/gihanchamila/Little-Lemon-capston/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCRUD(t *testing.T) {
	env := newTestEnv(t)

	cat, err := env.menu.CreateCategory(&services.CategoryIn{Slug: "mains", Title: "Mains"})
	require.NoError(t, err)

	got, err := env.menu.GetCategory(cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mains", got.Title)

	_, err = env.menu.GetCategory(9999)
	assert.ErrorIs(t, err, services.ErrNotFound)

	updated, err := env.menu.UpdateCategory(cat.ID, &services.CategoryIn{Slug: "mains", Title: "Main Courses"})
	require.NoError(t, err)
	assert.Equal(t, "Main Courses", updated.Title)

	require.NoError(t, env.menu.DeleteCategory(cat.ID))
	_, err = env.menu.GetCategory(cat.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteCategoryInUse(t *testing.T) {
	env := newTestEnv(t)
	cat := createCategory(t, env.db, "mains")
	createMenuItem(t, env.db, "Pasta", "10.00", cat.ID)

	// categories with menu items are protected
	assert.ErrorIs(t, env.menu.DeleteCategory(cat.ID), services.ErrCategoryInUse)
}

func TestDeletedTitlesAreReusable(t *testing.T) {
	env := newTestEnv(t)
	cat := createCategory(t, env.db, "mains")

	item, err := env.menu.CreateMenuItem(&services.MenuItemIn{
		Title:      "Pasta",
		Price:      mustDecimal(t, "10.00"),
		CategoryID: cat.ID,
	})
	require.NoError(t, err)
	require.NoError(t, env.menu.DeleteMenuItem(item.ID))

	// the title's unique index must be free again after delete
	again, err := env.menu.CreateMenuItem(&services.MenuItemIn{
		Title:      "Pasta",
		Price:      mustDecimal(t, "12.00"),
		CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, item.ID, again.ID)

	// same for categories
	dead, err := env.menu.CreateCategory(&services.CategoryIn{Slug: "specials", Title: "Specials"})
	require.NoError(t, err)
	require.NoError(t, env.menu.DeleteCategory(dead.ID))
	_, err = env.menu.CreateCategory(&services.CategoryIn{Slug: "specials", Title: "Specials"})
	require.NoError(t, err)
}

func TestMenuItemCRUD(t *testing.T) {
	env := newTestEnv(t)
	cat := createCategory(t, env.db, "mains")

	item, err := env.menu.CreateMenuItem(&services.MenuItemIn{
		Title:      "Pasta",
		Price:      mustDecimal(t, "10.00"),
		Featured:   true,
		CategoryID: cat.ID,
	})
	require.NoError(t, err)

	// unknown category
	_, err = env.menu.CreateMenuItem(&services.MenuItemIn{
		Title:      "Ghost",
		Price:      mustDecimal(t, "1.00"),
		CategoryID: 9999,
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	updated, err := env.menu.UpdateMenuItem(item.ID, &services.MenuItemIn{
		Title:      "Pasta",
		Price:      mustDecimal(t, "11.50"),
		Featured:   false,
		CategoryID: cat.ID,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(mustDecimal(t, "11.50")))

	items, total, err := env.menu.ListMenuItems(&cat.ID, 1, 20)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.EqualValues(t, 1, total)

	require.NoError(t, env.menu.DeleteMenuItem(item.ID))
	_, err = env.menu.GetMenuItem(item.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
