package services_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/gihanchamila/Little-Lemon-capston/entity"
	"github.com/gihanchamila/Little-Lemon-capston/repository"
	"github.com/gihanchamila/Little-Lemon-capston/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

// newTestDB opens a fresh named in-memory sqlite database per test so
// state never bleeds between tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Role{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{}, &entity.OrderItem{},
	))

	require.NoError(t, db.FirstOrCreate(&entity.Role{}, entity.Role{Name: entity.RoleManager}).Error)
	require.NoError(t, db.FirstOrCreate(&entity.Role{}, entity.Role{Name: entity.RoleDeliveryCrew}).Error)
	return db
}

type testEnv struct {
	db    *gorm.DB
	carts *services.CartService
	order *services.OrderService
	roles *services.RoleService
	menu  *services.MenuService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	roles := services.NewRoleService(roleRepo)
	return &testEnv{
		db:    db,
		carts: services.NewCartService(db, cartRepo, menuRepo),
		order: services.NewOrderService(db, orderRepo, cartRepo, roles),
		roles: roles,
		menu:  services.NewMenuService(menuRepo),
	}
}

func createUser(t *testing.T, db *gorm.DB, email string, superuser bool) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", IsSuperuser: superuser}
	require.NoError(t, db.Create(u).Error)
	return u
}

func grantRole(t *testing.T, env *testEnv, userID uint, role string) {
	t.Helper()
	require.NoError(t, env.roles.AddUserToRole(userID, role))
}

func createCategory(t *testing.T, db *gorm.DB, title string) *entity.Category {
	t.Helper()
	c := &entity.Category{Slug: title, Title: title}
	require.NoError(t, db.Create(c).Error)
	return c
}

func createMenuItem(t *testing.T, db *gorm.DB, title, price string, categoryID uint) *entity.MenuItem {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	m := &entity.MenuItem{Title: title, Price: p, CategoryID: categoryID}
	require.NoError(t, db.Create(m).Error)
	return m
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func actor(u *entity.User) services.Actor {
	return services.Actor{UserID: u.ID}
}
