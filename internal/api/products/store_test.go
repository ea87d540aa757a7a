package products

import (
	"context"
	"fmt"
	"testing"

	"product-studio/internal/domain/plans"
	"product-studio/internal/domain/products"
	"product-studio/internal/domain/users"
	"product-studio/internal/generation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Shared-cache memory DSN keyed by test name so the pool's connections
	// all see the same database and tests stay isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&users.User{}, &products.Product{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, plan string, count int) users.User {
	t.Helper()
	u := users.User{
		Name:         "Test User",
		Email:        email,
		AuthProvider: "local",
		IsVerified:   true,
		Plan:         plan,
		ProductCount: count,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func ownerOf(u users.User) Owner {
	return Owner{UserID: u.ID, Plan: u.Plan, Count: u.ProductCount}
}

var sampleContent = &generation.GeneratedContent{
	ProductName: "Detox 7",
	MainPromise: "feel lighter in a week",
}

func TestStoreGetUserPlanAndCount(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "ana@example.com", plans.PlanFree, 1)
	store := NewStore(db)

	owner, err := store.GetUserPlanAndCount(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, owner.UserID)
	assert.Equal(t, plans.PlanFree, owner.Plan)
	assert.Equal(t, 1, owner.Count)

	_, err = store.GetUserPlanAndCount(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, products.ErrUserNotFound)
}

func TestStoreCreateProduct_FreeClaimsQuotaSlot(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "ana@example.com", plans.PlanFree, 0)
	store := NewStore(db)

	id, err := store.CreateProduct(context.Background(), ownerOf(u), products.OriginNiche, "keto diets", sampleContent, "/placeholders/c.png", "/placeholders/a.png")
	require.NoError(t, err)
	require.NotZero(t, id)

	var row products.Product
	require.NoError(t, db.First(&row, id).Error)
	assert.Equal(t, "Detox 7", row.ProductName)
	require.NotNil(t, row.Niche)
	assert.Equal(t, "keto diets", *row.Niche)
	assert.Nil(t, row.IdeaDescription)

	var after users.User
	require.NoError(t, db.First(&after, u.ID).Error)
	assert.Equal(t, 1, after.ProductCount)
}

func TestStoreCreateProduct_AtCapRollsBackInsert(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "ana@example.com", plans.PlanFree, plans.FreeProductLimit)
	store := NewStore(db)

	_, err := store.CreateProduct(context.Background(), ownerOf(u), products.OriginIdea, "a meal planner", sampleContent, "/placeholders/c.png", "/placeholders/a.png")
	assert.ErrorIs(t, err, products.ErrQuotaExceeded)

	// The insert must not survive the failed increment.
	var n int64
	require.NoError(t, db.Model(&products.Product{}).Where("user_id = ?", u.ID).Count(&n).Error)
	assert.Zero(t, n)

	var after users.User
	require.NoError(t, db.First(&after, u.ID).Error)
	assert.Equal(t, plans.FreeProductLimit, after.ProductCount)
}

func TestStoreCreateProduct_PaidLeavesCountAlone(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db, "pro@example.com", plans.PlanPaid, 5)
	store := NewStore(db)

	_, err := store.CreateProduct(context.Background(), ownerOf(u), products.OriginNiche, "keto", sampleContent, "/placeholders/c.png", "/placeholders/a.png")
	require.NoError(t, err)

	var after users.User
	require.NoError(t, db.First(&after, u.ID).Error)
	assert.Equal(t, 5, after.ProductCount)
}

func TestStoreGetProduct_MissingAndForeignLookIdentical(t *testing.T) {
	db := newTestDB(t)
	ana := seedUser(t, db, "ana@example.com", plans.PlanFree, 0)
	seedUser(t, db, "bob@example.com", plans.PlanFree, 0)
	store := NewStore(db)

	id, err := store.CreateProduct(context.Background(), ownerOf(ana), products.OriginNiche, "keto", sampleContent, "/placeholders/c.png", "/placeholders/a.png")
	require.NoError(t, err)

	got, err := store.GetProduct(context.Background(), id, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Detox 7", got.ProductName)

	// A nonexistent id and someone else's id must be indistinguishable.
	missing, err := store.GetProduct(context.Background(), id+999, "ana@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	foreign, err := store.GetProduct(context.Background(), id, "bob@example.com")
	assert.NoError(t, err)
	assert.Nil(t, foreign)
}

func TestStoreDeleteProduct_OwnershipAndQuota(t *testing.T) {
	db := newTestDB(t)
	ana := seedUser(t, db, "ana@example.com", plans.PlanFree, 0)
	seedUser(t, db, "bob@example.com", plans.PlanFree, 0)
	store := NewStore(db)

	id, err := store.CreateProduct(context.Background(), ownerOf(ana), products.OriginNiche, "keto", sampleContent, "/placeholders/c.png", "/placeholders/a.png")
	require.NoError(t, err)

	err = store.DeleteProduct(context.Background(), id, "bob@example.com")
	assert.ErrorIs(t, err, products.ErrNotOwner)

	// The non-owner attempt must leave the row intact.
	var row products.Product
	require.NoError(t, db.First(&row, id).Error)

	err = store.DeleteProduct(context.Background(), id+999, "ana@example.com")
	assert.ErrorIs(t, err, products.ErrProductNotFound)

	require.NoError(t, store.DeleteProduct(context.Background(), id, "ana@example.com"))
	err = db.First(&products.Product{}, id).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Deleting does not hand the quota slot back.
	var after users.User
	require.NoError(t, db.First(&after, ana.ID).Error)
	assert.Equal(t, 1, after.ProductCount)
}

func TestStoreListProducts_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	ana := seedUser(t, db, "ana@example.com", plans.PlanPaid, 0)
	bob := seedUser(t, db, "bob@example.com", plans.PlanPaid, 0)
	store := NewStore(db)

	first, err := store.CreateProduct(context.Background(), ownerOf(ana), products.OriginNiche, "keto", sampleContent, "/placeholders/c.png", "/placeholders/a.png")
	require.NoError(t, err)
	second, err := store.CreateProduct(context.Background(), ownerOf(ana), products.OriginIdea, "meal planner", sampleContent, "/placeholders/c.png", "/placeholders/a.png")
	require.NoError(t, err)
	_, err = store.CreateProduct(context.Background(), ownerOf(bob), products.OriginNiche, "crossfit", sampleContent, "/placeholders/c.png", "/placeholders/a.png")
	require.NoError(t, err)

	rows, err := store.ListProducts(context.Background(), "ana@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	ids := []uint{rows[0].ID, rows[1].ID}
	assert.ElementsMatch(t, []uint{first, second}, ids)

	empty, err := store.ListProducts(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
