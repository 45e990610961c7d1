package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
)

func testLineInputs() []document.LineInput {
	return []document.LineInput{
		{ProductName: "Steel Rods", AnalyticTag: "plant-a", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(100)},
		{ProductName: "Copper Wire", Quantity: decimal.RequireFromString("2.5"), UnitPrice: decimal.NewFromInt(40)},
	}
}

func TestGormPurchaseOrderRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	order, err := document.NewPurchaseOrder("PO0001", "Acme Supplies", time.Now())
	require.NoError(t, err)
	order.ReplaceLines(testLineInputs())
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "PO0001", found.OrderNumber)
	assert.Equal(t, "Acme Supplies", found.VendorName)
	assert.Len(t, found.Lines, 2)
	assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(1100)))

	byNumber, err := repo.FindByOrderNumber(ctx, "PO0001")
	require.NoError(t, err)
	assert.Equal(t, order.ID, byNumber.ID)
}

func TestGormPurchaseOrderRepository_FindByIDNotFound(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	order, err := document.NewPurchaseOrder("PO0001", "Acme Supplies", time.Now())
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, order.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPurchaseOrderRepository_LineReplacement(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	order, err := document.NewPurchaseOrder("PO0001", "Acme Supplies", time.Now())
	require.NoError(t, err)
	order.ReplaceLines(testLineInputs())
	require.NoError(t, repo.Save(ctx, order))

	order.ReplaceLines([]document.LineInput{
		{ProductName: "Aluminium Sheet", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(50)},
	})
	require.NoError(t, repo.Save(ctx, order))

	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Len(t, found.Lines, 1)
	assert.Equal(t, "Aluminium Sheet", found.Lines[0].ProductName)

	var lineCount int64
	require.NoError(t, db.Model(&document.PurchaseOrderLine{}).Count(&lineCount).Error)
	assert.Equal(t, int64(1), lineCount)
}

func TestGormPurchaseOrderRepository_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	first, err := document.NewPurchaseOrder("PO0001", "Acme Supplies", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := document.NewPurchaseOrder("PO0001", "Globex Corp", time.Now())
	require.NoError(t, err)

	err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, shared.ErrNumberConflict)
}

func TestGormPurchaseOrderRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	active, err := document.NewPurchaseOrder("PO0001", "Acme Supplies", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, active))

	archived, err := document.NewPurchaseOrder("PO0002", "Globex Corp", time.Now())
	require.NoError(t, err)
	archived.Archive()
	require.NoError(t, repo.Save(ctx, archived))

	orders, err := repo.FindAll(ctx, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "PO0001", orders[0].OrderNumber)
}

func TestGormPurchaseOrderRepository_FindAllSearch(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	acme, err := document.NewPurchaseOrder("PO0001", "Acme Supplies", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, acme))

	globex, err := document.NewPurchaseOrder("PO0002", "Globex Corp", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, globex))

	filter := shared.DefaultFilter()
	filter.Search = "Globex"
	orders, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "PO0002", orders[0].OrderNumber)

	filter = shared.DefaultFilter()
	filter.Filters["status"] = "draft"
	orders, err = repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestGormPurchaseOrderRepository_FindByVendorName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormPurchaseOrderRepository(db)

	for _, number := range []string{"PO0001", "PO0002"} {
		order, err := document.NewPurchaseOrder(number, "Acme Supplies", time.Now())
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, order))
	}
	other, err := document.NewPurchaseOrder("PO0003", "Globex Corp", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	orders, err := repo.FindByVendorName(ctx, "Acme Supplies")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
