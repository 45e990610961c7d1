package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
)

func sentPurchaseOrder(t *testing.T, number string) *document.PurchaseOrder {
	t.Helper()
	order, err := document.NewPurchaseOrder(number, "Acme Supplies", time.Now())
	require.NoError(t, err)
	order.ReplaceLines(testLineInputs())
	require.True(t, order.RequestTransition(document.PurchaseOrderStatusSent))
	return order
}

func TestGormConversionRepository_PurchaseOrderWithBill(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormConversionRepository(db)
	orderRepo := NewGormPurchaseOrderRepository(db)
	billRepo := NewGormVendorBillRepository(db)

	order := sentPurchaseOrder(t, "PO0007")
	require.NoError(t, orderRepo.Save(ctx, order))

	bill, err := document.NewVendorBill("Bill/PO0007/0001", order.VendorName, time.Now())
	require.NoError(t, err)
	bill.CloneLinesFrom(order)
	bill.LinkSourceOrder(order.ID, order.OrderNumber)
	require.NoError(t, order.MarkReceived())

	require.NoError(t, repo.SavePurchaseOrderWithBill(ctx, order, bill))

	savedOrder, err := orderRepo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, document.PurchaseOrderStatusReceived, savedOrder.Status)

	savedBill, err := billRepo.FindByID(ctx, bill.ID)
	require.NoError(t, err)
	assert.Len(t, savedBill.Lines, 2)
	assert.True(t, savedBill.TotalAmount.Equal(decimal.NewFromInt(1100)))
	require.NotNil(t, savedBill.SourceOrderID)
	assert.Equal(t, order.ID, *savedBill.SourceOrderID)
}

func TestGormConversionRepository_RollsBackOnBillConflict(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormConversionRepository(db)
	orderRepo := NewGormPurchaseOrderRepository(db)
	billRepo := NewGormVendorBillRepository(db)

	existing, err := document.NewVendorBill("Bill/PO0007/0001", "Acme Supplies", time.Now())
	require.NoError(t, err)
	require.NoError(t, billRepo.Save(ctx, existing))

	order := sentPurchaseOrder(t, "PO0007")
	require.NoError(t, orderRepo.Save(ctx, order))

	bill, err := document.NewVendorBill("Bill/PO0007/0001", order.VendorName, time.Now())
	require.NoError(t, err)
	bill.CloneLinesFrom(order)
	bill.LinkSourceOrder(order.ID, order.OrderNumber)
	require.NoError(t, order.MarkReceived())

	err = repo.SavePurchaseOrderWithBill(ctx, order, bill)
	assert.ErrorIs(t, err, shared.ErrNumberConflict)

	savedOrder, err := orderRepo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, document.PurchaseOrderStatusSent, savedOrder.Status)
}

func TestGormConversionRepository_SaleOrderWithInvoice(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormConversionRepository(db)
	orderRepo := NewGormSaleOrderRepository(db)
	invoiceRepo := NewGormInvoiceRepository(db)

	customerID := uuid.New()
	order, err := document.NewSaleOrder("SO0003", customerID, "Initech", time.Now())
	require.NoError(t, err)
	_, err = order.ReplaceLines(testLineInputs())
	require.NoError(t, err)
	require.NoError(t, orderRepo.Save(ctx, order))

	now := time.Now()
	invoice, err := document.NewInvoice("INV-0001", customerID, order.CustomerName, now, now.AddDate(0, 0, 30))
	require.NoError(t, err)
	invoice.CloneLinesFrom(order)
	require.NoError(t, order.MarkSent(now))

	require.NoError(t, repo.SaveSaleOrderWithInvoice(ctx, order, invoice))

	savedOrder, err := orderRepo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, savedOrder.IsSent())

	savedInvoice, err := invoiceRepo.FindByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Len(t, savedInvoice.Lines, 2)
	assert.True(t, savedInvoice.TotalAmount.Equal(decimal.NewFromInt(1100)))
	assert.Equal(t, customerID, savedInvoice.CustomerAccountID)
	require.NotNil(t, savedInvoice.SourceOrderID)
	assert.Equal(t, order.ID, *savedInvoice.SourceOrderID)
}
