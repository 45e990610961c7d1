package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
)

func TestGormVendorBillRepository_FindBySourceOrder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormVendorBillRepository(db)

	orderID := uuid.New()
	for _, number := range []string{"Bill/PO0007/0001", "Bill/PO0007/0002"} {
		bill, err := document.NewVendorBill(number, "Acme Supplies", time.Now())
		require.NoError(t, err)
		bill.LinkSourceOrder(orderID, "PO0007")
		require.NoError(t, repo.Save(ctx, bill))
	}
	standalone, err := document.NewVendorBill("Bill/2026/0001", "Acme Supplies", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, standalone))

	bills, err := repo.FindBySourceOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, bills, 2)

	bills, err = repo.FindBySourceOrder(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestGormVendorBillRepository_FindByVendorAccount(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewGormVendorBillRepository(db)

	accountID := uuid.New()
	mine, err := document.NewVendorBill("Bill/2026/0001", "Acme Supplies", time.Now())
	require.NoError(t, err)
	mine.LinkVendorAccount(&accountID)
	require.NoError(t, repo.Save(ctx, mine))

	other, err := document.NewVendorBill("Bill/2026/0002", "Globex Corp", time.Now())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	bills, err := repo.FindByVendorAccount(ctx, accountID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "Bill/2026/0001", bills[0].BillNumber)
}
