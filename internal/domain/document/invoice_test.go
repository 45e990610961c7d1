package document

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestInvoice(t *testing.T, dueDate time.Time) *Invoice {
	inv, err := NewInvoice("INV-0001", uuid.New(), "Nimesh Pathak", time.Now(), dueDate)
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	t.Run("created in sent status", func(t *testing.T) {
		inv := createTestInvoice(t, time.Now().Add(14*24*time.Hour))
		assert.Equal(t, InvoiceStatusSent, inv.Status)
		assert.True(t, inv.BalanceDue.IsZero())
	})

	t.Run("due date defaults to invoice date", func(t *testing.T) {
		invoiceDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		inv, err := NewInvoice("INV-0002", uuid.New(), "Nimesh Pathak", invoiceDate, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, invoiceDate, inv.DueDate)
	})
}

func TestInvoice_CloneLinesFrom(t *testing.T) {
	order := createTestSaleOrder(t)
	_, err := order.ReplaceLines(ParseLineInputs(
		[]string{"Office Chair", "Wooden Desk"},
		nil,
		[]string{"5", "1"},
		[]string{"200", "500"},
	))
	require.NoError(t, err)

	inv := createTestInvoice(t, time.Time{})
	inv.CloneLinesFrom(order)

	require.Len(t, inv.Lines, 2)
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, inv.Tax.IsZero())
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, inv.BalanceDue.Equal(decimal.NewFromInt(1500)))
	require.NotNil(t, inv.SourceOrderID)
	assert.Equal(t, order.ID, *inv.SourceOrderID)
}

func TestInvoice_RegisterPayment(t *testing.T) {
	order := createTestSaleOrder(t)
	_, err := order.ReplaceLines(ParseLineInputs([]string{"Chair"}, nil, []string{"10"}, []string{"100"}))
	require.NoError(t, err)

	inv := createTestInvoice(t, time.Now().Add(30*24*time.Hour))
	inv.CloneLinesFrom(order)

	require.NoError(t, inv.RegisterPayment(decimal.NewFromInt(300)))
	assert.Equal(t, InvoiceStatusPartial, inv.Status)
	assert.True(t, inv.BalanceDue.Equal(decimal.NewFromInt(700)))

	require.NoError(t, inv.RegisterPayment(decimal.NewFromInt(700)))
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
	assert.True(t, inv.BalanceDue.IsZero())

	// Fully paid invoices accept no further payments
	assert.Error(t, inv.RegisterPayment(decimal.NewFromInt(1)))
}

func TestInvoice_EffectiveStatus(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("before due date keeps stored status", func(t *testing.T) {
		inv := createTestInvoice(t, now.Add(24*time.Hour))
		assert.Equal(t, InvoiceStatusSent, inv.EffectiveStatus(now))
	})

	t.Run("past due and unpaid reads overdue", func(t *testing.T) {
		inv := createTestInvoice(t, now.Add(-24*time.Hour))
		assert.Equal(t, InvoiceStatusOverdue, inv.EffectiveStatus(now))
		// Lazy evaluation never rewrites the stored status
		assert.Equal(t, InvoiceStatusSent, inv.Status)
	})

	t.Run("past due but partially paid reads overdue", func(t *testing.T) {
		order := createTestSaleOrder(t)
		_, err := order.ReplaceLines(ParseLineInputs([]string{"Chair"}, nil, []string{"1"}, []string{"100"}))
		require.NoError(t, err)
		inv := createTestInvoice(t, now.Add(-24*time.Hour))
		inv.CloneLinesFrom(order)
		require.NoError(t, inv.RegisterPayment(decimal.NewFromInt(50)))
		assert.Equal(t, InvoiceStatusOverdue, inv.EffectiveStatus(now))
	})

	t.Run("paid never reads overdue", func(t *testing.T) {
		order := createTestSaleOrder(t)
		_, err := order.ReplaceLines(ParseLineInputs([]string{"Chair"}, nil, []string{"1"}, []string{"100"}))
		require.NoError(t, err)
		inv := createTestInvoice(t, now.Add(-24*time.Hour))
		inv.CloneLinesFrom(order)
		require.NoError(t, inv.RegisterPayment(decimal.NewFromInt(100)))
		assert.Equal(t, InvoiceStatusPaid, inv.EffectiveStatus(now))
	})
}
