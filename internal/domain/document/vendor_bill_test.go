package document

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestVendorBill(t *testing.T) *VendorBill {
	bill, err := NewVendorBill("Bill/2026/0001", "Azure Interior", time.Now())
	require.NoError(t, err)
	return bill
}

func TestNewVendorBill(t *testing.T) {
	bill := createTestVendorBill(t)
	assert.Equal(t, VendorBillStatusDraft, bill.Status)
	assert.Equal(t, PaymentStatusNotPaid, bill.PaymentStatus)
	assert.True(t, bill.TotalAmount.IsZero())
	assert.Nil(t, bill.SourceOrderID)

	_, err := NewVendorBill("", "Azure Interior", time.Now())
	assert.Error(t, err)
}

func TestVendorBill_CloneLinesFrom(t *testing.T) {
	order := createTestPurchaseOrder(t)
	order.ReplaceLines(ParseLineInputs(
		[]string{"Chair", "Desk"},
		[]string{"Design", "Design"},
		[]string{"10", "2"},
		[]string{"100", "250"},
	))
	require.True(t, order.TotalAmount.Equal(decimal.NewFromInt(1500)))

	bill := createTestVendorBill(t)
	bill.LinkSourceOrder(order.ID, order.OrderNumber)
	bill.CloneLinesFrom(order)

	require.Len(t, bill.Lines, 2)
	assert.True(t, bill.TotalAmount.Equal(order.TotalAmount))
	assert.Equal(t, order.OrderNumber, bill.Reference)
	require.NotNil(t, bill.SourceOrderID)
	assert.Equal(t, order.ID, *bill.SourceOrderID)

	// Line-for-line clones whose totals sum to the order total
	sum := decimal.Zero
	for i, line := range bill.Lines {
		assert.Equal(t, order.Lines[i].ProductName, line.ProductName)
		assert.True(t, order.Lines[i].Quantity.Equal(line.Quantity))
		assert.True(t, order.Lines[i].UnitPrice.Equal(line.UnitPrice))
		assert.True(t, order.Lines[i].LineTotal.Equal(line.LineTotal))
		sum = sum.Add(line.LineTotal)
	}
	assert.True(t, sum.Equal(decimal.NewFromInt(1500)))
}

func TestVendorBill_Confirm(t *testing.T) {
	bill := createTestVendorBill(t)
	bill.Confirm()
	assert.Equal(t, VendorBillStatusConfirmed, bill.Status)

	version := bill.Version
	bill.Confirm()
	assert.Equal(t, version, bill.Version, "confirming twice is a no-op")
}

func TestVendorBill_RegisterPayment(t *testing.T) {
	bill := createTestVendorBill(t)
	bill.ReplaceLines(ParseLineInputs([]string{"Chair"}, nil, []string{"10"}, []string{"100"}))
	require.True(t, bill.TotalAmount.Equal(decimal.NewFromInt(1000)))

	t.Run("partial payment", func(t *testing.T) {
		require.NoError(t, bill.RegisterPayment(decimal.NewFromInt(400)))
		assert.Equal(t, PaymentStatusPartial, bill.PaymentStatus)
		assert.True(t, bill.BalanceDue().Equal(decimal.NewFromInt(600)))
	})

	t.Run("full payment", func(t *testing.T) {
		require.NoError(t, bill.RegisterPayment(decimal.NewFromInt(600)))
		assert.Equal(t, PaymentStatusPaid, bill.PaymentStatus)
		assert.True(t, bill.BalanceDue().IsZero())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		assert.Error(t, bill.RegisterPayment(decimal.Zero))
		assert.Error(t, bill.RegisterPayment(decimal.NewFromInt(-5)))
	})
}

func TestPaymentStatusFor(t *testing.T) {
	total := decimal.NewFromInt(100)
	assert.Equal(t, PaymentStatusNotPaid, paymentStatusFor(decimal.Zero, total))
	assert.Equal(t, PaymentStatusPartial, paymentStatusFor(decimal.NewFromInt(50), total))
	assert.Equal(t, PaymentStatusPaid, paymentStatusFor(total, total))
	assert.Equal(t, PaymentStatusPaid, paymentStatusFor(decimal.NewFromInt(120), total))
}
