package document

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPurchaseOrder(t *testing.T) *PurchaseOrder {
	order, err := NewPurchaseOrder("PO0001", "Azure Interior", time.Now())
	require.NoError(t, err)
	return order
}

func testLineInputs() []LineInput {
	return ParseLineInputs(
		[]string{"Chair", "", "Desk"},
		[]string{"Design", "", "Design"},
		[]string{"2", "5", "1"},
		[]string{"100", "50", "200"},
	)
}

func TestPurchaseOrderStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  PurchaseOrderStatus
		isValid bool
	}{
		{PurchaseOrderStatusDraft, true},
		{PurchaseOrderStatusSent, true},
		{PurchaseOrderStatusReceived, true},
		{PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusConfirmed, true},
		{PurchaseOrderStatus("archived"), false},
		{PurchaseOrderStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestPurchaseOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     PurchaseOrderStatus
		to       PurchaseOrderStatus
		canTrans bool
	}{
		// From draft
		{PurchaseOrderStatusDraft, PurchaseOrderStatusSent, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusConfirmed, true},
		{PurchaseOrderStatusDraft, PurchaseOrderStatusReceived, false},
		// From sent
		{PurchaseOrderStatusSent, PurchaseOrderStatusReceived, true},
		{PurchaseOrderStatusSent, PurchaseOrderStatusCancelled, true},
		{PurchaseOrderStatusSent, PurchaseOrderStatusConfirmed, false},
		{PurchaseOrderStatusSent, PurchaseOrderStatusDraft, false},
		// Terminal states
		{PurchaseOrderStatusReceived, PurchaseOrderStatusSent, false},
		{PurchaseOrderStatusCancelled, PurchaseOrderStatusSent, false},
		{PurchaseOrderStatusConfirmed, PurchaseOrderStatusReceived, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewPurchaseOrder(t *testing.T) {
	t.Run("creates draft order", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		assert.Equal(t, PurchaseOrderStatusDraft, order.Status)
		assert.Equal(t, "PO0001", order.OrderNumber)
		assert.Equal(t, "Azure Interior", order.VendorName)
		assert.True(t, order.TotalAmount.IsZero())
		assert.Nil(t, order.VendorAccountID)
		assert.False(t, order.Archived)
	})

	t.Run("rejects empty order number", func(t *testing.T) {
		_, err := NewPurchaseOrder("", "Azure Interior", time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects empty vendor name", func(t *testing.T) {
		_, err := NewPurchaseOrder("PO0001", "   ", time.Now())
		assert.Error(t, err)
	})
}

func TestPurchaseOrder_ReplaceLines(t *testing.T) {
	t.Run("skips blank rows and sums totals", func(t *testing.T) {
		order := createTestPurchaseOrder(t)

		total := order.ReplaceLines(testLineInputs())

		// Blank-named middle row contributes nothing
		require.Len(t, order.Lines, 2)
		assert.True(t, total.Equal(decimal.NewFromInt(400)), "got %s", total)
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(400)))
		assert.True(t, order.Lines[0].LineTotal.Equal(decimal.NewFromInt(200)))
		assert.True(t, order.Lines[1].LineTotal.Equal(decimal.NewFromInt(200)))
	})

	t.Run("replaces prior lines entirely", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		order.ReplaceLines(testLineInputs())

		total := order.ReplaceLines(ParseLineInputs(
			[]string{"Cabinet"}, nil, []string{"3"}, []string{"50"},
		))

		require.Len(t, order.Lines, 1)
		assert.True(t, total.Equal(decimal.NewFromInt(150)))
		assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(150)))
	})

	t.Run("empty input clears lines and total", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		order.ReplaceLines(testLineInputs())

		total := order.ReplaceLines(nil)

		assert.Empty(t, order.Lines)
		assert.True(t, total.IsZero())
		assert.True(t, order.TotalAmount.IsZero())
	})
}

func TestPurchaseOrder_RequestTransition(t *testing.T) {
	t.Run("draft to sent", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		assert.True(t, order.RequestTransition(PurchaseOrderStatusSent))
		assert.Equal(t, PurchaseOrderStatusSent, order.Status)
	})

	t.Run("sent to received", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		order.RequestTransition(PurchaseOrderStatusSent)
		assert.True(t, order.RequestTransition(PurchaseOrderStatusReceived))
		assert.Equal(t, PurchaseOrderStatusReceived, order.Status)
	})

	t.Run("legacy direct confirm from draft", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		assert.True(t, order.RequestTransition(PurchaseOrderStatusConfirmed))
		assert.Equal(t, PurchaseOrderStatusConfirmed, order.Status)
	})

	t.Run("unknown target is a no-op", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		version := order.Version

		changed := order.RequestTransition(PurchaseOrderStatus("archived"))

		assert.False(t, changed)
		assert.Equal(t, PurchaseOrderStatusDraft, order.Status)
		assert.Equal(t, version, order.Version)
	})

	t.Run("draft cannot jump to received", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		assert.False(t, order.RequestTransition(PurchaseOrderStatusReceived))
		assert.Equal(t, PurchaseOrderStatusDraft, order.Status)
	})

	t.Run("draft is never a transition target", func(t *testing.T) {
		order := createTestPurchaseOrder(t)
		order.RequestTransition(PurchaseOrderStatusSent)
		assert.False(t, order.RequestTransition(PurchaseOrderStatusDraft))
		assert.Equal(t, PurchaseOrderStatusSent, order.Status)
	})
}

func TestPurchaseOrder_MarkReceived(t *testing.T) {
	order := createTestPurchaseOrder(t)

	err := order.MarkReceived()
	assert.Error(t, err, "draft orders cannot be received")

	order.RequestTransition(PurchaseOrderStatusSent)
	require.NoError(t, order.MarkReceived())
	assert.Equal(t, PurchaseOrderStatusReceived, order.Status)
}

func TestPurchaseOrder_LinkVendorAccount(t *testing.T) {
	order := createTestPurchaseOrder(t)
	accountID := uuid.New()

	order.LinkVendorAccount(&accountID)
	require.NotNil(t, order.VendorAccountID)
	assert.Equal(t, accountID, *order.VendorAccountID)

	// Clearing overwrites, never leaves a stale link
	order.LinkVendorAccount(nil)
	assert.Nil(t, order.VendorAccountID)
}

func TestPurchaseOrder_Archive(t *testing.T) {
	order := createTestPurchaseOrder(t)
	order.Archive()
	assert.True(t, order.Archived)
	// Status untouched; archiving is not a lifecycle transition
	assert.Equal(t, PurchaseOrderStatusDraft, order.Status)
}
