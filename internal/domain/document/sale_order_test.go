package document

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSaleOrder(t *testing.T) *SaleOrder {
	order, err := NewSaleOrder("SO0001", uuid.New(), "Nimesh Pathak", time.Now())
	require.NoError(t, err)
	return order
}

func TestNewSaleOrder(t *testing.T) {
	t.Run("creates draft order", func(t *testing.T) {
		order := createTestSaleOrder(t)
		assert.Equal(t, SaleOrderStatusDraft, order.Status)
		assert.Nil(t, order.SentAt)
	})

	t.Run("requires a customer account", func(t *testing.T) {
		_, err := NewSaleOrder("SO0001", uuid.Nil, "Nimesh Pathak", time.Now())
		assert.Error(t, err)
	})
}

func TestSaleOrder_ReplaceLines(t *testing.T) {
	order := createTestSaleOrder(t)

	total, err := order.ReplaceLines(testLineInputs())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(400)))
	assert.Len(t, order.Lines, 2)

	t.Run("sent orders are frozen", func(t *testing.T) {
		require.NoError(t, order.MarkSent(time.Now()))
		_, err := order.ReplaceLines(testLineInputs())
		assert.Error(t, err)
	})
}

func TestSaleOrder_MarkSent(t *testing.T) {
	order := createTestSaleOrder(t)
	sentAt := time.Now()

	require.NoError(t, order.MarkSent(sentAt))
	assert.Equal(t, SaleOrderStatusSent, order.Status)
	require.NotNil(t, order.SentAt)
	assert.Equal(t, sentAt, *order.SentAt)

	// Sending is one-way; a second send must fail so the caller can
	// guard against duplicate invoices
	err := order.MarkSent(time.Now())
	assert.Error(t, err)
	assert.Equal(t, sentAt, *order.SentAt)
}
