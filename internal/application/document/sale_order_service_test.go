package document

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
)

type saleOrderFixture struct {
	orders      *MockSaleOrderRepository
	sequences   *MockSequenceRepository
	conversions *MockConversionRepository
	svc         *SaleOrderService
}

func newSaleOrderFixture() *saleOrderFixture {
	f := &saleOrderFixture{
		orders:      new(MockSaleOrderRepository),
		sequences:   new(MockSequenceRepository),
		conversions: new(MockConversionRepository),
	}
	f.svc = NewSaleOrderService(f.orders, f.sequences, f.conversions, zap.NewNop())
	return f
}

func TestSaleOrderService_Create(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("back office order numbers from the SO series", func(t *testing.T) {
		f := newSaleOrderFixture()
		f.sequences.On("NextNumber", ctx, document.SeriesSaleOrder).Return("SO0001", nil)
		f.orders.On("Save", ctx, mock.AnythingOfType("*document.SaleOrder")).Return(nil)

		resp, err := f.svc.Create(ctx, CreateSaleOrderRequest{
			CustomerAccountID: customerID,
			CustomerName:      "Globex Corp",
			Lines:             testLinesForm(),
		}, false)

		assert.NoError(t, err)
		assert.Equal(t, "SO0001", resp.OrderNumber)
		assert.Equal(t, "1100", resp.TotalAmount.String())
	})

	t.Run("portal order numbers from the PSO series", func(t *testing.T) {
		f := newSaleOrderFixture()
		f.sequences.On("NextNumber", ctx, document.SeriesPortalSaleOrder).Return("PSO0001", nil)
		f.orders.On("Save", ctx, mock.AnythingOfType("*document.SaleOrder")).Return(nil)

		resp, err := f.svc.Create(ctx, CreateSaleOrderRequest{
			CustomerAccountID: customerID,
			CustomerName:      "Globex Corp",
		}, true)

		assert.NoError(t, err)
		assert.Equal(t, "PSO0001", resp.OrderNumber)
	})

	t.Run("number collision retries once", func(t *testing.T) {
		f := newSaleOrderFixture()
		f.sequences.On("NextNumber", ctx, document.SeriesSaleOrder).Return("SO0001", nil).Once()
		f.sequences.On("NextNumber", ctx, document.SeriesSaleOrder).Return("SO0002", nil).Once()
		f.orders.On("Save", ctx, mock.AnythingOfType("*document.SaleOrder")).Return(shared.ErrNumberConflict).Once()
		f.orders.On("Save", ctx, mock.AnythingOfType("*document.SaleOrder")).Return(nil).Once()

		resp, err := f.svc.Create(ctx, CreateSaleOrderRequest{
			CustomerAccountID: customerID,
			CustomerName:      "Globex Corp",
		}, false)

		assert.NoError(t, err)
		assert.Equal(t, "SO0002", resp.OrderNumber)
	})
}

func TestSaleOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("sent order is frozen", func(t *testing.T) {
		f := newSaleOrderFixture()
		order, err := document.NewSaleOrder("SO0001", uuid.New(), "Globex Corp", time.Now())
		assert.NoError(t, err)
		assert.NoError(t, order.MarkSent(time.Now()))

		f.orders.On("FindByID", ctx, order.ID).Return(order, nil)

		notes := "late edit"
		resp, err := f.svc.Update(ctx, order.ID, UpdateSaleOrderRequest{Notes: &notes})

		assert.Nil(t, resp)
		assert.Error(t, err)
		f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSaleOrderService_Send(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("sending derives an invoice with the order's lines and totals", func(t *testing.T) {
		f := newSaleOrderFixture()
		order, err := document.NewSaleOrder("SO0001", customerID, "Globex Corp", time.Now())
		assert.NoError(t, err)
		_, err = order.ReplaceLines(testLinesForm().Parse())
		assert.NoError(t, err)

		f.orders.On("FindByID", ctx, order.ID).Return(order, nil)
		f.sequences.On("NextNumber", ctx, document.SeriesInvoice).Return("INV-0001", nil)
		f.conversions.On("SaveSaleOrderWithInvoice", ctx,
			mock.AnythingOfType("*document.SaleOrder"),
			mock.AnythingOfType("*document.Invoice")).Return(nil)

		resp, err := f.svc.Send(ctx, order.ID, SendSaleOrderRequest{})

		assert.NoError(t, err)
		invoice := resp.Invoice
		assert.NotNil(t, invoice)
		assert.Equal(t, "INV-0001", invoice.InvoiceNumber)
		assert.Equal(t, customerID, invoice.CustomerAccountID)
		assert.Equal(t, "1100", invoice.TotalAmount.String())
		assert.Len(t, invoice.Lines, 2)
		assert.True(t, order.IsSent())
		assert.NotNil(t, invoice.SourceOrderID)
		assert.Equal(t, order.ID, *invoice.SourceOrderID)
		assert.Equal(t, "sent", resp.Order.Status)
	})

	t.Run("sending twice changes nothing and mints no second invoice", func(t *testing.T) {
		f := newSaleOrderFixture()
		order, err := document.NewSaleOrder("SO0002", customerID, "Globex Corp", time.Now())
		assert.NoError(t, err)
		assert.NoError(t, order.MarkSent(time.Now()))
		versionBefore := order.Version

		f.orders.On("FindByID", ctx, order.ID).Return(order, nil)

		resp, err := f.svc.Send(ctx, order.ID, SendSaleOrderRequest{})

		assert.NoError(t, err)
		assert.Nil(t, resp.Invoice)
		assert.Equal(t, "SO0002", resp.Order.OrderNumber)
		assert.Equal(t, "sent", resp.Order.Status)
		assert.Equal(t, versionBefore, order.Version)
		f.sequences.AssertNotCalled(t, "NextNumber", mock.Anything, mock.Anything)
		f.conversions.AssertNotCalled(t, "SaveSaleOrderWithInvoice", mock.Anything, mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invoice number collision retries once", func(t *testing.T) {
		f := newSaleOrderFixture()
		order, err := document.NewSaleOrder("SO0003", customerID, "Globex Corp", time.Now())
		assert.NoError(t, err)

		f.orders.On("FindByID", ctx, order.ID).Return(order, nil)
		f.sequences.On("NextNumber", ctx, document.SeriesInvoice).Return("INV-0001", nil).Once()
		f.sequences.On("NextNumber", ctx, document.SeriesInvoice).Return("INV-0002", nil).Once()
		f.conversions.On("SaveSaleOrderWithInvoice", ctx, mock.Anything, mock.Anything).Return(shared.ErrNumberConflict).Once()
		f.conversions.On("SaveSaleOrderWithInvoice", ctx, mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := f.svc.Send(ctx, order.ID, SendSaleOrderRequest{})

		assert.NoError(t, err)
		assert.NotNil(t, resp.Invoice)
		assert.Equal(t, "INV-0002", resp.Invoice.InvoiceNumber)
	})
}
