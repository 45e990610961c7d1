package document

import (
	"context"
	"errors"
	"time"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SaleOrderService handles sale order business operations
type SaleOrderService struct {
	orders      document.SaleOrderRepository
	sequences   document.SequenceRepository
	conversions document.ConversionRepository
	logger      *zap.Logger
}

// NewSaleOrderService creates a new SaleOrderService
func NewSaleOrderService(
	orders document.SaleOrderRepository,
	sequences document.SequenceRepository,
	conversions document.ConversionRepository,
	logger *zap.Logger,
) *SaleOrderService {
	return &SaleOrderService{
		orders:      orders,
		sequences:   sequences,
		conversions: conversions,
		logger:      logger,
	}
}

// Create creates a new draft sale order. Back-office orders number from
// the SO series; portal self-service orders from the PSO series.
func (s *SaleOrderService) Create(ctx context.Context, req CreateSaleOrderRequest, fromPortal bool) (*SaleOrderResponse, error) {
	series := document.SeriesSaleOrder
	if fromPortal {
		series = document.SeriesPortalSaleOrder
	}

	var orderDate time.Time
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	var order *document.SaleOrder
	for attempt := 0; attempt < 2; attempt++ {
		orderNumber, err := s.sequences.NextNumber(ctx, series)
		if err != nil {
			return nil, err
		}
		order, err = document.NewSaleOrder(orderNumber, req.CustomerAccountID, req.CustomerName, orderDate)
		if err != nil {
			return nil, err
		}
		order.SetReference(req.Reference)
		order.SetNotes(req.Notes)
		if _, err := order.ReplaceLines(req.Lines.Parse()); err != nil {
			return nil, err
		}

		err = s.orders.Save(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, shared.ErrNumberConflict) || attempt == 1 {
			return nil, err
		}
		s.logger.Warn("order number collision, reissuing",
			zap.String("order_number", orderNumber))
	}

	s.logger.Info("sale order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("customer_name", order.CustomerName))

	response := ToSaleOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a sale order by ID
func (s *SaleOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*SaleOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToSaleOrderResponse(order)
	return &response, nil
}

// List retrieves non-archived sale orders
func (s *SaleOrderService) List(ctx context.Context, filter shared.Filter) ([]SaleOrderResponse, error) {
	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToSaleOrderResponses(orders), nil
}

// ListForCustomerAccount retrieves sale orders visible to a portal
// customer account
func (s *SaleOrderService) ListForCustomerAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]SaleOrderResponse, error) {
	orders, err := s.orders.FindByCustomerAccount(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}
	return ToSaleOrderResponses(orders), nil
}

// Update edits a draft sale order; sent orders are frozen
func (s *SaleOrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdateSaleOrderRequest) (*SaleOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsSent() {
		return nil, shared.NewDomainError("INVALID_STATE", "Sent orders cannot be edited")
	}

	if req.Reference != nil {
		order.SetReference(*req.Reference)
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	if req.Notes != nil {
		order.SetNotes(*req.Notes)
	}
	if req.Lines != nil {
		if _, err := order.ReplaceLines(req.Lines.Parse()); err != nil {
			return nil, err
		}
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSaleOrderResponse(order)
	return &response, nil
}

// Send marks a draft order sent and derives its customer invoice in one
// transaction. Sending an already-sent order changes nothing and returns
// the order as it stands; the first invoice is the only one ever minted.
func (s *SaleOrderService) Send(ctx context.Context, orderID uuid.UUID, req SendSaleOrderRequest) (*SendSaleOrderResult, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.IsSent() {
		s.logger.Info("sale order already sent, nothing to do",
			zap.String("order_number", order.OrderNumber))
		return &SendSaleOrderResult{Order: ToSaleOrderResponse(order)}, nil
	}

	now := time.Now()
	if err := order.MarkSent(now); err != nil {
		return nil, err
	}

	var dueDate time.Time
	if req.DueDate != nil {
		dueDate = *req.DueDate
	}

	var invoice *document.Invoice
	for attempt := 0; attempt < 2; attempt++ {
		invoiceNumber, err := s.sequences.NextNumber(ctx, document.SeriesInvoice)
		if err != nil {
			return nil, err
		}
		invoice, err = document.NewInvoice(invoiceNumber, order.CustomerAccountID, order.CustomerName, now, dueDate)
		if err != nil {
			return nil, err
		}
		invoice.CloneLinesFrom(order)

		err = s.conversions.SaveSaleOrderWithInvoice(ctx, order, invoice)
		if err == nil {
			break
		}
		if !errors.Is(err, shared.ErrNumberConflict) || attempt == 1 {
			return nil, err
		}
		s.logger.Warn("invoice number collision, reissuing",
			zap.String("invoice_number", invoiceNumber))
	}

	s.logger.Info("sale order sent",
		zap.String("order_number", order.OrderNumber),
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("total_amount", invoice.TotalAmount.String()))

	invoiceResponse := ToInvoiceResponse(invoice, now)
	return &SendSaleOrderResult{
		Order:   ToSaleOrderResponse(order),
		Invoice: &invoiceResponse,
	}, nil
}

// Archive soft-deletes a sale order
func (s *SaleOrderService) Archive(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	order.Archive()
	return s.orders.Save(ctx, order)
}
