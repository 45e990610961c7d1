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

// PurchaseOrderService handles purchase order business operations
type PurchaseOrderService struct {
	orders      document.PurchaseOrderRepository
	sequences   document.SequenceRepository
	conversions document.ConversionRepository
	linker      *LinkageService
	logger      *zap.Logger
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orders document.PurchaseOrderRepository,
	sequences document.SequenceRepository,
	conversions document.ConversionRepository,
	linker *LinkageService,
	logger *zap.Logger,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orders:      orders,
		sequences:   sequences,
		conversions: conversions,
		linker:      linker,
		logger:      logger,
	}
}

// Create creates a new draft purchase order. Back-office orders number
// from the PO series; portal self-service orders from the PPO series
// and record their creator.
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest, createdBy *uuid.UUID) (*PurchaseOrderResponse, error) {
	series := document.SeriesPurchaseOrder
	if createdBy != nil {
		series = document.SeriesPortalPurchaseOrder
	}

	var orderDate time.Time
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	build := func(orderNumber string) (*document.PurchaseOrder, error) {
		order, err := document.NewPurchaseOrder(orderNumber, req.VendorName, orderDate)
		if err != nil {
			return nil, err
		}
		order.SetReference(req.Reference)
		order.SetNotes(req.Notes)
		order.CreatedByID = createdBy
		order.ReplaceLines(req.Lines.Parse())

		accountID, err := s.linker.ResolveVendorAccount(ctx, order.VendorName)
		if err != nil {
			return nil, err
		}
		order.LinkVendorAccount(accountID)
		return order, nil
	}

	order, err := s.saveWithFreshNumber(ctx, series, build)
	if err != nil {
		return nil, err
	}

	s.logger.Info("purchase order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("vendor_name", order.VendorName))

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// saveWithFreshNumber issues a number, builds and saves the order, and
// retries exactly once with a fresh number when the save hits a number
// collision. A second collision surfaces as an error.
func (s *PurchaseOrderService) saveWithFreshNumber(
	ctx context.Context,
	series document.Series,
	build func(orderNumber string) (*document.PurchaseOrder, error),
) (*document.PurchaseOrder, error) {
	for attempt := 0; attempt < 2; attempt++ {
		orderNumber, err := s.sequences.NextNumber(ctx, series)
		if err != nil {
			return nil, err
		}
		order, err := build(orderNumber)
		if err != nil {
			return nil, err
		}
		err = s.orders.Save(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, shared.ErrNumberConflict) || attempt == 1 {
			return nil, err
		}
		s.logger.Warn("order number collision, reissuing",
			zap.String("order_number", orderNumber))
	}
	return nil, shared.ErrNumberConflict
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves non-archived purchase orders
func (s *PurchaseOrderService) List(ctx context.Context, filter shared.Filter) ([]PurchaseOrderResponse, error) {
	orders, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponses(orders), nil
}

// ListForVendorAccount retrieves purchase orders visible to a portal
// vendor account
func (s *PurchaseOrderService) ListForVendorAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]PurchaseOrderResponse, error) {
	orders, err := s.orders.FindByVendorAccount(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}
	return ToPurchaseOrderResponses(orders), nil
}

// CountByStatus returns non-archived order counts per status plus a total
func (s *PurchaseOrderService) CountByStatus(ctx context.Context) (map[string]int64, error) {
	statuses := []document.PurchaseOrderStatus{
		document.PurchaseOrderStatusDraft,
		document.PurchaseOrderStatusSent,
		document.PurchaseOrderStatusReceived,
		document.PurchaseOrderStatusCancelled,
		document.PurchaseOrderStatusConfirmed,
	}
	counts := make(map[string]int64, len(statuses)+1)
	var total int64
	for _, status := range statuses {
		count, err := s.orders.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		counts[status.String()] = count
		total += count
	}
	counts["total"] = total
	return counts, nil
}

// Update edits a draft purchase order. A vendor name change re-resolves
// the portal account link; a line submission replaces the full line set.
func (s *PurchaseOrderService) Update(ctx context.Context, orderID uuid.UUID, req UpdatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanModify() {
		return nil, shared.NewDomainError("INVALID_STATE", "Only draft and sent orders can be edited")
	}

	if req.VendorName != nil {
		if err := order.SetVendorName(*req.VendorName); err != nil {
			return nil, err
		}
	}
	if req.Reference != nil {
		order.SetReference(*req.Reference)
	}
	if req.OrderDate != nil {
		order.SetOrderDate(*req.OrderDate)
	}
	if req.Notes != nil {
		order.SetNotes(*req.Notes)
	}
	if req.Lines != nil {
		order.ReplaceLines(req.Lines.Parse())
	}

	// The link is refreshed on every write, not only on name changes,
	// so contact and account edits since the last save are picked up
	accountID, err := s.linker.ResolveVendorAccount(ctx, order.VendorName)
	if err != nil {
		return nil, err
	}
	order.LinkVendorAccount(accountID)

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Transition requests a status change. An unknown target or an edge the
// state machine does not allow leaves the order untouched and returns
// its current state.
func (s *PurchaseOrderService) Transition(ctx context.Context, orderID uuid.UUID, target string) (*PurchaseOrderResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.RequestTransition(document.PurchaseOrderStatus(target)) {
		if err := s.orders.Save(ctx, order); err != nil {
			return nil, err
		}
		s.logger.Info("purchase order transitioned",
			zap.String("order_number", order.OrderNumber),
			zap.String("status", order.Status.String()))
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// AcceptAndBill marks a sent order received and derives a confirmed
// vendor bill from it in one transaction. The bill clones the order's
// lines and total and numbers from the order's own bill series. A
// non-nil vendorAccountID restricts acceptance to orders addressed to
// that portal account.
func (s *PurchaseOrderService) AcceptAndBill(ctx context.Context, orderID uuid.UUID, req AcceptPurchaseOrderRequest, vendorAccountID *uuid.UUID) (*VendorBillResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if vendorAccountID != nil {
		if order.VendorAccountID == nil || *order.VendorAccountID != *vendorAccountID {
			return nil, shared.NewDomainError("FORBIDDEN", "Order is not addressed to this vendor account")
		}
	}
	if err := order.MarkReceived(); err != nil {
		return nil, err
	}

	var billDate time.Time
	if req.BillDate != nil {
		billDate = *req.BillDate
	}

	series := document.BillSeriesForOrder(order.OrderNumber)
	var bill *document.VendorBill
	for attempt := 0; attempt < 2; attempt++ {
		billNumber, err := s.sequences.NextNumber(ctx, series)
		if err != nil {
			return nil, err
		}
		bill, err = document.NewVendorBill(billNumber, order.VendorName, billDate)
		if err != nil {
			return nil, err
		}
		bill.LinkSourceOrder(order.ID, order.OrderNumber)
		bill.LinkVendorAccount(order.VendorAccountID)
		bill.CloneLinesFrom(order)
		bill.Confirm()

		err = s.conversions.SavePurchaseOrderWithBill(ctx, order, bill)
		if err == nil {
			break
		}
		if !errors.Is(err, shared.ErrNumberConflict) || attempt == 1 {
			return nil, err
		}
		s.logger.Warn("bill number collision, reissuing",
			zap.String("bill_number", billNumber))
	}

	s.logger.Info("purchase order accepted and billed",
		zap.String("order_number", order.OrderNumber),
		zap.String("bill_number", bill.BillNumber),
		zap.String("total_amount", bill.TotalAmount.String()))

	response := ToVendorBillResponse(bill)
	return &response, nil
}

// CreateBill derives a draft vendor bill from an order without touching
// the order itself. Back-office bills number from the calendar-year
// series; the bill references the order and clones its lines and total.
func (s *PurchaseOrderService) CreateBill(ctx context.Context, orderID uuid.UUID, req CreateBillFromOrderRequest) (*VendorBillResponse, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var billDate time.Time
	if req.BillDate != nil {
		billDate = *req.BillDate
	}
	year := time.Now().Year()
	if req.BillDate != nil {
		year = req.BillDate.Year()
	}

	series := document.BillSeriesForYear(year)
	var bill *document.VendorBill
	for attempt := 0; attempt < 2; attempt++ {
		billNumber, err := s.sequences.NextNumber(ctx, series)
		if err != nil {
			return nil, err
		}
		bill, err = document.NewVendorBill(billNumber, order.VendorName, billDate)
		if err != nil {
			return nil, err
		}
		bill.LinkSourceOrder(order.ID, order.OrderNumber)
		bill.LinkVendorAccount(order.VendorAccountID)
		bill.CloneLinesFrom(order)

		err = s.conversions.SavePurchaseOrderWithBill(ctx, order, bill)
		if err == nil {
			break
		}
		if !errors.Is(err, shared.ErrNumberConflict) || attempt == 1 {
			return nil, err
		}
		s.logger.Warn("bill number collision, reissuing",
			zap.String("bill_number", billNumber))
	}

	s.logger.Info("vendor bill created from order",
		zap.String("order_number", order.OrderNumber),
		zap.String("bill_number", bill.BillNumber),
		zap.String("total_amount", bill.TotalAmount.String()))

	response := ToVendorBillResponse(bill)
	return &response, nil
}

// Archive soft-deletes a purchase order
func (s *PurchaseOrderService) Archive(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	order.Archive()
	return s.orders.Save(ctx, order)
}
