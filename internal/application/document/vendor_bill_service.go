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

// VendorBillService handles vendor bill business operations
type VendorBillService struct {
	bills     document.VendorBillRepository
	sequences document.SequenceRepository
	linker    *LinkageService
	logger    *zap.Logger
}

// NewVendorBillService creates a new VendorBillService
func NewVendorBillService(
	bills document.VendorBillRepository,
	sequences document.SequenceRepository,
	linker *LinkageService,
	logger *zap.Logger,
) *VendorBillService {
	return &VendorBillService{
		bills:     bills,
		sequences: sequences,
		linker:    linker,
		logger:    logger,
	}
}

// Create creates a standalone draft bill, numbered from the bill date's
// year series
func (s *VendorBillService) Create(ctx context.Context, req CreateVendorBillRequest) (*VendorBillResponse, error) {
	billDate := time.Now()
	if req.BillDate != nil {
		billDate = *req.BillDate
	}
	series := document.BillSeriesForYear(billDate.Year())

	var bill *document.VendorBill
	for attempt := 0; attempt < 2; attempt++ {
		billNumber, err := s.sequences.NextNumber(ctx, series)
		if err != nil {
			return nil, err
		}
		bill, err = document.NewVendorBill(billNumber, req.VendorName, billDate)
		if err != nil {
			return nil, err
		}
		bill.Reference = req.Reference
		bill.ReplaceLines(req.Lines.Parse())

		accountID, err := s.linker.ResolveVendorAccount(ctx, bill.VendorName)
		if err != nil {
			return nil, err
		}
		bill.LinkVendorAccount(accountID)

		err = s.bills.Save(ctx, bill)
		if err == nil {
			break
		}
		if !errors.Is(err, shared.ErrNumberConflict) || attempt == 1 {
			return nil, err
		}
		s.logger.Warn("bill number collision, reissuing",
			zap.String("bill_number", billNumber))
	}

	s.logger.Info("vendor bill created",
		zap.String("bill_number", bill.BillNumber),
		zap.String("vendor_name", bill.VendorName))

	response := ToVendorBillResponse(bill)
	return &response, nil
}

// GetByID retrieves a vendor bill by ID
func (s *VendorBillService) GetByID(ctx context.Context, billID uuid.UUID) (*VendorBillResponse, error) {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	response := ToVendorBillResponse(bill)
	return &response, nil
}

// List retrieves non-archived vendor bills
func (s *VendorBillService) List(ctx context.Context, filter shared.Filter) ([]VendorBillResponse, error) {
	bills, err := s.bills.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToVendorBillResponses(bills), nil
}

// ListForVendorAccount retrieves bills visible to a portal vendor account
func (s *VendorBillService) ListForVendorAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]VendorBillResponse, error) {
	bills, err := s.bills.FindByVendorAccount(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}
	return ToVendorBillResponses(bills), nil
}

// ListForSourceOrder retrieves the bills derived from a purchase order
func (s *VendorBillService) ListForSourceOrder(ctx context.Context, orderID uuid.UUID) ([]VendorBillResponse, error) {
	bills, err := s.bills.FindBySourceOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToVendorBillResponses(bills), nil
}

// Update edits a draft bill; confirmed bills are immutable apart from
// payments
func (s *VendorBillService) Update(ctx context.Context, billID uuid.UUID, req UpdateVendorBillRequest) (*VendorBillResponse, error) {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill.Status != document.VendorBillStatusDraft {
		return nil, shared.NewDomainError("INVALID_STATE", "Only draft bills can be edited")
	}

	if req.Reference != nil {
		bill.Reference = *req.Reference
	}
	if req.BillDate != nil {
		bill.BillDate = *req.BillDate
	}
	if req.Lines != nil {
		bill.ReplaceLines(req.Lines.Parse())
	}

	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, err
	}

	response := ToVendorBillResponse(bill)
	return &response, nil
}

// Confirm moves a bill to confirmed; confirming twice is a no-op
func (s *VendorBillService) Confirm(ctx context.Context, billID uuid.UUID) (*VendorBillResponse, error) {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	bill.Confirm()
	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, err
	}

	response := ToVendorBillResponse(bill)
	return &response, nil
}

// RegisterPayment records a payment against a bill and rederives its
// payment status
func (s *VendorBillService) RegisterPayment(ctx context.Context, billID uuid.UUID, req RegisterPaymentRequest) (*VendorBillResponse, error) {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if err := bill.RegisterPayment(req.Amount); err != nil {
		return nil, err
	}
	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.Info("vendor bill payment registered",
		zap.String("bill_number", bill.BillNumber),
		zap.String("amount", req.Amount.String()),
		zap.String("payment_status", string(bill.PaymentStatus)))

	response := ToVendorBillResponse(bill)
	return &response, nil
}

// Archive soft-deletes a vendor bill
func (s *VendorBillService) Archive(ctx context.Context, billID uuid.UUID) error {
	bill, err := s.bills.FindByID(ctx, billID)
	if err != nil {
		return err
	}
	bill.Archive()
	return s.bills.Save(ctx, bill)
}
