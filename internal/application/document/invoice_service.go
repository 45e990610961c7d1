package document

import (
	"context"
	"time"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceService handles customer invoice operations. Invoices are only
// created through the sale order send flow; this service reads them and
// applies payments.
type InvoiceService struct {
	invoices document.InvoiceRepository
	logger   *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoices document.InvoiceRepository, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		invoices: invoices,
		logger:   logger,
	}
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// List retrieves non-archived invoices
func (s *InvoiceService) List(ctx context.Context, filter shared.Filter) ([]InvoiceResponse, error) {
	invoices, err := s.invoices.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices, time.Now()), nil
}

// ListForCustomerAccount retrieves invoices visible to a portal customer
// account
func (s *InvoiceService) ListForCustomerAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]InvoiceResponse, error) {
	invoices, err := s.invoices.FindByCustomerAccount(ctx, accountID, filter)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices, time.Now()), nil
}

// ListForSourceOrder retrieves the invoices derived from a sale order
func (s *InvoiceService) ListForSourceOrder(ctx context.Context, orderID uuid.UUID) ([]InvoiceResponse, error) {
	invoices, err := s.invoices.FindBySourceOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponses(invoices, time.Now()), nil
}

// RegisterPayment records a payment against an invoice
func (s *InvoiceService) RegisterPayment(ctx context.Context, invoiceID uuid.UUID, req RegisterPaymentRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := invoice.RegisterPayment(req.Amount); err != nil {
		return nil, err
	}
	if err := s.invoices.Save(ctx, invoice); err != nil {
		return nil, err
	}

	s.logger.Info("invoice payment registered",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("amount", req.Amount.String()),
		zap.String("status", string(invoice.Status)))

	response := ToInvoiceResponse(invoice, time.Now())
	return &response, nil
}

// Archive soft-deletes an invoice
func (s *InvoiceService) Archive(ctx context.Context, invoiceID uuid.UUID) error {
	invoice, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	invoice.Archive()
	return s.invoices.Save(ctx, invoice)
}
