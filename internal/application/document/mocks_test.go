package document

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/docflow/backend/internal/domain/document"
	"github.com/docflow/backend/internal/domain/identity"
	"github.com/docflow/backend/internal/domain/partner"
	"github.com/docflow/backend/internal/domain/shared"
)

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*document.PurchaseOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByVendorAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]document.PurchaseOrder, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByVendorName(ctx context.Context, vendorName string) ([]document.PurchaseOrder, error) {
	args := m.Called(ctx, vendorName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *document.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) CountByStatus(ctx context.Context, status document.PurchaseOrderStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockVendorBillRepository is a mock implementation of VendorBillRepository
type MockVendorBillRepository struct {
	mock.Mock
}

func (m *MockVendorBillRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.VendorBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.VendorBill), args.Error(1)
}

func (m *MockVendorBillRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.VendorBill, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.VendorBill), args.Error(1)
}

func (m *MockVendorBillRepository) FindByVendorAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]document.VendorBill, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.VendorBill), args.Error(1)
}

func (m *MockVendorBillRepository) FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]document.VendorBill, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.VendorBill), args.Error(1)
}

func (m *MockVendorBillRepository) Save(ctx context.Context, bill *document.VendorBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

// MockSaleOrderRepository is a mock implementation of SaleOrderRepository
type MockSaleOrderRepository struct {
	mock.Mock
}

func (m *MockSaleOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.SaleOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*document.SaleOrder, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.SaleOrder, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderRepository) FindByCustomerAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]document.SaleOrder, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderRepository) Save(ctx context.Context, order *document.SaleOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]document.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByCustomerAccount(ctx context.Context, accountID uuid.UUID, filter shared.Filter) ([]document.Invoice, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]document.Invoice, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *document.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

// MockSequenceRepository is a mock implementation of SequenceRepository
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextNumber(ctx context.Context, series document.Series) (string, error) {
	args := m.Called(ctx, series)
	return args.String(0), args.Error(1)
}

// MockConversionRepository is a mock implementation of ConversionRepository
type MockConversionRepository struct {
	mock.Mock
}

func (m *MockConversionRepository) SavePurchaseOrderWithBill(ctx context.Context, order *document.PurchaseOrder, bill *document.VendorBill) error {
	args := m.Called(ctx, order, bill)
	return args.Error(0)
}

func (m *MockConversionRepository) SaveSaleOrderWithInvoice(ctx context.Context, order *document.SaleOrder, invoice *document.Invoice) error {
	args := m.Called(ctx, order, invoice)
	return args.Error(0)
}

// MockContactRepository is a mock implementation of partner.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByName(ctx context.Context, name string) (*partner.Contact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Contact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Contact), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *partner.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindPortalByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
