package persistence

import "strings"

// Sort field whitelists per table. OrderBy values outside the whitelist
// fall back to created_at instead of reaching the SQL string.
var (
	purchaseOrderSortFields = map[string]bool{
		"order_number": true, "vendor_name": true, "order_date": true,
		"total_amount": true, "status": true, "created_at": true, "updated_at": true,
	}
	vendorBillSortFields = map[string]bool{
		"bill_number": true, "vendor_name": true, "bill_date": true,
		"total_amount": true, "status": true, "payment_status": true,
		"created_at": true, "updated_at": true,
	}
	saleOrderSortFields = map[string]bool{
		"order_number": true, "customer_name": true, "order_date": true,
		"total_amount": true, "status": true, "created_at": true, "updated_at": true,
	}
	invoiceSortFields = map[string]bool{
		"invoice_number": true, "customer_name": true, "invoice_date": true,
		"due_date": true, "total_amount": true, "status": true,
		"created_at": true, "updated_at": true,
	}
	contactSortFields = map[string]bool{
		"name": true, "email": true, "company": true, "created_at": true, "updated_at": true,
	}
)

// validateSortField returns the field if whitelisted, otherwise created_at
func validateSortField(field string, allowed map[string]bool) string {
	if allowed[field] {
		return field
	}
	return "created_at"
}

// validateSortOrder returns asc or desc, defaulting to desc
func validateSortOrder(dir string) string {
	if strings.EqualFold(dir, "asc") {
		return "asc"
	}
	return "desc"
}
