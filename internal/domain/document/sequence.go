package document

import (
	"fmt"
	"strconv"
	"strings"
)

// Series identifies a family of documents sharing one numbering scheme.
// The key is used for counter storage, the prefix for rendering identifiers.
type Series struct {
	Key    string
	Prefix string
}

// Fixed document series
var (
	SeriesPurchaseOrder       = Series{Key: "purchase_order", Prefix: "PO"}
	SeriesPortalPurchaseOrder = Series{Key: "portal_purchase_order", Prefix: "PPO"}
	SeriesSaleOrder           = Series{Key: "sale_order", Prefix: "SO"}
	SeriesPortalSaleOrder     = Series{Key: "portal_sale_order", Prefix: "PSO"}
	SeriesInvoice             = Series{Key: "invoice", Prefix: "INV-"}
)

// sequencePadWidth is the zero-padded width of the numeric suffix
const sequencePadWidth = 4

// BillSeriesForYear returns the vendor bill series used for admin-initiated
// bills, scoped by calendar year (e.g. Bill/2026/0001)
func BillSeriesForYear(year int) Series {
	return Series{
		Key:    fmt.Sprintf("vendor_bill_year_%d", year),
		Prefix: fmt.Sprintf("Bill/%d/", year),
	}
}

// BillSeriesForOrder returns the vendor bill series used for
// vendor-accepted bills, scoped by the source purchase order number
// (e.g. Bill/PO0007/0001)
func BillSeriesForOrder(orderNumber string) Series {
	return Series{
		Key:    fmt.Sprintf("vendor_bill_order_%s", orderNumber),
		Prefix: fmt.Sprintf("Bill/%s/", orderNumber),
	}
}

// NextIdentifier returns the identifier following lastIssued in the series.
// If lastIssued is empty, carries an unexpected prefix, or its suffix does
// not parse as an unsigned integer, the series restarts at <prefix>0001.
// Pure function: callers fetch the last issued identifier themselves.
func NextIdentifier(s Series, lastIssued string) string {
	next := int64(1)
	if n, ok := SuffixOf(s, lastIssued); ok {
		next = n + 1
	}
	return FormatIdentifier(s, next)
}

// FormatIdentifier renders a series identifier with a zero-padded suffix.
// Numbers beyond the pad width keep all their digits.
func FormatIdentifier(s Series, n int64) string {
	return fmt.Sprintf("%s%0*d", s.Prefix, sequencePadWidth, n)
}

// SuffixOf extracts the numeric suffix from an identifier in this series.
// Returns false if the identifier does not belong to the series or the
// suffix is not an unsigned integer.
func SuffixOf(s Series, identifier string) (int64, bool) {
	if identifier == "" || !strings.HasPrefix(identifier, s.Prefix) {
		return 0, false
	}
	suffix := strings.TrimPrefix(identifier, s.Prefix)
	n, err := strconv.ParseUint(suffix, 10, 63)
	if err != nil {
		return 0, false
	}
	return int64(n), true
}
