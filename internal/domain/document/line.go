package document

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineInput is a single submitted line row before validation.
// Quantity and unit price default to zero when the submitted text is blank
// or unparseable; a bad number never fails the whole document.
type LineInput struct {
	ProductName string
	AnalyticTag string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// IsBlank reports whether the row carries no product and is to be skipped
func (l LineInput) IsBlank() bool {
	return strings.TrimSpace(l.ProductName) == ""
}

// Total returns quantity * unit price for this input row
func (l LineInput) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// ParseLineInputs builds line inputs from parallel form arrays
// (product_name[], budget_analytics[], quantity[], unit_price[]).
// Rows are aligned to the product name array; missing or malformed
// quantity/price entries become zero.
func ParseLineInputs(names, tags, quantities, prices []string) []LineInput {
	inputs := make([]LineInput, len(names))
	for i, name := range names {
		inputs[i] = LineInput{
			ProductName: strings.TrimSpace(name),
			AnalyticTag: elementOrEmpty(tags, i),
			Quantity:    parseDecimalOrZero(elementOrEmpty(quantities, i)),
			UnitPrice:   parseDecimalOrZero(elementOrEmpty(prices, i)),
		}
	}
	return inputs
}

// SumLineInputs returns the document total over the non-blank rows
func SumLineInputs(inputs []LineInput) decimal.Decimal {
	total := decimal.Zero
	for _, in := range inputs {
		if in.IsBlank() {
			continue
		}
		total = total.Add(in.Total())
	}
	return total
}

func elementOrEmpty(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}

func parseDecimalOrZero(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
