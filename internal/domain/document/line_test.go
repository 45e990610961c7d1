package document

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineInputs(t *testing.T) {
	inputs := ParseLineInputs(
		[]string{"Chair", "", "Desk"},
		[]string{"Design", "", "Design"},
		[]string{"2", "5", "1"},
		[]string{"100", "50", "200"},
	)

	require.Len(t, inputs, 3)
	assert.Equal(t, "Chair", inputs[0].ProductName)
	assert.Equal(t, "Design", inputs[0].AnalyticTag)
	assert.True(t, inputs[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.True(t, inputs[0].UnitPrice.Equal(decimal.NewFromInt(100)))
	assert.True(t, inputs[1].IsBlank())
	assert.False(t, inputs[2].IsBlank())
}

func TestParseLineInputs_DefaultsBadNumbersToZero(t *testing.T) {
	inputs := ParseLineInputs(
		[]string{"Chair", "Desk"},
		nil,
		[]string{"not-a-number", ""},
		[]string{"", "abc"},
	)

	require.Len(t, inputs, 2)
	assert.True(t, inputs[0].Quantity.IsZero())
	assert.True(t, inputs[0].UnitPrice.IsZero())
	assert.True(t, inputs[1].Quantity.IsZero())
	assert.True(t, inputs[1].UnitPrice.IsZero())
}

func TestParseLineInputs_ShortParallelArrays(t *testing.T) {
	// Rows align to the product name array; missing entries become zero
	inputs := ParseLineInputs([]string{"Chair", "Desk"}, []string{"Design"}, []string{"2"}, nil)

	require.Len(t, inputs, 2)
	assert.Equal(t, "", inputs[1].AnalyticTag)
	assert.True(t, inputs[1].Quantity.IsZero())
	assert.True(t, inputs[1].UnitPrice.IsZero())
}

func TestSumLineInputs_SkipsBlankRows(t *testing.T) {
	inputs := ParseLineInputs(
		[]string{"Chair", "", "Desk"},
		nil,
		[]string{"2", "5", "1"},
		[]string{"100", "50", "200"},
	)

	total := SumLineInputs(inputs)
	assert.True(t, total.Equal(decimal.NewFromInt(400)), "got %s", total)
}
