package money_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/pkg/money"
)

func TestAmountsEncodeAsNumbers(t *testing.T) {
	b, err := json.Marshal(struct {
		Price decimal.Decimal `json:"price"`
	}{money.MustParse("12.99")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":12.99}`, string(b))
}

func TestTimesAndSum(t *testing.T) {
	total := money.Sum(
		money.Times(money.MustParse("12.99"), 2),
		money.Times(money.MustParse("0.10"), 3),
	)
	assert.Equal(t, "26.28", total.StringFixed(2))
	assert.True(t, money.Sum().IsZero())
}

func TestMustParsePanicsOnMalformedInput(t *testing.T) {
	assert.Panics(t, func() { money.MustParse("twelve") })
}
