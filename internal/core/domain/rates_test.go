package domain_test

import (
	"testing"

	"github.com/SscSPs/currency_converter_app/internal/apperrors"
	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() domain.Rates {
	return domain.Rates{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.9"),
		"GBP": decimal.RequireFromString("0.8"),
	}
}

func TestRates_CloneIsIndependent(t *testing.T) {
	original := testRates()
	clone := original.Clone()

	clone["EUR"] = decimal.NewFromInt(5)
	delete(clone, "GBP")

	assert.True(t, original["EUR"].Equal(decimal.RequireFromString("0.9")))
	assert.Contains(t, original, "GBP")
}

func TestRates_CloneOfNilIsEmpty(t *testing.T) {
	var nilRates domain.Rates
	clone := nilRates.Clone()
	require.NotNil(t, clone)
	assert.Empty(t, clone)
}

func TestRates_Codes(t *testing.T) {
	assert.Equal(t, []string{"EUR", "GBP", "USD"}, testRates().Codes())
}

func TestRates_Lookup(t *testing.T) {
	rates := domain.Rates{"EUR": decimal.RequireFromString("0.9")}

	rate, ok := rates.Lookup("EUR")
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.9")))

	rate, ok = rates.Lookup(domain.PivotCurrency)
	assert.True(t, ok, "pivot resolves even when absent")
	assert.True(t, rate.Equal(domain.PivotRate))

	_, ok = rates.Lookup("JPY")
	assert.False(t, ok)
}

func TestRates_Equal(t *testing.T) {
	a := testRates()
	b := testRates()
	b["EUR"] = decimal.RequireFromString("0.90")
	assert.True(t, a.Equal(b), "numerically equal rates compare equal")

	b["JPY"] = decimal.NewFromInt(150)
	assert.False(t, a.Equal(b))
}

func TestPersonalRates(t *testing.T) {
	inherited := domain.InheritedRates()
	assert.False(t, inherited.IsOverridden())
	table, ok := inherited.Table()
	assert.False(t, ok)
	assert.Nil(t, table)

	var zero domain.PersonalRates
	assert.False(t, zero.IsOverridden(), "zero value is inherited")

	source := testRates()
	overridden := domain.OverriddenRates(source)
	source["EUR"] = decimal.NewFromInt(42)

	table, ok = overridden.Table()
	require.True(t, ok)
	assert.True(t, table["EUR"].Equal(decimal.RequireFromString("0.9")), "constructor copies its input")

	table["GBP"] = decimal.NewFromInt(7)
	again, _ := overridden.Table()
	assert.True(t, again["GBP"].Equal(decimal.RequireFromString("0.8")), "Table returns a copy")
}

func TestAccount_CloneDoesNotShareRates(t *testing.T) {
	account := domain.Account{ID: "a1", Username: "alice", PersonalRates: domain.OverriddenRates(testRates())}
	clone := account.Clone()

	table, _ := clone.PersonalRates.Table()
	table["EUR"] = decimal.NewFromInt(3)
	clone.PersonalRates = domain.OverriddenRates(table)

	original, _ := account.PersonalRates.Table()
	assert.True(t, original["EUR"].Equal(decimal.RequireFromString("0.9")))
}

func TestNormalizeCurrencyCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"upper-cases and trims", "  eur ", "EUR", false},
		{"allows digits", "usdt2", "USDT2", false},
		{"too short", "e", "", true},
		{"too long", "ABCDEFGHIJK", "", true},
		{"punctuation", "US$", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeCurrencyCode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyCode)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmountAndRate(t *testing.T) {
	for _, raw := range []string{
		"0", "-1", "NaN", "Inf", "+Inf", "-Inf", "abc", "",
		"1e400", "1e-400", "1e2000000000", "1e-20000000", "0.1e310",
		"1.00000000000000000000000000000000001",
	} {
		_, err := domain.ParseAmount(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount, "amount %q", raw)

		_, err = domain.ParseRate(raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRate, "rate %q", raw)
	}

	amount, err := domain.ParseAmount(" 100.5 ")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("100.5")))

	rate, err := domain.ParseRate("0.0001")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.0001")))

	for _, raw := range []string{"1e308", "1e-308", "1000000000000000000000000000000000000000", "0.123456789012345678901"} {
		_, err := domain.ParseAmount(raw)
		assert.NoError(t, err, "amount %q", raw)
	}
}
