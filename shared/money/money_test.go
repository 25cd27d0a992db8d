package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bagpackers/shared/money"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    int64
		wantErr bool
	}{
		{name: "two bags at thirty", amount: "60.00", want: 6000},
		{name: "single fractional digit", amount: "19.9", want: 1990},
		{name: "no fractional part", amount: "42", want: 4200},
		{name: "float drift case", amount: "0.29", want: 29},
		{name: "large amount", amount: "1999999.99", want: 199999999},
		{name: "zero", amount: "0.00", want: 0},
		{name: "surrounding whitespace", amount: " 30.00 ", want: 3000},
		{name: "too many fractional digits", amount: "1.999", wantErr: true},
		{name: "trailing dot", amount: "30.", wantErr: true},
		{name: "leading dot", amount: ".50", wantErr: true},
		{name: "negative", amount: "-1.00", wantErr: true},
		{name: "negative fraction", amount: "1.-5", wantErr: true},
		{name: "empty", amount: "", wantErr: true},
		{name: "not a number", amount: "thirty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ToMinorUnits(tt.amount)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	assert.Equal(t, "60.00", money.FromMinorUnits(6000))
	assert.Equal(t, "0.29", money.FromMinorUnits(29))
	assert.Equal(t, "0.00", money.FromMinorUnits(0))
	assert.Equal(t, "19.90", money.FromMinorUnits(1990))
}

func TestRoundTrip(t *testing.T) {
	for _, amount := range []string{"30.00", "60.00", "90.00", "0.01", "123456.78"} {
		minor, err := money.ToMinorUnits(amount)

		assert.NoError(t, err)
		assert.Equal(t, amount, money.FromMinorUnits(minor))
	}
}
