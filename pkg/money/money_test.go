package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/isp-backoffice/pkg/money"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"12500", "12,500"},
		{"1000000", "1,000,000"},
		{"2500.5", "2,500.50"},
		{"-1500", "-1,500"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.Format(decimal.RequireFromString(tc.in)), tc.in)
	}
}

func TestPKR(t *testing.T) {
	assert.Equal(t, "PKR 3,000", money.PKR(decimal.NewFromInt(3000)))
	assert.Equal(t, "12.50%", money.Percent(decimal.RequireFromString("12.5")))
}
