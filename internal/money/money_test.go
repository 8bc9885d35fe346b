package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rifasve/rifas/internal/money"
)

func TestFormat(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  string
	}

	tests := []testCase{
		{name: "Zero", input: "0", want: "$0.00"},
		{name: "Whole", input: "10", want: "$10.00"},
		{name: "Cents", input: "4.5", want: "$4.50"},
		{name: "Thousands", input: "1234.5", want: "$1,234.50"},
		{name: "RoundsHalfUp", input: "9.995", want: "$10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(decimal.RequireFromString(tt.input)))
		})
	}
}
