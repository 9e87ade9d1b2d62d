package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForPayment(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		paid  int64
		want  OrderStatus
	}{
		{"fully paid", 10000, 10000, OrderStatusPaid},
		{"overpaid", 10000, 12000, OrderStatusPaid},
		{"nothing paid", 10000, 0, OrderStatusDue},
		{"negative paid", 10000, -500, OrderStatusDue},
		{"partial", 10000, 2500, OrderStatusPartialPaid},
		{"zero total", 0, 0, OrderStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForPayment(tt.total, tt.paid))
		})
	}
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPaid.Valid())
	assert.True(t, OrderStatusDue.Valid())
	assert.True(t, OrderStatusPartialPaid.Valid())
	assert.False(t, OrderStatus("refunded").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentMethodBank.Valid())
	assert.False(t, PaymentMethod("crypto").Valid())
}

func TestTaxTypeJSON(t *testing.T) {
	data, err := json.Marshal(TaxTypeInclusive)
	require.NoError(t, err)
	assert.Equal(t, `"Inclusive"`, string(data))

	var fromString TaxType
	require.NoError(t, json.Unmarshal([]byte(`"Exclusive"`), &fromString))
	assert.Equal(t, TaxTypeExclusive, fromString)

	var fromNumber TaxType
	require.NoError(t, json.Unmarshal([]byte(`1`), &fromNumber))
	assert.Equal(t, TaxTypeInclusive, fromNumber)
}
