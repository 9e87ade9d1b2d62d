package numeric

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"0", 0},
		{"12", 1200},
		{"12.5", 1250},
		{"12.50", 1250},
		{"12.505", 1251},  // third digit rounds up
		{"12.504", 1250},  // third digit rounds down
		{"-3.25", -325},
		{".99", 99},
		{"1000000", 100000000},
	}

	for _, tt := range tests {
		got, err := ParseCents(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseCentsInvalid(t *testing.T) {
	for _, in := range []string{"abc", "12.x", "1,200"} {
		_, err := ParseCents(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	var v struct {
		Price Amount `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"price": 12.5}`), &v))
	assert.Equal(t, int64(1250), v.Price.Cents())

	require.NoError(t, json.Unmarshal([]byte(`{"price": "12.50"}`), &v))
	assert.Equal(t, int64(1250), v.Price.Cents())

	require.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &v))
	assert.Equal(t, int64(0), v.Price.Cents())

	require.NoError(t, json.Unmarshal([]byte(`{"price": ""}`), &v))
	assert.Equal(t, int64(0), v.Price.Cents())

	assert.Error(t, json.Unmarshal([]byte(`{"price": "abc"}`), &v))
}

func TestAmountMarshalJSON(t *testing.T) {
	out, err := json.Marshal(Amount(1250))
	require.NoError(t, err)
	assert.Equal(t, "12.5", string(out))
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, Amount(1250), FromFloat(12.50))
	assert.Equal(t, Amount(1), FromFloat(0.005))
	assert.Equal(t, Amount(-325), FromFloat(-3.25))
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "12.50", Amount(1250).String())
	assert.Equal(t, "0.00", Amount(0).String())
}
