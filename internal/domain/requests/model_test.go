package requests

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/core/apperror"
)

func TestStatusDerivation(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		fulfilled int
		want      string
	}{
		{"nothing delivered", 50, 0, StatusPending},
		{"partially delivered", 50, 20, StatusPartial},
		{"exactly delivered", 50, 50, StatusFulfilled},
		{"over-delivered", 50, 60, StatusFulfilled},
		{"negative fulfilled counts as pending", 50, -1, StatusPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Request{RequestedQuantity: tc.requested, FulfilledQuantity: tc.fulfilled}
			assert.Equal(t, tc.want, r.Status())
		})
	}
}

func TestRecalculate(t *testing.T) {
	r := Request{
		RequestedQuantity: 4,
		UnitPrice:         decimal.NewFromFloat(2.50),
	}
	r.Recalculate()
	assert.True(t, r.TotalPrice.Equal(decimal.NewFromInt(10)), "got %s", r.TotalPrice)
}

func TestValidate(t *testing.T) {
	valid := func() *Request {
		return &Request{
			RequestedItem:     "Hex bolts M10",
			RequestedQuantity: 10,
			UnitPrice:         decimal.NewFromFloat(0.2),
		}
	}

	t.Run("ok and stamps request date", func(t *testing.T) {
		r := valid()
		require.NoError(t, r.Validate(context.Background()))
		assert.False(t, r.RequestDate.IsZero())
	})

	t.Run("missing item", func(t *testing.T) {
		r := valid()
		r.RequestedItem = ""
		err := r.Validate(context.Background())
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		r := valid()
		r.RequestedQuantity = 0
		assert.Error(t, r.Validate(context.Background()))
	})

	t.Run("negative price", func(t *testing.T) {
		r := valid()
		r.UnitPrice = decimal.NewFromInt(-1)
		assert.Error(t, r.Validate(context.Background()))
	})
}
