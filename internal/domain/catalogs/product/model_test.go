package product

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStock(t *testing.T) {
	cases := []struct {
		name    string
		stock   int
		reorder int
		want    bool
	}{
		{"below reorder level", 5, 10, true},
		{"at reorder level", 10, 10, false},
		{"above reorder level", 15, 10, false},
		{"no reorder level set", 0, 0, false},
		{"zero stock with reorder level", 0, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Stock: tc.stock, ReorderLevel: tc.reorder}
			assert.Equal(t, tc.want, p.LowStock())
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Product {
		return &Product{
			Name:      "Hex Bolt M8",
			Stock:     10,
			UnitPrice: decimal.NewFromFloat(0.15),
		}
	}

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, valid().Validate(context.Background()))
	})

	t.Run("name required", func(t *testing.T) {
		p := valid()
		p.Name = ""
		assert.Error(t, p.Validate(context.Background()))
	})

	t.Run("negative stock", func(t *testing.T) {
		p := valid()
		p.Stock = -1
		assert.Error(t, p.Validate(context.Background()))
	})

	t.Run("negative price", func(t *testing.T) {
		p := valid()
		p.UnitPrice = decimal.NewFromInt(-1)
		assert.Error(t, p.Validate(context.Background()))
	})

	t.Run("negative reorder level", func(t *testing.T) {
		p := valid()
		p.ReorderLevel = -1
		assert.Error(t, p.Validate(context.Background()))
	})
}
