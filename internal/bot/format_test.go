package bot

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

func TestFormatProductCaption(t *testing.T) {
	t.Parallel()

	t.Run("full card", func(t *testing.T) {
		t.Parallel()

		p := offer("Fone Bluetooth TWS", "7.5")
		p.Commission = decimal.RequireFromString("3.74")
		p.Sales = 1200
		p.RatingStar = decimal.RequireFromString("4.8")

		caption := formatProductCaption(p)

		assert.Contains(t, caption, "*Fone Bluetooth TWS*")
		assert.Contains(t, caption, "R$ 49.90 - R$ 59.90")
		assert.Contains(t, caption, "*Commission:* 7.5% (R$ 3.74)")
		assert.Contains(t, caption, "*Sales:* 1200")
		assert.Contains(t, caption, "⭐⭐⭐⭐ 4.8/5")
	})

	t.Run("single price when min equals max", func(t *testing.T) {
		t.Parallel()

		p := offer("Cabo USB", "3.0")
		p.PriceMax = p.PriceMin

		caption := formatProductCaption(p)

		assert.Contains(t, caption, "R$ 49.90")
		assert.NotContains(t, caption, " - R$")
	})

	t.Run("long names are truncated", func(t *testing.T) {
		t.Parallel()

		p := offer(strings.Repeat("a", 180), "3.0")

		caption := formatProductCaption(p)

		assert.Contains(t, caption, strings.Repeat("a", 100))
		assert.NotContains(t, caption, strings.Repeat("a", 101))
	})

	t.Run("zero sales and rating are omitted", func(t *testing.T) {
		t.Parallel()

		caption := formatProductCaption(offer("Cabo USB", "3.0"))

		assert.NotContains(t, caption, "Sales")
		assert.NotContains(t, caption, "/5")
	})
}

func TestTopOffers(t *testing.T) {
	t.Parallel()

	products := []shopee.ProductOffer{
		offer("mid", "6.0"),
		offer("low", "2.0"),
		offer("best", "12.0"),
		offer("exact", "5.0"),
	}

	top := topOffers(products, decimal.NewFromInt(5), 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "best", top[0].ProductName)
	assert.Equal(t, "mid", top[1].ProductName)
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	orders := []shopee.OrderRecord{
		{OrderStatus: "COMPLETED", CommissionAmount: decimal.RequireFromString("2.50"), SubIDs: []string{"telegram"}},
		{OrderStatus: "COMPLETED", CommissionAmount: decimal.RequireFromString("2.50"), SubIDs: []string{"telegram"}},
		{OrderStatus: "PENDING", CommissionAmount: decimal.RequireFromString("1.00")},
	}

	text := formatReport(shopee.Summarize(orders))

	assert.Contains(t, text, "*Total commission:* R$ 6.00")
	assert.Contains(t, text, "*Orders:* 3")
	assert.Contains(t, text, "*Average commission:* R$ 2.00")
	assert.Contains(t, text, "COMPLETED: 2")
	assert.Contains(t, text, "PENDING: 1")
}

func TestFormatRecentOrders(t *testing.T) {
	t.Parallel()

	orders := make([]shopee.OrderRecord, 8)
	for i := range orders {
		orders[i] = shopee.OrderRecord{
			OrderID:          "BR-" + string(rune('A'+i)),
			CommissionAmount: decimal.RequireFromString("1.00"),
			CommissionRate:   decimal.RequireFromString("5.0"),
			ProductName:      "Produto",
		}
	}

	text := formatRecentOrders(orders, 5)

	assert.Contains(t, text, "BR-A")
	assert.Contains(t, text, "BR-E")
	assert.NotContains(t, text, "BR-F")
}
