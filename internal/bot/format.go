package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

const welcomeText = `*Shopee Offers Bot*

Welcome! I republish affiliate offers with tracked links.

*Commands:*

/search <keyword> - search products
/category <id> - products in a category
/shop <id> - products from a shop
/top - top offers by commission
/report - your commissions (last 7 days)
/help - full command list

*Example:*
/search smartphone`

const helpText = `*Available commands*

*Product search:*
/search <keyword> - search products
  Example: /search fone bluetooth
/category <id> - products in a category
  Example: /category 100636
/shop <id> - products from a shop
  Example: /shop 84499012
/top - top 10 products by commission rate

*Reports:*
/report - your commissions from the last 7 days

*Other:*
/start - welcome message
/help - this message`

const captionNameLimit = 100

// formatProductCaption renders a product card caption: name, price range,
// commission, sales, and rating.
func formatProductCaption(p shopee.ProductOffer) string {
	var sb strings.Builder

	name := p.ProductName
	if len(name) > captionNameLimit {
		name = name[:captionNameLimit]
	}
	fmt.Fprintf(&sb, "*%s*\n\n", name)

	fmt.Fprintf(&sb, "*Price:* R$ %s", p.PriceMin.StringFixed(2))
	if p.PriceMax.GreaterThan(p.PriceMin) {
		fmt.Fprintf(&sb, " - R$ %s", p.PriceMax.StringFixed(2))
	}

	fmt.Fprintf(&sb, "\n*Commission:* %s%%", p.CommissionRate.StringFixed(1))
	if p.Commission.IsPositive() {
		fmt.Fprintf(&sb, " (R$ %s)", p.Commission.StringFixed(2))
	}

	if p.Sales > 0 {
		fmt.Fprintf(&sb, "\n*Sales:* %d", p.Sales)
	}

	if p.RatingStar.IsPositive() {
		stars := strings.Repeat("⭐", int(p.RatingStar.IntPart()))
		fmt.Fprintf(&sb, "\n%s %s/5", stars, p.RatingStar.String())
	}

	return sb.String()
}

// formatShopHeader announces a shop search result by the shop name of its
// first product.
func formatShopHeader(products []shopee.ProductOffer) string {
	return fmt.Sprintf("*%s*\n%d products available", products[0].ShopName, len(products))
}

// formatReport renders a commission report summary.
func formatReport(s shopee.ReportSummary) string {
	var sb strings.Builder

	sb.WriteString("*Report - last 7 days*\n\n")
	fmt.Fprintf(&sb, "*Total commission:* R$ %s\n", s.TotalCommission.StringFixed(2))
	fmt.Fprintf(&sb, "*Orders:* %d\n", s.OrderCount)
	fmt.Fprintf(&sb, "*Average commission:* R$ %s\n", s.AverageCommission.StringFixed(2))

	sb.WriteString("\n*Order status:*\n")
	for _, status := range sortedKeys(s.ByStatus) {
		fmt.Fprintf(&sb, "- %s: %d\n", status, s.ByStatus[status].Count)
	}

	return sb.String()
}

// formatRecentOrders renders up to n orders, newest first as returned.
func formatRecentOrders(orders []shopee.OrderRecord, n int) string {
	if len(orders) > n {
		orders = orders[:n]
	}

	var sb strings.Builder
	sb.WriteString("*Recent orders:*\n")
	for _, o := range orders {
		name := o.ProductName
		if len(name) > 50 {
			name = name[:50]
		}
		fmt.Fprintf(&sb, "\nOrder: `%s`\nCommission: R$ %s (%s%%)\nProduct: %s\n",
			o.OrderID,
			o.CommissionAmount.StringFixed(2),
			o.CommissionRate.StringFixed(1),
			name,
		)
	}
	return sb.String()
}

// topOffers keeps products at or above the commission threshold, ranked by
// commission rate descending, truncated to limit.
func topOffers(
	products []shopee.ProductOffer,
	minCommission decimal.Decimal,
	limit int,
) []shopee.ProductOffer {
	top := make([]shopee.ProductOffer, 0, len(products))
	for _, p := range products {
		if p.CommissionRate.GreaterThanOrEqual(minCommission) {
			top = append(top, p)
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].CommissionRate.GreaterThan(top[j].CommissionRate)
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top
}

func sortedKeys(m map[string]shopee.GroupStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
