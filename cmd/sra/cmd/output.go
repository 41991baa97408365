package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductsTable(products []shopee.ProductOffer) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ITEM ID\tNAME\tPRICE\tRATE\tSALES\tRATING\tSHOP\n")
	for i := range products {
		p := &products[i]
		price := "R$" + p.PriceMin.StringFixed(2)
		if p.PriceMax.GreaterThan(p.PriceMin) {
			price += "-" + p.PriceMax.StringFixed(2)
		}
		tw.writef("%d\t%s\t%s\t%s%%\t%d\t%s\t%s\n",
			p.ItemID,
			truncate(p.ProductName, 40),
			price,
			p.CommissionRate.String(),
			p.Sales,
			p.RatingStar.String(),
			truncate(p.ShopName, 20),
		)
	}
	return tw.finish()
}

func printCampaignsTable(offers []shopee.ShopeeOffer) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("NAME\tRATE\tTYPE\tLINK\n")
	for i := range offers {
		tw.writef("%s\t%s%%\t%d\t%s\n",
			truncate(offers[i].OfferName, 40),
			offers[i].CommissionRate.String(),
			offers[i].OfferType,
			offers[i].OfferLink,
		)
	}
	return tw.finish()
}

func printShopsTable(shops []shopee.ShopOffer) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SHOP ID\tNAME\tRATE\tRATING\tBUDGET\n")
	for i := range shops {
		tw.writef("%d\t%s\t%s%%\t%s\t%d\n",
			shops[i].ShopID,
			truncate(shops[i].ShopName, 40),
			shops[i].CommissionRate.String(),
			shops[i].RatingStar.String(),
			shops[i].RemainingBudget,
		)
	}
	return tw.finish()
}

func printReportSummary(summary shopee.ReportSummary, orders []shopee.OrderRecord, recent int) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Orders:\t%d\n", summary.OrderCount)
	tw.writef("Commission:\tR$%s\n", summary.TotalCommission.StringFixed(2))
	tw.writef("Average:\tR$%s\n", summary.AverageCommission.StringFixed(2))
	for _, status := range sortedKeys(summary.ByStatus) {
		s := summary.ByStatus[status]
		tw.writef("%s:\t%d\t(R$%s)\n", status, s.Count, s.TotalCommission.StringFixed(2))
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(orders) == 0 {
		return nil
	}
	if recent > len(orders) {
		recent = len(orders)
	}
	fmt.Println()
	tw = newTabWriter(os.Stdout)
	tw.writef("ORDER\tTIME\tSTATUS\tCOMMISSION\n")
	for i := range orders[:recent] {
		o := &orders[i]
		tw.writef("%s\t%s\t%s\tR$%s\n",
			o.OrderID,
			time.Unix(o.PurchaseTime, 0).UTC().Format("2006-01-02 15:04"),
			o.OrderStatus,
			o.CommissionAmount.StringFixed(2),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sortedKeys(m map[string]shopee.GroupStats) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
