package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate returns a timeseries panel showing the affiliate API call
// rate per operation.
func APICallsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Calls Rate").
		Description("Shopee affiliate GraphQL calls per second by operation").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum(rate(relay_affiliate_calls_total{job="shopee-relay"}[5m])) by (operation)`, "{{operation}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// APIErrorsRate returns a timeseries panel showing affiliate API errors per
// second by provider error code.
func APIErrorsRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("API Errors Rate").
		Description("Affiliate API errors per second by provider code").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`sum(rate(relay_affiliate_errors_total{job="shopee-relay"}[5m])) by (code)`, "code {{code}}", "A")).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(0.1, 1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}

// RateLimitHits returns a stat panel showing how often the hourly quota was
// hit in the past 24 hours.
func RateLimitHits() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Rate Limit Hits (24h)").
		Description(fmt.Sprintf("Affiliate API rate limit errors in the last 24 hours (quota: %d/hour)", AffiliateHourlyLimit)).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(relay_affiliate_errors_total{job="shopee-relay",code="10030"}[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 3)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
