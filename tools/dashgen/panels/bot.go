package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// UpdatesRate returns a timeseries panel showing Telegram updates handled
// per minute.
func UpdatesRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Updates / min").
		Description("Telegram updates handled per minute").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`relay:bot_updates:rate5m * 60`, "updates/min", "A")).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// CommandErrors returns a stat panel showing failed bot commands in the past
// 24 hours.
func CommandErrors() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Command Errors (24h)").
		Description("Bot commands that ended in an error in the last 24 hours").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`sum(increase(relay_bot_command_errors_total{job="shopee-relay"}[24h]))`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}
