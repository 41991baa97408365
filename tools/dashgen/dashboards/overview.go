// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/affiliatehub/shopee-relay/tools/dashgen/panels"
)

// BuildOverview constructs the Relay Overview dashboard with all metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Relay Overview").
		Uid("relay-overview").
		Tags([]string{"relay", "shopee-relay"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.LinksGenerated()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Affiliate API.
	b.WithRow(dashboard.NewRowBuilder("Affiliate API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APIErrorsRate()).
		WithPanel(panels.RateLimitHits()))

	// Row 4: Bot.
	b.WithRow(dashboard.NewRowBuilder("Bot").
		WithPanel(panels.UpdatesRate()).
		WithPanel(panels.CommandErrors()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
