package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "relay-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "relay-recording",
					Rules: []Rule{
						{
							Record: "relay:http_requests:rate5m",
							Expr:   `sum(rate(relay_http_requests_total[5m]))`,
						},
						{
							Record: "relay:http_errors:rate5m",
							Expr:   `sum(rate(relay_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "relay:affiliate_calls:rate5m",
							Expr:   `sum(rate(relay_affiliate_calls_total[5m]))`,
						},
						{
							Record: "relay:affiliate_errors:rate5m",
							Expr:   `sum(rate(relay_affiliate_errors_total[5m]))`,
						},
						{
							Record: "relay:bot_updates:rate5m",
							Expr:   `rate(relay_bot_updates_total[5m])`,
						},
					},
				},
			},
		},
	}
}
