package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// shopee-relay operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "relay-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "relay-alerts",
					Rules: []Rule{
						{
							Alert: "RelayDown",
							Expr:  `absent(up{job="shopee-relay"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Shopee relay is down",
								"description": "The shopee-relay job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "RelayReadinessDown",
							Expr:  `relay_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Shopee relay readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "RelayHighErrorRate",
							Expr:  `relay:http_errors:rate5m / relay:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on shopee-relay",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "RelayAffiliateErrors",
							Expr:  `relay:affiliate_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Affiliate API errors are elevated",
								"description": "Shopee affiliate API calls are failing at more than 0.1/s for the last 5 minutes.",
							},
						},
						{
							Alert: "RelayRateLimited",
							Expr:  `increase(relay_affiliate_errors_total{code="10030"}[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Affiliate API rate limit has been hit",
								"description": "The Shopee affiliate hourly quota (2000 requests) has been exhausted. Calls will fail until the window resets.",
							},
						},
						{
							Alert: "RelayBotCommandErrors",
							Expr:  `increase(relay_bot_command_errors_total[5m]) > 0`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Telegram bot command failures detected",
								"description": "One or more bot commands have ended in an error.",
							},
						},
					},
				},
			},
		},
	}
}
