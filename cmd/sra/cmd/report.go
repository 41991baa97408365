package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

func reportCmd() *cobra.Command {
	var (
		days      int
		start     int64
		end       int64
		validated bool
		maxPages  int
		recent    int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Pull and summarize a conversion report",
		Long: "Collects every page of the conversion report for a time window and\n" +
			"prints aggregate totals. Defaults to the last 7 days; --start and\n" +
			"--end take Unix timestamps for an explicit window.",
		Example: `  sra report
  sra report --days 30 --validated
  sra report --start 1717200000 --end 1719800000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if end == 0 {
				end = time.Now().Unix()
			}
			if start == 0 {
				start = end - int64(days)*86400
			}

			affiliate, err := newAffiliate()
			if err != nil {
				return err
			}

			fetch := affiliate.ConversionReport
			if validated {
				fetch = affiliate.ValidatedReport
			}

			paginator := shopee.NewPaginator(shopee.WithMaxPages(maxPages))
			orders, err := paginator.FetchAll(cmd.Context(), fetch, shopee.ReportRequest{
				StartTime: start,
				EndTime:   end,
			})
			if err != nil {
				return describeErr(err)
			}

			summary := shopee.Summarize(orders)
			if jsonOutput() {
				return outputJSON(struct {
					Summary shopee.ReportSummary `json:"summary"`
					Orders  []shopee.OrderRecord `json:"orders"`
				}{summary, orders})
			}
			return printReportSummary(summary, orders, recent)
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "report window in days ending now")
	cmd.Flags().Int64Var(&start, "start", 0, "window start as a Unix timestamp")
	cmd.Flags().Int64Var(&end, "end", 0, "window end as a Unix timestamp")
	cmd.Flags().BoolVar(&validated, "validated", false, "use the validated report instead of the raw one")
	cmd.Flags().IntVar(&maxPages, "max-pages", 10, "page cap when collecting the report")
	cmd.Flags().IntVar(&recent, "recent", 10, "number of recent orders to print")

	return cmd
}
