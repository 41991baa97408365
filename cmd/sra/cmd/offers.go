package cmd

import (
	"github.com/spf13/cobra"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

func offersCmd() *cobra.Command {
	var (
		sortType int
		page     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "offers [keyword]",
		Short: "List Shopee campaign offers",
		Long:  "Queries the shopeeOfferV2 operation for platform campaign offers.",
		Example: `  sra offers
  sra offers "frete gratis" --limit 25`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) > 0 {
				keyword = args[0]
			}

			affiliate, err := newAffiliate()
			if err != nil {
				return err
			}

			pageResult, err := affiliate.OfferSearch(cmd.Context(), shopee.OfferSearchRequest{
				Keyword:  keyword,
				SortType: sortType,
				Page:     page,
				Limit:    limit,
			})
			if err != nil {
				return describeErr(err)
			}

			if jsonOutput() {
				return outputJSON(pageResult)
			}
			return printCampaignsTable(pageResult.Nodes)
		},
	}
	cmd.Flags().IntVar(&sortType, "sort", 0, "sort type")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}
