package cmd

import (
	"github.com/spf13/cobra"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

func shopsCmd() *cobra.Command {
	var (
		shopTypes []int
		sortType  int
		page      int
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "shops [keyword]",
		Short: "Search Shopee shop offers",
		Long:  "Queries the shopOfferV2 operation for shops with active commission offers.",
		Example: `  sra shops "eletronicos"
  sra shops --shop-type 1 --shop-type 4`,
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

			pageResult, err := affiliate.ShopSearch(cmd.Context(), shopee.ShopSearchRequest{
				Keyword:   keyword,
				ShopTypes: shopTypes,
				SortType:  sortType,
				Page:      page,
				Limit:     limit,
			})
			if err != nil {
				return describeErr(err)
			}

			if jsonOutput() {
				return outputJSON(pageResult)
			}
			return printShopsTable(pageResult.Nodes)
		},
	}
	cmd.Flags().IntSliceVar(&shopTypes, "shop-type", nil, "shop types to include (default official and preferred)")
	cmd.Flags().IntVar(&sortType, "sort", 0, "sort type")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}
