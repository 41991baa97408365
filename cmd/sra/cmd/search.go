package cmd

import (
	"github.com/spf13/cobra"

	"github.com/affiliatehub/shopee-relay/internal/shopee"
)

func searchCmd() *cobra.Command {
	var (
		categoryID int64
		shopID     int64
		sortType   int
		page       int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search Shopee product offers",
		Long: "Queries the productOfferV2 operation. With no keyword it lists\n" +
			"offers site-wide; --category and --shop narrow the search.",
		Example: `  sra search "fone bluetooth"
  sra search --category 100001 --sort 2
  sra search --shop 84328428 --limit 25`,
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

			pageResult, err := affiliate.ProductSearch(cmd.Context(), shopee.ProductSearchRequest{
				Keyword:    keyword,
				CategoryID: categoryID,
				ShopID:     shopID,
				SortType:   sortType,
				Page:       page,
				Limit:      limit,
			})
			if err != nil {
				return describeErr(err)
			}

			if jsonOutput() {
				return outputJSON(pageResult)
			}
			return printProductsTable(pageResult.Nodes)
		},
	}
	cmd.Flags().Int64Var(&categoryID, "category", 0, "filter by category ID")
	cmd.Flags().Int64Var(&shopID, "shop", 0, "filter by shop ID")
	cmd.Flags().IntVar(&sortType, "sort", 0, "sort type (1=latest, 2=sales, 3=price asc, 4=price desc, 5=commission)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of results")

	return cmd
}
