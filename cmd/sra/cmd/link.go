package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func linkCmd() *cobra.Command {
	var subIDs []string

	cmd := &cobra.Command{
		Use:   "link <url>",
		Short: "Generate a tracked short link",
		Long: "Converts a Shopee product or shop URL into an affiliate short link.\n" +
			"Up to five sub-IDs can be attached for conversion attribution.",
		Example: `  sra link "https://shopee.com.br/product/123/456"
  sra link "https://shopee.com.br/product/123/456" --sub-id cli --sub-id campaign1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			affiliate, err := newAffiliate()
			if err != nil {
				return err
			}

			short, err := affiliate.GenerateShortLink(cmd.Context(), args[0], subIDs)
			if err != nil {
				return describeErr(err)
			}

			if jsonOutput() {
				return outputJSON(map[string]string{
					"origin_url": args[0],
					"short_link": short,
				})
			}
			fmt.Println(short)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&subIDs, "sub-id", nil, "attribution sub-IDs (max 5)")

	return cmd
}
