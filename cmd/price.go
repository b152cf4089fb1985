package cmd

import (
	"errors"
	"fmt"
	"strings"

	"feather/feature/pricing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// priceCmd renders the consolidated price of one item
var priceCmd = &cobra.Command{
	Use:   "price [name...]",
	Short: "Show the consolidated price of an item",
	Long: `Looks up an item by its exact market name (append the phase for doppler items) and prints
the estimate in the requested currency together with the headline vendor quotes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		currency, _ := cmd.Flags().GetString("currency")
		name := strings.Join(args, " ")

		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		quote, err := rt.pricing.Quote(cmd.Context(), name, currency)
		if errors.Is(err, pricing.ErrItemNotFound) {
			fmt.Println("Item could not be found")
			if matches, serr := rt.pricing.Search(cmd.Context(), name, 5); serr == nil && len(matches) > 0 {
				fmt.Println("\nDid you mean:")
				for _, m := range matches {
					fmt.Printf("- %s\n", m)
				}
			}
			return nil
		}
		if err != nil {
			return err
		}

		rt.logger.Debug("Rendered price", zap.String("key", quote.Key), zap.String("currency", quote.Currency))

		fmt.Println("\n--- Price Detail View ---")
		fmt.Printf("Item:           %s\n", quote.Key)
		if quote.Phase != "" {
			fmt.Printf("Phase:          %s\n", quote.Phase)
		}
		if quote.RarityColor != "" {
			fmt.Printf("Rarity:         #%s\n", quote.RarityColor)
		}
		fmt.Println("-------------------------")

		statusColor := "\033[32m" // Green
		if quote.Estimate == nil {
			statusColor = "\033[31m" // Red
		}
		resetColor := "\033[0m"

		fmt.Printf("Estimate:       %s%s%s (%s)\n", statusColor, quote.Display, resetColor, quote.Currency)
		fmt.Printf("Steam:          %s\n", usd(quote.Steam))
		fmt.Printf("Skinport:       %s\n", usd(quote.Skinport))
		fmt.Printf("Buff:           %s\n", usd(quote.Buff))
		fmt.Println("-------------------------")
		return nil
	},
}

func usd(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("$%.2f", *v)
}

func init() {
	RootCmd.AddCommand(priceCmd)
	priceCmd.Flags().StringP("currency", "c", "", "Display currency code (defaults to server.default_currency)")
}
