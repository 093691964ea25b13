package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrfansi/xendit-go/internal/enum"
)

var country string

var methodsCmd = &cobra.Command{
	Use:   "methods",
	Short: "List the payment methods available in a country",
	Long: `List the payment methods and settlement currency of a market.

The country is an ISO code (ID, PH, TH, VN, MY) or a country name known to
the country table; extra names can be added with XENDIT_COUNTRIES.

Examples:
  xendit methods --country ID
  xendit methods --country Philippines -f json`,
	Args: cobra.NoArgs,
	RunE: runMethods,
}

func init() {
	rootCmd.AddCommand(methodsCmd)

	methodsCmd.Flags().StringVarP(&country, "country", "c", string(enum.CountryIndonesia), "Country code or name")
}

// MethodsResponse is the json form of the methods listing
type MethodsResponse struct {
	Country  string   `json:"country"`
	Currency string   `json:"currency"`
	Methods  []string `json:"payment_methods"`
}

func runMethods(cmd *cobra.Command, args []string) error {
	return withPrefix(listMethods(cmd))
}

func listMethods(cmd *cobra.Command) error {
	if cfgErr != nil {
		return cfgErr
	}
	code, err := resolveCountry(country)
	if err != nil {
		return err
	}

	methods := enum.PaymentMethodsForCountry(code)
	currency := enum.CurrencyForCountry(code)

	if outputFormat == "json" {
		return outputJSON(cmd.OutOrStdout(), MethodsResponse{
			Country:  string(code),
			Currency: string(currency),
			Methods:  enum.Strings(methods),
		})
	}

	rows := make([][]string, len(methods))
	for i, m := range methods {
		rows[i] = []string{m.String(), string(code), string(currency)}
	}
	return outputTable(cmd.OutOrStdout(), []string{"METHOD", "COUNTRY", "CURRENCY"}, rows)
}

// resolveCountry accepts a market code or a name from the configured
// country table
func resolveCountry(raw string) (enum.CountryCode, error) {
	raw = strings.TrimSpace(raw)
	if code, err := enum.ParseCountryCode(strings.ToUpper(raw)); err == nil {
		return code, nil
	}

	table, err := cfg.CountryTable()
	if err != nil {
		return "", err
	}
	mapped, ok := table.Lookup(raw)
	if !ok {
		return "", inputError("Unknown country %q", raw)
	}
	return enum.ParseCountryCode(mapped)
}
