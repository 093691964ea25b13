package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrfansi/xendit-go/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an invoice as PDF",
	Long: `Fetch an invoice and render it as a PDF document.

Examples:
  xendit invoice export --id 579c8d61f23fa4ca35e52da4
  xendit invoice export --id 579c8d61f23fa4ca35e52da4 -o march.pdf`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	invoiceCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: <invoice id>.pdf)")
}

func runExport(cmd *cobra.Command, args []string) error {
	return withPrefix(exportInvoice(cmd))
}

func exportInvoice(cmd *cobra.Command) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	id, err := resolveInvoiceID(newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	inv, err := client.RetrieveInvoice(ctx, id)
	if err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = inv.ID + ".pdf"
	}
	if err := export.WriteFile(path, inv); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Invoice %s written to %s\n", inv.ID, path)
	return nil
}
