package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	money "github.com/mrfansi/xendit-go/internal/decimal"
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/gateway"
	"github.com/mrfansi/xendit-go/internal/model"
	"github.com/mrfansi/xendit-go/internal/validation"
)

var (
	advancedSearch bool
	invoiceID      string
	requestTimeout time.Duration
)

var invoiceActions = []string{"all", "find", "new", "expire"}

var invoiceCmd = &cobra.Command{
	Use:   "invoice [all|find|new|expire]",
	Short: "Manage Xendit invoices for your account",
	Long: `Manage Xendit invoices for your account.

Actions:
  all     List invoices; --advanced asks for status filters
  find    Show one invoice by id
  new     Create an invoice from prompted details
  expire  Expire a pending invoice after confirmation

Examples:
  xendit invoice
  xendit invoice all --advanced
  xendit invoice find --id 579c8d61f23fa4ca35e52da4
  xendit invoice new
  xendit invoice expire --id 579c8d61f23fa4ca35e52da4 -f json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInvoice,
}

func init() {
	rootCmd.AddCommand(invoiceCmd)

	invoiceCmd.PersistentFlags().StringVar(&invoiceID, "id", "", "Invoice ID for find/expire/export actions")
	invoiceCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", time.Minute, "Timeout for the whole action")
	invoiceCmd.Flags().BoolVar(&advancedSearch, "advanced", false, "Advanced search")
}

// invoiceSession carries what one action needs
type invoiceSession struct {
	ctx    context.Context
	client *gateway.Client
	prompt *prompter
	out    io.Writer
}

func runInvoice(cmd *cobra.Command, args []string) error {
	action := "all"
	if len(args) > 0 {
		action = args[0]
	}
	return withPrefix(dispatchInvoiceAction(cmd, action))
}

func dispatchInvoiceAction(cmd *cobra.Command, action string) error {
	handlers := map[string]func(*invoiceSession) error{
		"all":    listInvoices,
		"find":   findInvoice,
		"new":    createInvoice,
		"expire": expireInvoice,
	}
	handler, ok := handlers[action]
	if !ok {
		return inputError("Invalid action. Use: %s", strings.Join(invoiceActions, ", "))
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
	defer cancel()

	return handler(&invoiceSession{
		ctx:    ctx,
		client: client,
		prompt: newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()),
		out:    cmd.OutOrStdout(),
	})
}

func listInvoices(s *invoiceSession) error {
	advanced := advancedSearch
	if !advanced {
		var err error
		advanced, err = s.prompt.Confirm("Do you really want to advanced search?", false)
		if err != nil {
			return err
		}
	}

	params := model.InvoiceParams{}
	if advanced {
		var err error
		params, err = promptInvoiceParams(s.prompt, time.Now())
		if err != nil {
			return err
		}
	}
	params, err := model.NewInvoiceParams(params)
	if err != nil {
		return err
	}

	printVerbose("Fetching invoices...\n")
	invoices, err := s.client.ListInvoices(s.ctx, &params)
	if err != nil {
		return err
	}
	return outputInvoices(s.out, invoices, listColumns)
}

// promptInvoiceParams asks for statuses; choosing PAID adds a paid range
// covering the last day
func promptInvoiceParams(p *prompter, now time.Time) (model.InvoiceParams, error) {
	options := []option{
		{Value: string(enum.StatusPending), Label: "Pending"},
		{Value: string(enum.StatusSettled), Label: "Settled"},
		{Value: string(enum.StatusExpired), Label: "Expired"},
		{Value: string(enum.StatusPaid), Label: "Paid"},
	}
	picked, err := p.MultiSelect("Status (available: PENDING, PAID, SETTLED, EXPIRED)", options, []string{string(enum.StatusPending)})
	if err != nil {
		return model.InvoiceParams{}, err
	}
	statuses, err := enum.ParseList(picked, enum.ParseInvoiceStatus)
	if err != nil {
		return model.InvoiceParams{}, err
	}

	params, err := model.InvoiceParams{}.WithStatuses(statuses...)
	if err != nil || !slices.Contains(statuses, enum.StatusPaid) {
		return params, err
	}
	after := now.Add(-24 * time.Hour).UTC().Format(time.RFC3339)
	return params.WithPaidRange(after, now.UTC().Format(time.RFC3339))
}

func findInvoice(s *invoiceSession) error {
	id, err := resolveInvoiceID(s.prompt)
	if err != nil {
		return err
	}

	printVerbose("Fetching invoice...\n")
	inv, err := s.client.RetrieveInvoice(s.ctx, id)
	if err != nil {
		return err
	}
	return outputInvoices(s.out, []model.InvoiceResponse{inv}, findColumns)
}

func createInvoice(s *invoiceSession) error {
	amountText, err := s.prompt.Text("Amount", func(v string) error {
		if _, err := money.FromString(v); err != nil {
			return fmt.Errorf("Amount must be numeric")
		}
		return nil
	})
	if err != nil {
		return err
	}

	var currencies []option
	for _, c := range []enum.Currency{enum.CurrencyIDR, enum.CurrencyPHP, enum.CurrencyTHB, enum.CurrencyVND, enum.CurrencyMYR} {
		currencies = append(currencies, option{Value: string(c), Label: fmt.Sprintf("%s (%s)", c.DisplayName(), c)})
	}
	currencyText, err := s.prompt.Select("Currency", currencies, string(enum.CurrencyIDR))
	if err != nil {
		return err
	}

	email, err := s.prompt.Text("Customer Email", func(v string) error {
		if !validation.IsEmail(v) {
			return fmt.Errorf("Invalid email format")
		}
		return nil
	})
	if err != nil {
		return err
	}
	name, err := s.prompt.Text("Customer Name", nil)
	if err != nil {
		return err
	}
	description, err := s.prompt.Text("Description", nil)
	if err != nil {
		return err
	}

	amount, err := money.FromString(amountText)
	if err != nil {
		return inputError("Amount must be numeric")
	}
	currency, err := enum.ParseCurrency(currencyText)
	if err != nil {
		return err
	}
	customer, err := model.NewInvoiceCustomer(model.InvoiceCustomer{
		IndividualDetail: model.IndividualDetail{GivenNames: name},
		Email:            &email,
	})
	if err != nil {
		return err
	}
	data, err := model.NewInvoiceData(model.InvoiceData{
		ExternalID:  strings.ReplaceAll(uuid.NewString(), "-", ""),
		Amount:      amount,
		Currency:    &currency,
		Description: &description,
	})
	if err != nil {
		return err
	}
	if data, err = data.WithCustomer(customer); err != nil {
		return err
	}

	client, key := s.client.WithGeneratedIdempotencyKey()
	printVerbose("Creating invoice %s (idempotency key %s)...\n", data.ExternalID, key)
	inv, err := client.CreateInvoice(s.ctx, data)
	if err != nil {
		return err
	}

	if outputFormat != "json" {
		fmt.Fprint(s.out, "Invoice created successfully!\n\n")
	}
	return outputInvoices(s.out, []model.InvoiceResponse{inv}, createColumns)
}

func expireInvoice(s *invoiceSession) error {
	id, err := resolveInvoiceID(s.prompt)
	if err != nil {
		return err
	}

	ok, err := s.prompt.Confirm(fmt.Sprintf("Are you sure you want to expire invoice %s?", id), false)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.out, "Operation cancelled.")
		return nil
	}

	printVerbose("Expiring invoice...\n")
	inv, err := s.client.ExpireInvoice(s.ctx, id)
	if err != nil {
		return err
	}

	if outputFormat != "json" {
		fmt.Fprint(s.out, "Invoice expired successfully!\n\n")
	}
	return outputInvoices(s.out, []model.InvoiceResponse{inv}, expireColumns)
}

func resolveInvoiceID(p *prompter) (string, error) {
	if invoiceID != "" {
		return invoiceID, nil
	}
	return p.Text("Invoice ID", nil)
}
