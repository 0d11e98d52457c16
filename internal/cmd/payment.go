package cmd

import (
	"github.com/spf13/cobra"

	"github.com/halcyonpay/payctl/internal/gateway"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Create, inspect, list, and void payments",
	Long: `Work with payments on the gateway.

All payment subcommands require a cached session; run 'payctl auth login'
first. A command never proceeds with an expired or missing session.

Examples:
  payctl payment create --order-id order-42 --amount 19.99 --currency CAD
  payctl payment get pay-123
  payctl payment list --status approved --all
  payctl payment void pay-123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var paymentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a payment",
	Long: `Submit a new payment to the gateway.

The amount is given in decimal notation (e.g. 19.99) and converted to
minor units on the wire. An idempotency key is generated per call unless
one is supplied, so retried invocations create new payments by default.

Examples:
  payctl payment create --order-id order-42 --amount 19.99 --currency CAD
  payctl payment create --order-id order-42 --amount 5.00 --card-token ct_abc --idempotency-key retry-7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		rt, err := cctx.NewRuntime()
		if err != nil {
			return err
		}
		if _, err := rt.RequireSession(); err != nil {
			return err
		}

		orderID, _ := cmd.Flags().GetString("order-id")
		amountStr, _ := cmd.Flags().GetString("amount")
		currency, _ := cmd.Flags().GetString("currency")
		cardToken, _ := cmd.Flags().GetString("card-token")
		description, _ := cmd.Flags().GetString("description")
		idempotencyKey, _ := cmd.Flags().GetString("idempotency-key")

		amount, err := gateway.ParseAmount(amountStr)
		if err != nil {
			return err
		}

		payment, err := rt.Client.CreatePayment(cmd.Context(), gateway.CreatePaymentRequest{
			OrderID:        orderID,
			Amount:         amount,
			Currency:       currency,
			CardToken:      cardToken,
			Description:    description,
			IdempotencyKey: idempotencyKey,
		})
		if err != nil {
			return err
		}

		return writePayment(cmd, cctx.Format, payment)
	},
}

var paymentGetCmd = &cobra.Command{
	Use:   "get <payment-id>",
	Short: "Retrieve a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		rt, err := cctx.NewRuntime()
		if err != nil {
			return err
		}
		if _, err := rt.RequireSession(); err != nil {
			return err
		}

		payment, err := rt.Client.GetPayment(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return writePayment(cmd, cctx.Format, payment)
	},
}

var paymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments",
	Long: `List payments, one page at a time or everything with --all.

Examples:
  payctl payment list
  payctl payment list --status approved --page 2 --page-size 50
  payctl payment list --all --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		rt, err := cctx.NewRuntime()
		if err != nil {
			return err
		}
		if _, err := rt.RequireSession(); err != nil {
			return err
		}

		status, _ := cmd.Flags().GetString("status")
		page, _ := cmd.Flags().GetInt("page")
		pageSize, _ := cmd.Flags().GetInt("page-size")
		all, _ := cmd.Flags().GetBool("all")

		opts := gateway.ListPaymentsOptions{
			Status:   status,
			Page:     page,
			PageSize: pageSize,
		}

		if all {
			payments, err := rt.Client.ListAllPayments(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return writePaymentList(cmd, cctx.Format, payments)
		}

		list, err := rt.Client.ListPayments(cmd.Context(), opts)
		if err != nil {
			return err
		}
		return writePaymentList(cmd, cctx.Format, list.Payments)
	},
}

var paymentVoidCmd = &cobra.Command{
	Use:   "void <payment-id>",
	Short: "Void a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cctx, err := NewCommandContext(cmd)
		if err != nil {
			return err
		}
		rt, err := cctx.NewRuntime()
		if err != nil {
			return err
		}
		if _, err := rt.RequireSession(); err != nil {
			return err
		}

		payment, err := rt.Client.VoidPayment(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		return writePayment(cmd, cctx.Format, payment)
	},
}

func init() {
	paymentCreateCmd.Flags().String("order-id", "", "Merchant order identifier (required)")
	paymentCreateCmd.Flags().String("amount", "", "Payment amount, e.g. 19.99 (required)")
	paymentCreateCmd.Flags().String("currency", "CAD", "3-letter ISO currency code")
	paymentCreateCmd.Flags().String("card-token", "", "Tokenized card reference")
	paymentCreateCmd.Flags().String("description", "", "Free-form description")
	paymentCreateCmd.Flags().String("idempotency-key", "", "Idempotency key (generated when omitted)")

	paymentListCmd.Flags().String("status", "", "Filter by status: approved, declined, pending, voided")
	paymentListCmd.Flags().Int("page", 0, "Page number (1-based)")
	paymentListCmd.Flags().Int("page-size", 0, "Results per page")
	paymentListCmd.Flags().Bool("all", false, "Fetch every page")

	paymentCmd.AddCommand(paymentCreateCmd)
	paymentCmd.AddCommand(paymentGetCmd)
	paymentCmd.AddCommand(paymentListCmd)
	paymentCmd.AddCommand(paymentVoidCmd)

	rootCmd.AddCommand(paymentCmd)
}
