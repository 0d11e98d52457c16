package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halcyonpay/payctl/internal/gateway"
	"github.com/halcyonpay/payctl/internal/ux"
)

// writeOutput routes data through the formatter selected by --format.
func writeOutput(cmd *cobra.Command, format string, data interface{}) error {
	formatter, err := ux.NewFormatter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	return formatter.Format(data)
}

// writePayment prints one payment: styled text by default, raw structure
// for json/yaml.
func writePayment(cmd *cobra.Command, format string, p *gateway.Payment) error {
	if format == "" || format == "text" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), ux.RenderPayment(p))
		return err
	}
	return writeOutput(cmd, format, p)
}

// writePaymentList prints a set of payments the same way.
func writePaymentList(cmd *cobra.Command, format string, payments []gateway.Payment) error {
	if format == "" || format == "text" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), ux.RenderPaymentList(payments))
		return err
	}
	return writeOutput(cmd, format, payments)
}
