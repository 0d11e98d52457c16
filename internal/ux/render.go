package ux

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/halcyonpay/payctl/internal/gateway"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(11)
	dimStyle   = lipgloss.NewStyle().Faint(true)

	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	declinedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	voidedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// StatusBadge renders a payment status with its conventional colour.
func StatusBadge(status string) string {
	switch status {
	case gateway.StatusApproved:
		return approvedStyle.Render(status)
	case gateway.StatusDeclined:
		return declinedStyle.Render(status)
	case gateway.StatusVoided:
		return voidedStyle.Render(status)
	case gateway.StatusPending:
		return pendingStyle.Render(status)
	default:
		return status
	}
}

// RenderPayment renders one payment as aligned label/value rows.
func RenderPayment(p *gateway.Payment) string {
	var b strings.Builder

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("ID", p.ID)
	row("Order", p.OrderID)
	row("Amount", fmt.Sprintf("%s %s", gateway.FormatAmount(p.Amount), p.Currency))
	row("Status", StatusBadge(p.Status))
	if p.CardBrand != "" || p.CardLast4 != "" {
		row("Card", strings.TrimSpace(fmt.Sprintf("%s ***%s", p.CardBrand, p.CardLast4)))
	}
	row("Auth code", p.AuthCode)
	if !p.CreatedAt.IsZero() {
		row("Created", p.CreatedAt.Local().Format(time.RFC3339))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderPaymentList renders payments as a compact table, one per line.
func RenderPaymentList(payments []gateway.Payment) string {
	if len(payments) == 0 {
		return dimStyle.Render("No payments found.")
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("%-26s %-20s %12s %-4s %s",
		"ID", "ORDER", "AMOUNT", "CUR", "STATUS")))
	b.WriteString("\n")

	for _, p := range payments {
		b.WriteString(fmt.Sprintf("%-26s %-20s %12s %-4s %s\n",
			p.ID, p.OrderID, gateway.FormatAmount(p.Amount), p.Currency, StatusBadge(p.Status)))
	}

	return strings.TrimRight(b.String(), "\n")
}
