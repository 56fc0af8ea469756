package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/api"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/booking"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle   = lipgloss.NewStyle().Faint(true)

	badgeStyles = map[booking.Status]lipgloss.Style{
		booking.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		booking.StatusConfirmed: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		booking.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		booking.StatusCancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
)

// statusBadge renders a booking status in its workflow color.
func statusBadge(status string) string {
	if style, ok := badgeStyles[booking.Status(status)]; ok {
		return style.Render(status)
	}
	return status
}

// formatPrice renders a price the way the platform displays money:
// whole shillings with thousands separators.
func formatPrice(price decimal.Decimal) string {
	s := price.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "TZS " + b.String()
	if neg {
		out = "TZS -" + b.String()
	}
	return out
}

// renderTable lays out rows under a bold header, columns padded to the
// widest cell. Cell values may carry ANSI styling; widths are computed on
// the unstyled text, so styled cells must pass their plain form in plain.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteByte('\n')
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// errorLine maps a gateway error to the message shown to the user:
// business-rule rejections verbatim, everything else generic.
func errorLine(err error) string {
	var be *api.BusinessError
	switch {
	case errors.As(err, &be):
		return errorStyle.Render(be.Error())
	case errors.Is(err, api.ErrUnauthorized):
		return errorStyle.Render("Not authorized. Please log in again.")
	case errors.Is(err, api.ErrUnavailable):
		return errorStyle.Render("The server could not be reached. Please try again later.")
	default:
		return errorStyle.Render(fmt.Sprintf("Something went wrong: %v", err))
	}
}
