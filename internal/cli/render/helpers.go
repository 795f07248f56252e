package render

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/vesting-cli/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)

	labelStyle     = color.New(color.FgHiBlack)
	addressStyle   = color.New(color.FgWhite)
	highlightStyle = color.New(color.FgYellow, color.Bold)
	headerStyle    = color.New(color.FgCyan, color.Bold)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Extract just the error message part (after the last colon if it's an error chain)
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatAmount groups the digits of a token amount (1000000 -> 1,000,000)
func FormatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	if v.IsInt64() {
		return printer.Sprintf("%d", v.Int64())
	}
	return v.String()
}

// FormatEther renders a wei amount in ether
func FormatEther(wei *big.Int) string {
	return domain.FormatEther(wei) + " ETH"
}

// FormatPercent renders a ratio in [0, 1] as a percentage
func FormatPercent(f float64) string {
	return printer.Sprintf("%v", number.Percent(f, number.MaxFractionDigits(2)))
}

// FormatTimestamp renders a unix timestamp with its UTC date
func FormatTimestamp(ts uint64) string {
	return fmt.Sprintf("%d (%s)", ts, time.Unix(int64(ts), 0).UTC().Format("2006-01-02 15:04:05 UTC"))
}

// FormatDuration renders seconds together with an approximate day count
func FormatDuration(seconds uint64) string {
	days := float64(seconds) / 86400
	return printer.Sprintf("%ds (%.2f days)", seconds, days)
}

// Title title-cases a label such as a network name
func Title(s string) string {
	return titler.String(s)
}

// newKeyValueTable creates a borderless two column table
func newKeyValueTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{PaddingLeft: "  ", PaddingRight: " "}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, Transformer: func(val interface{}) string {
			return labelStyle.Sprint(val)
		}},
		{Number: 2, Align: text.AlignLeft},
	})
	return t
}

// paramsRows describes deployment parameters as table rows
func paramsRows(p domain.DeploymentParams) []table.Row {
	return []table.Row{
		{"Beneficiary", addressStyle.Sprint(p.Beneficiary.Hex())},
		{"Start", FormatTimestamp(p.Start)},
		{"Duration", FormatDuration(p.Duration)},
		{"End", FormatTimestamp(p.End())},
		{"Token", fmt.Sprintf("%s (%s)", p.TokenName, p.TokenSymbol)},
		{"Initial supply", FormatAmount(p.InitialSupply)},
		{"Value", FormatEther(p.Value)},
	}
}
