package shared

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Kargones/xplatfs/internal/entity/filer"
	"github.com/Kargones/xplatfs/internal/pkg/output"
)

// printer форматирует числа для сводки с разделителями разрядов.
var printer = message.NewPrinter(language.Russian)

// FormatCount форматирует число с разделителями разрядов ("1 048 576").
func FormatCount(n int64) string {
	return formatCount(printer, n)
}

func formatCount(p *message.Printer, n int64) string {
	return p.Sprintf("%d", n)
}

// TempSummary - сводка по временным путям, созданным в этом процессе.
func TempSummary(fsys *filer.Filesystem) *output.SummaryInfo {
	stats := fsys.TempManager().GetStats()
	summary := output.NewSummaryInfo()
	summary.AddMetric("Временных путей", strconv.Itoa(stats.Entries), "")
	summary.AddMetric("Удаляются при выходе", strconv.Itoa(stats.AutoClean), "")
	summary.AddMetric("Объём временных файлов", FormatCount(stats.FileBytes), "байт")
	return summary
}
