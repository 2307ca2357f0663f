package dashboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vfg2006/campaign-tracker-api/pkg/utils"
)

// NotAvailable é exibido no lugar de uma métrica que não pôde ser calculada
const NotAvailable = "N/A"

// Formatter formata os valores dos cards de KPI conforme o locale do tema
type Formatter struct {
	printer        *message.Printer
	currencySymbol string
}

func NewFormatter(locale, currencySymbol string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &Formatter{
		printer:        message.NewPrinter(tag),
		currencySymbol: currencySymbol,
	}
}

// Money arredonda para unidades inteiras e agrupa os milhares: ₦120,000
func (f *Formatter) Money(v float64) string {
	return f.currencySymbol + f.printer.Sprintf("%d", int64(utils.Round(v, 0)))
}

func (f *Formatter) Count(v int64) string {
	return f.printer.Sprintf("%d", v)
}

// Percent usa a quantidade de casas que a métrica já carrega (1 para ROI, 2 para CTR)
func (f *Formatter) Percent(v float64, places int) string {
	if places == 1 {
		return f.printer.Sprintf("%.1f%%", v)
	}
	return f.printer.Sprintf("%.2f%%", v)
}
