package ticketout

import (
	"jewelpos/models"

	"github.com/sirupsen/logrus"
)

// Printer receives a finalized ticket snapshot. The POS core's obligation
// ends at producing the snapshot; rendering is up to each implementation.
type Printer interface {
	Print(snapshot models.TicketSnapshot) error
}

// LogPrinter writes the finalized ticket to the structured log. Always wired
// in; the print shop reads from here today.
type LogPrinter struct {
	Logger *logrus.Logger
}

func NewLogPrinter(logger *logrus.Logger) *LogPrinter {
	return &LogPrinter{Logger: logger}
}

func (p *LogPrinter) Print(snapshot models.TicketSnapshot) error {
	p.Logger.WithFields(logrus.Fields{
		"docNo":        snapshot.DocNo,
		"customer":     snapshot.Customer.Name,
		"customerType": snapshot.Customer.Type,
		"lines":        len(snapshot.Lines),
		"subtotal":     snapshot.Subtotal.StringFixed(2),
		"vat":          snapshot.Vat.StringFixed(2),
		"total":        snapshot.Total.StringFixed(2),
		"dueDate":      snapshot.DueDate,
		"dueTime":      snapshot.DueTime,
		"vatInvoice":   snapshot.WantsVatInvoice,
	}).Info("ticket finalized")
	return nil
}

// Fanout forwards a snapshot to every configured printer. A failing printer
// is logged and skipped, it never fails the finalize.
type Fanout struct {
	Printers []Printer
	Logger   *logrus.Logger
}

func NewFanout(logger *logrus.Logger, printers ...Printer) *Fanout {
	return &Fanout{Printers: printers, Logger: logger}
}

func (f *Fanout) Print(snapshot models.TicketSnapshot) error {
	for _, p := range f.Printers {
		if err := p.Print(snapshot); err != nil {
			f.Logger.WithFields(logrus.Fields{
				"docNo": snapshot.DocNo,
			}).Errorf("ticket output failed: %v", err)
		}
	}
	return nil
}
