package ticketout

import (
	"fmt"
	"strings"

	"jewelpos/models"

	"gopkg.in/gomail.v2"
)

// EmailSender mails the finalized ticket to customers who opted into invoice
// email. It only fires for customers with an email address and the
// sendInvoiceByEmail flag; everyone else is skipped silently.
type EmailSender struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func NewEmailSender(host string, port int, sender, password string) *EmailSender {
	return &EmailSender{Host: host, Port: port, Sender: sender, Password: password}
}

// Enabled reports whether SMTP is configured at all.
func (s *EmailSender) Enabled() bool {
	return s.Host != "" && s.Sender != ""
}

func (s *EmailSender) Print(snapshot models.TicketSnapshot) error {
	if !s.Enabled() {
		return nil
	}
	if !snapshot.Customer.SendInvoiceByEmail || snapshot.Customer.Email == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.Sender)
	msg.SetHeader("To", snapshot.Customer.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Service Ticket %s", snapshot.DocNo))
	msg.SetBody("text/html", renderTicketHTML(snapshot))

	dialer := gomail.NewDialer(s.Host, s.Port, s.Sender, s.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send ticket email: %w", err)
	}
	return nil
}

func renderTicketHTML(snapshot models.TicketSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Ticket %s</h2>", snapshot.DocNo)
	fmt.Fprintf(&b, "<p>Customer: %s (%s)</p>", snapshot.Customer.Name, snapshot.Customer.Type)
	fmt.Fprintf(&b, "<p>Due: %s @ %s</p>", snapshot.DueDate, snapshot.DueTime)

	b.WriteString("<table border='1' cellpadding='4'><tr><th>Item</th><th>Metal</th><th>Description</th><th>Qty</th><th>Total</th></tr>")
	for _, line := range snapshot.Lines {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>",
			line.Item, line.Metal, line.Description, line.Quantity, line.Total.StringFixed(2))
	}
	b.WriteString("</table>")

	if snapshot.WantsVatInvoice {
		fmt.Fprintf(&b, "<p>Subtotal: %s<br>VAT (%s%%): %s</p>",
			snapshot.Subtotal.StringFixed(2), snapshot.VatRate.String(), snapshot.Vat.StringFixed(2))
	}
	fmt.Fprintf(&b, "<p><b>GRAND TOTAL: %s</b></p>", snapshot.Total.StringFixed(2))
	return b.String()
}
