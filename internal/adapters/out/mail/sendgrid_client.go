// internal/adapters/out/mail/sendgrid_client.go
package mail

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	orderdom "houseit/internal/domain/order"
)

// SendGridClient sends booking confirmations via SendGrid. It satisfies
// usecase.ConfirmationSender.
type SendGridClient struct {
	apiKey string
	from   string
}

func NewSendGridClient(apiKey, from string) *SendGridClient {
	return &SendGridClient{apiKey: apiKey, from: from}
}

// SendBookingConfirmation mails the request summary to the buyer.
func (c *SendGridClient) SendBookingConfirmation(ctx context.Context, to string, req orderdom.Request) error {
	if c == nil || c.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if c.from == "" {
		return fmt.Errorf("from address is empty")
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("to address is empty")
	}

	subject := fmt.Sprintf("HouseIt booking confirmed (#%s)", req.ID)
	body := bookingBody(req)

	fromEmail := mail.NewEmail("HouseIt", c.from)
	toEmail := mail.NewEmail("", to)

	message := mail.NewSingleEmail(
		fromEmail,
		subject,
		toEmail,
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	client := sendgrid.NewSendClient(c.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Printf("[sendgrid] error status=%d, body=%s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}

	log.Printf("[sendgrid] confirmation sent: status=%d to=%s requestId=%s",
		response.StatusCode, to, req.ID)
	return nil
}

func bookingBody(req orderdom.Request) string {
	var b strings.Builder
	b.WriteString("Your booking request has been placed.\n\n")
	for _, it := range req.Items {
		fmt.Fprintf(&b, "  %s  x%d  R%.2f\n", it.Name, it.Quantity, it.Price*float64(it.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: R%.2f\n", req.Total)
	b.WriteString("Status: pending\n")
	b.WriteString("\nA provider will confirm your booking shortly.\n")
	return b.String()
}
