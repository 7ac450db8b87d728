// services/notify_service.go
package services

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService texts the customer when their bill is ready. It is entirely
// optional: without Twilio credentials in the environment every send is a
// silent no-op, and a failed send never fails the invoice request.
type NotifyService struct {
	client *twilio.RestClient
	from   string
}

func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")

	if accountSid == "" || authToken == "" || from == "" {
		return &NotifyService{}
	}

	return &NotifyService{
		from: from,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NotifyService) Enabled() bool {
	return s.client != nil
}

// SendInvoiceSMS notifies the customer's primary phone about a freshly
// generated bill. Best-effort only.
func (s *NotifyService) SendInvoiceSMS(companyName, phone, invoiceNo, total string) {
	if !s.Enabled() {
		return
	}

	body := fmt.Sprintf("%s: your bill %s for PKR %s is ready.", companyName, invoiceNo, total)
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send invoice SMS for %s: %v", invoiceNo, err)
		return
	}
	log.Printf("Sent invoice SMS for %s", invoiceNo)
}
