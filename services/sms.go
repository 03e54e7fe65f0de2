package services

import (
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/yeremiapane/table-order-app/config"
	"github.com/yeremiapane/table-order-app/utils"
)

// SMSSender mengirim pesan ke nomor telepon. Pengiriman bersifat
// fire-and-forget: kegagalan dicatat, tidak menggagalkan request.
type SMSSender interface {
	Send(phone, message string) error
}

// TwilioSender mengirim SMS lewat Twilio.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, from string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, from: from}
}

func (t *TwilioSender) Send(phone, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(phone)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}

// LogSender hanya menulis pesan ke log, dipakai saat kredensial Twilio
// tidak dikonfigurasi (development).
type LogSender struct{}

func (LogSender) Send(phone, message string) error {
	utils.InfoLogger.Printf("SMS to %s: %s", phone, message)
	return nil
}

// NewSMSSenderFromConfig memilih Twilio jika kredensial lengkap,
// selain itu fallback ke LogSender.
func NewSMSSenderFromConfig() SMSSender {
	cfg := config.Get()
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFrom != "" {
		return NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFrom)
	}
	return LogSender{}
}

// SendOTP mengirim kode OTP secara asinkron. Kegagalan jalur SMS tidak
// memblokir atau menggagalkan penerbitan OTP.
func SendOTP(sender SMSSender, phone, code string) {
	go func() {
		msg := fmt.Sprintf("Your OTP is %s. It is valid for 5 minutes.", code)
		if err := sender.Send(phone, msg); err != nil {
			utils.ErrorLogger.Printf("failed to deliver OTP to %s: %v", phone, err)
		}
	}()
}
