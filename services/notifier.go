// services/notifier.go
package services

import (
	"fmt"
	"sync"
	"time"

	"carlach-backend/config"
	"carlach-backend/models"
	"carlach-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// NotificationKind selects the outbound message template.
type NotificationKind string

const (
	NotifyConfirmed NotificationKind = "confirmed"
	NotifyCompleted NotificationKind = "completed"
	NotifyReminder  NotificationKind = "reminder"
)

// Outcome records how (or whether) a message got out. Delivery is
// best-effort and carries no confirmation from the recipient side.
type Outcome struct {
	Kind      NotificationKind `json:"kind"`
	Phone     string           `json:"phone"`
	Channel   string           `json:"channel"`
	Message   string           `json:"message"`
	Delivered bool             `json:"delivered"`
	Error     string           `json:"error,omitempty"`
	SentAt    time.Time        `json:"sentAt"`
}

// Dispatcher delivers an outbound customer message. Implementations must
// never return an error and never block the status transition that fired them.
type Dispatcher interface {
	Notify(kind NotificationKind, appt models.Appointment) Outcome
}

// DeliveryChannel is one strategy in the ordered fallback chain.
type DeliveryChannel interface {
	Name() string
	Send(toPhone, message string) error
}

// twilioWhatsAppChannel sends through the Twilio WhatsApp API.
type twilioWhatsAppChannel struct {
	client *twilio.RestClient
	from   string
}

func (ch *twilioWhatsAppChannel) Name() string { return "whatsapp" }

func (ch *twilioWhatsAppChannel) Send(toPhone, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + toPhone)
	params.SetFrom("whatsapp:" + ch.from)
	params.SetBody(message)

	resp, err := ch.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return fmt.Errorf("no message SID returned")
	}
	return nil
}

// twilioSMSChannel sends a plain SMS through Twilio.
type twilioSMSChannel struct {
	client *twilio.RestClient
	from   string
}

func (ch *twilioSMSChannel) Name() string { return "sms" }

func (ch *twilioSMSChannel) Send(toPhone, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo("+" + toPhone)
	params.SetFrom(ch.from)
	params.SetBody(message)

	resp, err := ch.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return fmt.Errorf("no message SID returned")
	}
	return nil
}

// operatorLinkChannel is the terminal fallback: it cannot reach the customer
// directly, so it logs a wa.me deep link and the number for the counter staff
// to act on. It never fails.
type operatorLinkChannel struct{}

func (ch *operatorLinkChannel) Name() string { return "operator" }

func (ch *operatorLinkChannel) Send(toPhone, message string) error {
	utils.GetLogger().Info("notification handed to operator",
		zap.String("phone", toPhone),
		zap.String("link", "https://wa.me/"+toPhone),
		zap.String("message", message),
	)
	return nil
}

const outcomeLogCap = 200

// Notifier renders the per-kind message and walks the ordered channel chain
// until one delivery succeeds. It keeps a bounded log of recent outcomes for
// the staff dashboard.
type Notifier struct {
	channels []DeliveryChannel

	mu  sync.Mutex
	log []Outcome
}

// NewNotifier wires the fallback chain from configuration. Without Twilio
// credentials only the operator fallback remains, which keeps the lifecycle
// fully functional in development.
func NewNotifier(cfg config.Config) *Notifier {
	var channels []DeliveryChannel

	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
		if cfg.TwilioWhatsAppNumber != "" {
			channels = append(channels, &twilioWhatsAppChannel{client: client, from: cfg.TwilioWhatsAppNumber})
		}
		if cfg.TwilioPhoneNumber != "" {
			channels = append(channels, &twilioSMSChannel{client: client, from: cfg.TwilioPhoneNumber})
		}
	}

	channels = append(channels, &operatorLinkChannel{})
	return &Notifier{channels: channels}
}

// NewNotifierWithChannels is used by tests to substitute delivery strategies.
func NewNotifierWithChannels(channels ...DeliveryChannel) *Notifier {
	return &Notifier{channels: channels}
}

// RenderMessage builds the customer-facing text for a notification kind.
func RenderMessage(kind NotificationKind, appt models.Appointment) string {
	date := utils.DatePart(appt.DateTime)
	timeOfDay := utils.TimePart(appt.DateTime)

	switch kind {
	case NotifyConfirmed:
		return fmt.Sprintf("Olá %s, Seu agendamento está Confirmado para %s às %s. Nos vemos em breve, Carlach Detailing!",
			appt.ClientName, date, timeOfDay)
	case NotifyCompleted:
		return fmt.Sprintf("Olá %s, seu carro está pronto para retirada. Obrigado por confiar na Carlach Detailing!",
			appt.ClientName)
	case NotifyReminder:
		return fmt.Sprintf("Olá %s, lembrete: seu agendamento é amanhã, %s às %s. Até lá, Carlach Detailing!",
			appt.ClientName, date, timeOfDay)
	}
	return ""
}

// Notify renders the message and attempts delivery through each channel in
// order. Total failure degrades to the operator fallback; the dispatcher
// itself never raises.
func (n *Notifier) Notify(kind NotificationKind, appt models.Appointment) Outcome {
	message := RenderMessage(kind, appt)
	phone := utils.NormalizePhone(appt.Phone)

	outcome := Outcome{
		Kind:    kind,
		Phone:   phone,
		Message: message,
		SentAt:  time.Now(),
	}

	var lastErr error
	for _, ch := range n.channels {
		if err := ch.Send(phone, message); err != nil {
			lastErr = err
			utils.GetLogger().Warn("notification channel failed",
				zap.String("channel", ch.Name()),
				zap.String("phone", phone),
				zap.Error(err),
			)
			continue
		}
		outcome.Channel = ch.Name()
		outcome.Delivered = true
		lastErr = nil
		break
	}

	if lastErr != nil {
		outcome.Error = lastErr.Error()
	}

	n.record(outcome)
	return outcome
}

func (n *Notifier) record(o Outcome) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.log = append(n.log, o)
	if len(n.log) > outcomeLogCap {
		n.log = n.log[len(n.log)-outcomeLogCap:]
	}
}

// RecentOutcomes returns the dispatch log, newest last.
func (n *Notifier) RecentOutcomes() []Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]Outcome, len(n.log))
	copy(out, n.log)
	return out
}
