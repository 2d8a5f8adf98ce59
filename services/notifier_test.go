package services

import (
	"errors"
	"testing"

	"carlach-backend/config"
	"carlach-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChannel struct {
	name string
	err  error
	sent []string
}

func (s *stubChannel) Name() string { return s.name }

func (s *stubChannel) Send(toPhone, message string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, toPhone+"|"+message)
	return nil
}

func testAppointment() models.Appointment {
	return models.Appointment{
		ClientName: "Rodrigo",
		Phone:      "(48) 99999-0000",
		DateTime:   "2026-02-10T09:00:00",
	}
}

func TestNotifyUsesFirstWorkingChannel(t *testing.T) {
	primary := &stubChannel{name: "whatsapp"}
	fallback := &stubChannel{name: "sms"}
	n := NewNotifierWithChannels(primary, fallback)

	o := n.Notify(NotifyConfirmed, testAppointment())
	assert.True(t, o.Delivered)
	assert.Equal(t, "whatsapp", o.Channel)
	assert.Len(t, primary.sent, 1)
	assert.Empty(t, fallback.sent)
}

func TestNotifyFallsBackInOrder(t *testing.T) {
	primary := &stubChannel{name: "whatsapp", err: errors.New("gateway down")}
	fallback := &stubChannel{name: "sms"}
	n := NewNotifierWithChannels(primary, fallback)

	o := n.Notify(NotifyConfirmed, testAppointment())
	assert.True(t, o.Delivered)
	assert.Equal(t, "sms", o.Channel)
	assert.Len(t, fallback.sent, 1)
}

func TestNotifyNeverRaisesOnTotalFailure(t *testing.T) {
	n := NewNotifierWithChannels(
		&stubChannel{name: "whatsapp", err: errors.New("gateway down")},
		&stubChannel{name: "sms", err: errors.New("no credit")},
	)

	o := n.Notify(NotifyCompleted, testAppointment())
	assert.False(t, o.Delivered)
	assert.Equal(t, "no credit", o.Error)

	outcomes := n.RecentOutcomes()
	require.Len(t, outcomes, 1)
	assert.False(t, outcomes[0].Delivered)
}

func TestNotifyNormalizesPhone(t *testing.T) {
	ch := &stubChannel{name: "whatsapp"}
	n := NewNotifierWithChannels(ch)

	o := n.Notify(NotifyConfirmed, testAppointment())
	assert.Equal(t, "5548999990000", o.Phone)
}

func TestRenderMessage(t *testing.T) {
	appt := testAppointment()

	confirmed := RenderMessage(NotifyConfirmed, appt)
	assert.Contains(t, confirmed, "Rodrigo")
	assert.Contains(t, confirmed, "Confirmado para 2026-02-10 às 09:00")

	completed := RenderMessage(NotifyCompleted, appt)
	assert.Contains(t, completed, "pronto para retirada")

	reminder := RenderMessage(NotifyReminder, appt)
	assert.Contains(t, reminder, "amanhã")
	assert.Contains(t, reminder, "09:00")
}

func TestDefaultChainEndsWithOperatorFallback(t *testing.T) {
	// Without Twilio credentials the operator fallback still delivers, so a
	// status transition can never be failed by messaging.
	n := NewNotifier(config.Config{})
	o := n.Notify(NotifyConfirmed, testAppointment())
	assert.True(t, o.Delivered)
	assert.Equal(t, "operator", o.Channel)
}
