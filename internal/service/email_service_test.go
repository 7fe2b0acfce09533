package service

import (
	"errors"
	"testing"
	"time"

	"pfe_service/internal/config"
	"pfe_service/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeMailSender struct {
	err      error
	messages []*gomail.Message
}

func (f *fakeMailSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, m...)
	return nil
}

func emailServiceWithFake(sender MailSender) *EmailService {
	return &EmailService{
		cfg:    config.EmailConfig{From: "noreply@pfe.local"},
		sender: sender,
	}
}

func TestSendInterviewInvitationRejectsEmptyRecipient(t *testing.T) {
	svc := emailServiceWithFake(&fakeMailSender{})

	err := svc.SendInterviewInvitation("  ", time.Now().Add(time.Hour), "")
	assert.ErrorIs(t, err, util.ErrEmailRecipientMissing)
}

func TestSendInterviewInvitationRejectsPastTime(t *testing.T) {
	svc := emailServiceWithFake(&fakeMailSender{})

	err := svc.SendInterviewInvitation("student@example.com", time.Now().Add(-time.Hour), "")
	assert.ErrorIs(t, err, util.ErrInterviewTimeInPast)
}

func TestSendInterviewInvitationSendsMail(t *testing.T) {
	sender := &fakeMailSender{}
	svc := emailServiceWithFake(sender)

	err := svc.SendInterviewInvitation("student@example.com", time.Now().Add(48*time.Hour), "bring your laptop")
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	m := sender.messages[0]
	assert.Equal(t, []string{"student@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Interview Invitation for PFE Project"}, m.GetHeader("Subject"))
}

func TestSendInterviewInvitationWrapsSendFailure(t *testing.T) {
	svc := emailServiceWithFake(&fakeMailSender{err: errors.New("connection refused")})

	err := svc.SendInterviewInvitation("student@example.com", time.Now().Add(time.Hour), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send interview invitation email")
}

func TestInvitationBodyFormatsDateAndLineBreaks(t *testing.T) {
	at := time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC)
	body := buildInvitationBody(at, "first line\nsecond line")

	assert.Contains(t, body, "Monday, March 9, 2026 at 2:30 PM")
	assert.Contains(t, body, "first line<br>second line")
}
