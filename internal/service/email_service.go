package service

import (
	"fmt"
	"strings"
	"time"

	"pfe_service/internal/config"
	"pfe_service/internal/util"
	"pfe_service/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailSender 邮件发送抽象
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailService 事务性邮件，目前只承担面试邀请
type EmailService struct {
	cfg    config.EmailConfig
	sender MailSender
}

func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{
		cfg:    cfg,
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendInterviewInvitation 发送面试邀请。发送失败由调用方决定是否中止状态流转。
func (s *EmailService) SendInterviewInvitation(to string, interviewAt time.Time, message string) error {
	if strings.TrimSpace(to) == "" {
		return util.ErrEmailRecipientMissing
	}
	if interviewAt.Before(time.Now()) {
		return util.ErrInterviewTimeInPast
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Interview Invitation for PFE Project")
	m.SetBody("text/html", buildInvitationBody(interviewAt, message))

	if err := s.sender.DialAndSend(m); err != nil {
		logger.Log.Error("Failed to send interview invitation email",
			zap.String("to", to),
			zap.Error(err))
		return fmt.Errorf("failed to send interview invitation email: %w", err)
	}

	logger.Log.Info("Interview invitation email sent", zap.String("to", to))
	return nil
}

func buildInvitationBody(interviewAt time.Time, message string) string {
	formatted := interviewAt.Format("Monday, January 2, 2006 at 3:04 PM")
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>Interview Invitation for PFE Project</h2>
    <p>Dear Student,</p>
    <p>You have been invited for an interview regarding your PFE project.</p>
    <div style="margin: 20px 0; padding: 15px; background-color: #f5f5f5; border-radius: 5px;">
        <h3 style="margin-top: 0;">Interview Details</h3>
        <p><strong>Date and Time:</strong> %s</p>
    </div>
    <div style="margin: 20px 0;">
        <h3>Additional Message</h3>
        <p>%s</p>
    </div>
    <p>Please make sure to be available at the specified time.</p>
    <p>Best regards,<br>The PFE Team</p>
</body>
</html>`, formatted, strings.ReplaceAll(message, "\n", "<br>"))
}
