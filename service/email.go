package service

import (
	"fmt"
	"strings"

	"budgetbook/config"
	"budgetbook/models"

	"gopkg.in/gomail.v2"
)

// EmailService sends budget summary reports
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates an email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SummaryReport is the data rendered into a summary email
type SummaryReport struct {
	Month          int
	Year           int
	TotalBudgeted  float64
	TotalSpent     float64
	TotalRemaining float64
	Lines          []models.BudgetLineView
}

// SendBudgetSummary mails the monthly summary to the user
func (s *EmailService) SendBudgetSummary(toEmail, username string, report SummaryReport) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("email service disabled, set email.enabled=true to use it")
	}

	subject := fmt.Sprintf("[budgetbook] Budget summary %04d-%02d", report.Year, report.Month)
	body := s.generateSummaryBody(username, report)

	return s.sendEmail(toEmail, subject, body)
}

// generateSummaryBody renders the summary email
func (s *EmailService) generateSummaryBody(username string, report SummaryReport) string {
	var rows strings.Builder
	for _, line := range report.Lines {
		rows.WriteString(fmt.Sprintf(`
            <tr>
                <td>%s</td>
                <td class="num">%.2f</td>
                <td class="num">%.2f</td>
                <td class="num">%.2f</td>
            </tr>`, line.Name, line.BudgetedAmount, line.ActualSpent, line.Remaining))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th, td { padding: 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
        th { background: #f8f9fa; color: #374151; }
        .num { text-align: right; font-family: 'Courier New', monospace; }
        .totals { background: #eff6ff; font-weight: bold; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>budgetbook</h1>
        </div>
        <div class="content">
            <p>Hi <strong>%s</strong>,</p>
            <p>Here is your budget summary for %04d-%02d:</p>
            <table>
                <tr><th>Category</th><th class="num">Budgeted</th><th class="num">Spent</th><th class="num">Remaining</th></tr>
                %s
                <tr class="totals">
                    <td>Total</td>
                    <td class="num">%.2f</td>
                    <td class="num">%.2f</td>
                    <td class="num">%.2f</td>
                </tr>
            </table>
        </div>
        <div class="footer">
            <p>This email was sent automatically, please do not reply.</p>
        </div>
    </div>
</body>
</html>
`, username, report.Year, report.Month, rows.String(),
		report.TotalBudgeted, report.TotalSpent, report.TotalRemaining)
}

// sendEmail sends a single HTML mail
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	return nil
}
