package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendDailyReportEmail mails the aggregate visit numbers for one date to the
// given address. SMTP settings come from SMTP_HOST / SMTP_PORT / SMTP_USER /
// SMTP_PASS.
func SendDailyReportEmail(email, date string, totalReports, totalWorkers int) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "E-ASHA daily report for "+date)

	body := fmt.Sprintf("Date: %s\nTotal patient visits: %d\nASHA workers reporting: %d\n",
		date, totalReports, totalWorkers)
	m.SetBody("text/plain", body)

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<head>
		<title>E-ASHA Daily Report</title>
		<style>
			body {
				font-family: Arial, sans-serif;
				background-color: #f4f4f4;
				margin: 0;
				padding: 0;
			}
			.container {
				background-color: #ffffff;
				margin: 20px auto;
				padding: 20px;
				border-radius: 8px;
				box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
				max-width: 600px;
			}
			h1 {
				color: #333333;
			}
			p {
				color: #666666;
			}
			.count {
				font-weight: bold;
				color: #007bff;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<h1>E-ASHA Daily Report</h1>
			<p>Date: ` + date + `</p>
			<p>Total patient visits: <span class="count">` + strconv.Itoa(totalReports) + `</span></p>
			<p>ASHA workers reporting: <span class="count">` + strconv.Itoa(totalWorkers) + `</span></p>
		</div>
	</body>
	</html>
	`
	m.AddAlternative("text/html", htmlBody)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPortStr := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	smtpPort, err := strconv.Atoi(smtpPortStr)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT value: %w", err)
	}

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
