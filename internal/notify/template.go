package notify

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"
)

// builtinTemplate is used whenever no external template file is configured
// or the configured one cannot be read.
const builtinTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Task Reminder - ObsidianList</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background-color: #000000;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td align="center" style="padding: 40px 0;">
                <table role="presentation" style="width: 100%; max-width: 600px; border-collapse: collapse; background-color: #18181b; border-radius: 16px; overflow: hidden;">
                    <tr>
                        <td style="padding: 32px 40px; background: linear-gradient(135deg, #7c3aed 0%, #5b21b6 100%);">
                            <h1 style="margin: 0; color: #ffffff; font-size: 24px; font-weight: 700;">ObsidianList</h1>
                            <p style="margin: 8px 0 0; color: rgba(255,255,255,0.8); font-size: 14px;">Task Reminder</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 40px;">
                            <p style="margin: 0 0 24px; color: #a1a1aa; font-size: 16px;">Hi {{USER_NAME}},</p>
                            <p style="margin: 0 0 24px; color: #a1a1aa; font-size: 16px;">This is a friendly reminder about your upcoming task:</p>
                            <div style="background-color: #27272a; border-radius: 12px; padding: 24px; margin-bottom: 24px; border-left: 4px solid #7c3aed;">
                                <h2 style="margin: 0 0 12px; color: #ffffff; font-size: 20px; font-weight: 600;">{{TASK_TITLE}}</h2>
                                {{TASK_DESCRIPTION_BLOCK}}
                                <div style="display: flex; gap: 16px; margin-top: 16px;">
                                    <div style="display: flex; align-items: center; gap: 8px;">
                                        <span style="color: #7c3aed;">&#128197;</span>
                                        <span style="color: #a1a1aa; font-size: 14px;">{{REMINDER_DATE}}</span>
                                    </div>
                                    <div style="display: flex; align-items: center; gap: 8px;">
                                        <span style="color: #7c3aed;">&#128336;</span>
                                        <span style="color: #a1a1aa; font-size: 14px;">{{REMINDER_TIME}}</span>
                                    </div>
                                </div>
                            </div>
                            <table role="presentation" style="width: 100%;">
                                <tr>
                                    <td align="center">
                                        <a href="{{APP_URL}}/dashboard" style="display: inline-block; padding: 14px 32px; background: linear-gradient(135deg, #7c3aed 0%, #5b21b6 100%); color: #ffffff; text-decoration: none; font-weight: 600; font-size: 16px; border-radius: 8px;">View Task</a>
                                    </td>
                                </tr>
                            </table>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 24px 40px; background-color: #0f0f0f; border-top: 1px solid #27272a;">
                            <p style="margin: 0; color: #71717a; font-size: 12px; text-align: center;">You're receiving this email because you set a reminder on ObsidianList.</p>
                            <p style="margin: 8px 0 0; color: #71717a; font-size: 12px; text-align: center;">&copy; {{YEAR}} ObsidianList. All rights reserved.</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`

// loadTemplate returns the external template when configured and readable.
func (m *Mailer) loadTemplate() string {
	if m.cfg.TemplatePath == "" {
		return builtinTemplate
	}
	raw, err := os.ReadFile(m.cfg.TemplatePath)
	if err != nil || len(raw) == 0 {
		return builtinTemplate
	}
	return string(raw)
}

// renderReminder fills the template placeholders. User-supplied fields are
// escaped before landing in the HTML body.
func (m *Mailer) renderReminder(email ReminderEmail, displayDate, displayTime string, now time.Time) string {
	descriptionBlock := ""
	if email.TaskDescription != "" {
		descriptionBlock = fmt.Sprintf(
			`<p style="margin: 0; color: #a1a1aa; font-size: 14px;">%s</p>`,
			html.EscapeString(email.TaskDescription),
		)
	}

	appURL := m.cfg.AppURL
	if appURL == "" {
		appURL = defaultAppURL
	}

	replacer := strings.NewReplacer(
		"{{USER_NAME}}", html.EscapeString(email.UserName),
		"{{TASK_TITLE}}", html.EscapeString(email.TaskTitle),
		"{{TASK_DESCRIPTION_BLOCK}}", descriptionBlock,
		"{{REMINDER_DATE}}", displayDate,
		"{{REMINDER_TIME}}", displayTime,
		"{{APP_URL}}", appURL,
		"{{YEAR}}", fmt.Sprintf("%d", now.Year()),
	)
	return replacer.Replace(m.loadTemplate())
}
