// Package notify pushes per-service sweep summaries to Telegram. Only
// aggregate counts leave the machine; individual records never do.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Reporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func New(token string, chatID int64) (*Reporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &Reporter{bot: bot, chatID: chatID}, nil
}

// A nil Reporter is valid and drops everything, so callers don't have to
// guard every call when notifications are disabled.
func (r *Reporter) send(text string) error {
	if r == nil {
		return nil
	}
	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ParseMode = "HTML"
	_, err := r.bot.Send(msg)
	return err
}

func (r *Reporter) ServiceSummary(displayName string, totalFound, qualified int) error {
	return r.send(fmt.Sprintf(
		"🔎 <b>%s</b>\nlistings found: %d\nqualified: %d",
		displayName, totalFound, qualified,
	))
}

func (r *Reporter) SweepSummary(added, services int) error {
	return r.send(fmt.Sprintf(
		"✅ sweep done: %d new job(s) across %d service(s)", added, services,
	))
}

func (r *Reporter) ReportError(service string, err error) error {
	return r.send(fmt.Sprintf("⚠️ <b>%s</b> failed:\n%v", service, err))
}
