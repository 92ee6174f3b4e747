package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobsift"

// ScraperAPIKey resolves the scrape-proxy key: keychain first, then the
// SCRAPER_API_KEY environment variable.
func ScraperAPIKey() (string, error) {
	return lookup("jobsift:scraperapi", "SCRAPER_API_KEY",
		"scraper API key not found (set it in keychain or SCRAPER_API_KEY)")
}

// TelegramToken resolves the notifier bot token: keychain first, then
// TELEGRAM_BOT_TOKEN.
func TelegramToken() (string, error) {
	return lookup("jobsift:telegram", "TELEGRAM_BOT_TOKEN",
		"telegram bot token not found (set it in keychain or TELEGRAM_BOT_TOKEN)")
}

func lookup(account, envVar, missing string) (string, error) {
	if v, err := keyring.Get(KeyringService, account); err == nil && strings.TrimSpace(v) != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v, nil
	}
	return "", errors.New(missing)
}

// SetScraperAPIKey stores the key in the keychain for later runs.
func SetScraperAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key is empty")
	}
	return keyring.Set(KeyringService, "jobsift:scraperapi", key)
}
