// Package urlutil маскирует URL внешних сервисов (Pushgateway, OTLP
// коллектор) перед записью в лог.
package urlutil

import "net/url"

// MaskURL оставляет только scheme и host: path, query и userinfo
// могут содержать токены.
// Пример: "https://otel.example.com/v1/traces?token=abc" → "https://otel.example.com/***"
func MaskURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "***invalid-url***"
	}
	return u.Scheme + "://" + u.Host + "/***"
}
