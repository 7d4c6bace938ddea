package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// NotifyWebhook posts an event payload to the configured sink URL.
// Callers fire it from a goroutine; a slow sink must not hold up the
// request that produced the event.
func NotifyWebhook(url, event string, payload interface{}) {
	if url == "" {
		return
	}

	client := resty.New().SetTimeout(5 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event": event,
			"data":  payload,
		}).
		Post(url)
	if err != nil {
		log.Printf("Failed to send %s webhook: %v", event, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Webhook %s returned status %d: %s", event, resp.StatusCode(), resp.String())
	}
}
