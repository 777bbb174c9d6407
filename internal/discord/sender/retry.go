package sender

import (
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/bwmarrin/discordgo"
)

// shouldRetry reports whether an outbound API error is worth retrying.
// Transient dial/timeout failures and upstream 5xx or rate-limit replies
// qualify; everything else is treated as permanent.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}

	var rateErr *discordgo.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}

	if status := httpStatusFromError(err); status != 0 {
		return status >= 500 || status == http.StatusTooManyRequests
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() || opErr.Op == "dial" {
			return true
		}
		if nested, ok := opErr.Err.(net.Error); ok && nested.Timeout() {
			return true
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return true
		}
		if urlErr.Err != nil && !errors.Is(urlErr.Err, err) {
			return shouldRetry(urlErr.Err)
		}
	}

	return false
}

func httpStatusFromError(err error) int {
	if err == nil {
		return 0
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode
	}

	var rateErr *discordgo.RateLimitError
	if errors.As(err, &rateErr) {
		return http.StatusTooManyRequests
	}

	return 0
}
