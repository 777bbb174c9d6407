package middleware

import "github.com/whykushh/discord-panel-bot/internal/discord/event"

// AccessOptions defines how owner-only checks behave.
type AccessOptions struct {
	OwnerID  string
	OnReject event.HandlerFunc
}

// IsOwner reports whether the principal matches the configured owner. An
// empty owner identifier never matches.
func IsOwner(userID, ownerID string) bool {
	return ownerID != "" && userID == ownerID
}

// HasAnyRole reports whether any of the member's roles appears in allowed.
func HasAnyRole(roles, allowed []string) bool {
	for _, r := range roles {
		for _, a := range allowed {
			if a != "" && r == a {
				return true
			}
		}
	}
	return false
}

func reject(opts AccessOptions, c *event.Context) error {
	if opts.OnReject != nil {
		return opts.OnReject(c)
	}
	return c.ReplyEphemeral("Owner only.")
}

// OwnerOnly gates downstream handlers to the configured owner.
func OwnerOnly(opts AccessOptions) event.MiddlewareFunc {
	return func(next event.HandlerFunc) event.HandlerFunc {
		return func(c *event.Context) error {
			if !IsOwner(c.UserID(), opts.OwnerID) {
				return reject(opts, c)
			}
			return next(c)
		}
	}
}

// OwnerGate wraps a single handler when required is true, otherwise
// returns it unchanged.
func OwnerGate(opts AccessOptions, required bool, h event.HandlerFunc) event.HandlerFunc {
	if !required {
		return h
	}
	return OwnerOnly(opts)(h)
}
