package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach the
// logs. The HTTP middleware masks the same set.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

var (
	bearerValue = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three dot-separated segments of 10+ chars; shorter runs are usually
	// versions or hostnames.
	jwtValue    = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	inlineKey   = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
	sensitiveBy = []string{"password", "secret", "token"}
)

// redactor returns a masq ReplaceAttr that hides sensitive fields by name and
// sensitive-looking values by pattern.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveBy)+5)
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveBy {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
		masq.WithRegex(inlineKey),
	)
	return masq.New(opts...)
}
