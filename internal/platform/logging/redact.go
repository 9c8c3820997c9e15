package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// Redacted replaces every value the logger refuses to print.
const Redacted = "[REDACTED]"

// Secret marks a string that must never be logged in clear text. Any
// attribute holding a Secret is printed as Redacted.
type Secret string

// sensitiveHeaders are lowercase HTTP header names carrying credentials.
var sensitiveHeaders = []string{
	"authorization",
	"cookie",
	"proxy-authorization",
	"set-cookie",
	"x-api-key",
}

// IsSensitiveHeader reports whether the named header carries credentials.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// bearerToken catches credentials that slipped into free-form values.
var bearerToken = regexp.MustCompile(`(?i)\bbearer\s+[\w\-.~+/]+=*`)

// redactor builds the ReplaceAttr hook that masks credentials by type, by
// attribute name and by value shape.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithRedactMessage(Redacted),
		masq.WithType[Secret](),
		masq.WithFieldName("password"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(bearerToken),
	}
	for _, h := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(h))
	}
	return masq.New(opts...)
}
