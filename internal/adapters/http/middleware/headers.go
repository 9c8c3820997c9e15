package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/acclimations/todo-backend/internal/platform/logging"
)

// headerLog renders request headers as a log group with lowercase keys.
// Credentials are masked before they reach the handler, and nothing is
// built unless the record is actually emitted.
type headerLog http.Header

func (h headerLog) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(h))
	for _, name := range slices.Sorted(maps.Keys(h)) {
		value := strings.Join(h[name], ", ")
		if logging.IsSensitiveHeader(name) {
			value = logging.Redacted
		}
		attrs = append(attrs, slog.String(strings.ToLower(name), value))
	}
	return slog.GroupValue(attrs...)
}
