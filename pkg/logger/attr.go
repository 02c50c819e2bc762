package logger

import "log/slog"

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Operation records the dispatch operation name under the key "op".
func Operation(op string) slog.Attr {
	return slog.String("op", op)
}

// Recipient records a masked destination under the key "to".
// Only the last four characters are kept so phone numbers do not land in logs verbatim.
func Recipient(to string) slog.Attr {
	return slog.String("to", Mask(to))
}

// Mask hides all but the last four characters of s.
func Mask(s string) string {
	r := []rune(s)
	if len(r) <= 4 {
		return s
	}
	out := make([]rune, len(r))
	for i := range r {
		if i < len(r)-4 {
			out[i] = '*'
			continue
		}
		out[i] = r[i]
	}
	return string(out)
}
