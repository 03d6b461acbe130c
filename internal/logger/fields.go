package logger

import (
	"go.uber.org/zap"
)

// RunID tags every entry of one pipeline run
func RunID(v string) zap.Field {
	return zap.String("run_id", v)
}

// Repository is an owner/name pair
func Repository(v string) zap.Field {
	return zap.String("repository", v)
}

// URL is a page URL
func URL(v string) zap.Field {
	return zap.String("url", v)
}

// Status is an HTTP status code
func Status(v int) zap.Field {
	return zap.Int("status", v)
}

// Page is a pagination cursor
func Page(v int) zap.Field {
	return zap.Int("page", v)
}

// Count is a result size
func Count(v int) zap.Field {
	return zap.Int("count", v)
}

// Err is a nil-safe error field
func Err(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Error(err)
}
