package httplog

import (
	"time"

	"go.uber.org/zap"

	"weather-view/pkg/log"
)

// ZapLogger writes outbound provider calls to the application log.
// Bodies are only logged at debug level.
type ZapLogger struct {
	component string
}

func NewZapLogger(component string) *ZapLogger {
	return &ZapLogger{component: component}
}

func (l *ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug("outbound request",
		zap.String("component", l.component),
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (l *ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Info("outbound request finished",
		zap.String("component", l.component),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", time.Duration(latency)*time.Millisecond),
	)
	log.Debug("outbound response body", zap.String("component", l.component), zap.String("body", responseBody))
}

func (l *ZapLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("component", l.component),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", time.Duration(latency)*time.Millisecond),
		zap.String("body", responseBody),
		zap.Error(err),
	)
}
