package audit

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"personnel-api/src/logger"
)

// ActionLogMirror marks entries produced by the logger sink rather than by
// an application event.
const ActionLogMirror = "log"

// NewLoggerSink mirrors warning-and-above log lines into the audit
// publisher. Lower levels stay on the primary output only.
func NewLoggerSink(publisher Publisher) logger.Sink {
	return func(level zerolog.Level, msg string, at time.Time) {
		if level < zerolog.WarnLevel {
			return
		}

		entry := Entry{
			Action:    ActionLogMirror,
			Subject:   level.String(),
			Detail:    msg,
			Timestamp: at,
		}

		if err := publisher.Publish(entry); err != nil {
			// Not the logger: a failing sink must not feed itself.
			fmt.Printf("audit log sink: publish failed: %v\n", err)
		}
	}
}
