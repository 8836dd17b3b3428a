package audit_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personnel-api/src/audit"
	"personnel-api/src/logger"
)

type capturingPublisher struct {
	entries []audit.Entry
}

func (p *capturingPublisher) Publish(entry audit.Entry) error {
	p.entries = append(p.entries, entry)
	return nil
}

func TestLoggerSinkMirrorsWarningsAndErrors(t *testing.T) {
	publisher := &capturingPublisher{}
	log := logger.New().WithOutput(io.Discard)
	logger.AddSink(log, audit.NewLoggerSink(publisher))

	log.Warn("disk almost full")
	log.Error(assert.AnError, "broker unreachable")

	require.Len(t, publisher.entries, 2)
	assert.Equal(t, audit.ActionLogMirror, publisher.entries[0].Action)
	assert.Equal(t, "warn", publisher.entries[0].Subject)
	assert.Equal(t, "disk almost full", publisher.entries[0].Detail)
	assert.False(t, publisher.entries[0].Timestamp.IsZero())
	assert.Equal(t, "error", publisher.entries[1].Subject)
	assert.Equal(t, "broker unreachable", publisher.entries[1].Detail)
}

func TestLoggerSinkDropsLowerLevels(t *testing.T) {
	publisher := &capturingPublisher{}
	log := logger.New().WithOutput(io.Discard)
	logger.AddSink(log, audit.NewLoggerSink(publisher))

	log.Debug("probing connection")
	log.Info("listening on :8080")
	log.Infof("served %d requests", 3)

	assert.Empty(t, publisher.entries)
}

func TestLoggerSinkSurvivesPublisherFailure(t *testing.T) {
	publisher := &failingPublisher{}
	log := logger.New().WithOutput(io.Discard)
	logger.AddSink(log, audit.NewLoggerSink(publisher))

	log.Warnf("retrying in %s", "2s")

	assert.Equal(t, 1, publisher.calls)
}
