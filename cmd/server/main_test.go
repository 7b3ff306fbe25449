package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bufferedSink holds written entries until Sync is called.
type bufferedSink struct {
	pending bytes.Buffer
	flushed bytes.Buffer
	syncs   int
}

func (s *bufferedSink) Write(p []byte) (int, error) { return s.pending.Write(p) }

func (s *bufferedSink) Sync() error {
	s.syncs++
	_, err := s.pending.WriteTo(&s.flushed)
	return err
}

func newBufferedLogger(sink *bufferedSink) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, sink, zap.InfoLevel))
}

func TestExitCode_FlushesFatalError(t *testing.T) {
	sink := &bufferedSink{}
	code := exitCode(newBufferedLogger(sink), errors.New("listen tcp :3000: bind: address already in use"))

	assert.Equal(t, 1, code)
	assert.Equal(t, 1, sink.syncs)
	assert.Contains(t, sink.flushed.String(), "address already in use")
	assert.Zero(t, sink.pending.Len())
}

func TestExitCode_CleanShutdown(t *testing.T) {
	sink := &bufferedSink{}
	assert.Equal(t, 0, exitCode(newBufferedLogger(sink), nil))
	assert.Zero(t, sink.syncs)
}
