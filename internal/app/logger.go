package app

import "github.com/heroiclabs/nakama-common/runtime"

// NoopLogger discards everything. It lets the app layer run outside Nakama.
type NoopLogger struct{}

func (NoopLogger) Debug(string, ...interface{}) {}
func (NoopLogger) Info(string, ...interface{})  {}
func (NoopLogger) Warn(string, ...interface{})  {}
func (NoopLogger) Error(string, ...interface{}) {}
func (NoopLogger) WithField(string, interface{}) runtime.Logger {
	return NoopLogger{}
}
func (NoopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return NoopLogger{}
}
func (NoopLogger) Fields() map[string]interface{} {
	return nil
}
