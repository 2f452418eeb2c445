package logging

// keyValuePairSize represents the number of elements in a key-value pair.
const keyValuePairSize = 2

// KeyValueAdapter bridges the field-based Logger to the key-value pair
// interface the scoring engine logs through.
type KeyValueAdapter struct {
	log Logger
}

// NewKeyValueAdapter creates a new key-value logger adapter.
func NewKeyValueAdapter(log Logger) *KeyValueAdapter {
	return &KeyValueAdapter{log: log}
}

// Info logs an info message with key-value pairs.
func (a *KeyValueAdapter) Info(msg string, keysAndValues ...any) {
	a.log.Info(msg, toFields(keysAndValues)...)
}

// Error logs an error message with key-value pairs.
func (a *KeyValueAdapter) Error(msg string, keysAndValues ...any) {
	a.log.Error(msg, toFields(keysAndValues)...)
}

// Warn logs a warning message with key-value pairs.
func (a *KeyValueAdapter) Warn(msg string, keysAndValues ...any) {
	a.log.Warn(msg, toFields(keysAndValues)...)
}

// Debug logs a debug message with key-value pairs.
func (a *KeyValueAdapter) Debug(msg string, keysAndValues ...any) {
	a.log.Debug(msg, toFields(keysAndValues)...)
}

// toFields converts key-value pairs to a Field slice. Keys that are not
// strings are skipped along with their values; a trailing key with no
// value is dropped.
func toFields(keysAndValues []any) []Field {
	fields := make([]Field, 0, len(keysAndValues)/keyValuePairSize)
	for i := 0; i < len(keysAndValues); i += keyValuePairSize {
		if i+1 >= len(keysAndValues) {
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, Any(key, keysAndValues[i+1]))
	}
	return fields
}
