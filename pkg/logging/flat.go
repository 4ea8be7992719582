package logging

import (
	"encoding/json"
	"time"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var bufferPool = buffer.NewPool()

// FlatEncoder writes one JSON object per entry with every field promoted to
// the top level next to timestamp, level and message.
type FlatEncoder struct {
	// holds fields added through Logger.With
	*zapcore.MapObjectEncoder
}

// NewFlatEncoder creates a flat JSON encoder
func NewFlatEncoder() zapcore.Encoder {
	return &FlatEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder()}
}

// Clone creates a copy of the encoder
func (e *FlatEncoder) Clone() zapcore.Encoder {
	clone := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		clone.Fields[k] = v
	}
	return &FlatEncoder{MapObjectEncoder: clone}
}

// EncodeEntry encodes a log entry
func (e *FlatEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	enc := zapcore.NewMapObjectEncoder()
	for k, v := range e.Fields {
		enc.Fields[k] = v
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	obj := enc.Fields
	obj["timestamp"] = entry.Time.UTC().Format(time.RFC3339Nano)
	obj["level"] = entry.Level.String()
	obj["message"] = entry.Message
	if entry.LoggerName != "" {
		obj["logger"] = entry.LoggerName
	}
	if entry.Caller.Defined {
		obj["caller"] = entry.Caller.TrimmedPath()
	}
	if entry.Stack != "" {
		obj["stack"] = entry.Stack
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	buf := bufferPool.Get()
	buf.AppendBytes(data)
	buf.AppendByte('\n')
	return buf, nil
}
