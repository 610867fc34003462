package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

type redactingWriterWithURLCredSink struct {
	writer                  io.Writer
	minLogLevel             lager.LogLevel
	writeL                  *sync.Mutex
	jsonRedacterWithURLCred *JSONRedacterWithURLCred
}

func NewRedactingWriterWithURLCredSink(writer io.Writer, minLogLevel lager.LogLevel, keyPatterns []string, valuePatterns []string) (lager.Sink, error) {
	jsonRedacterWithURLCred, err := NewJSONRedacterWithURLCred(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &redactingWriterWithURLCredSink{
		writer:                  writer,
		minLogLevel:             minLogLevel,
		writeL:                  new(sync.Mutex),
		jsonRedacterWithURLCred: jsonRedacterWithURLCred,
	}, nil
}

func (sink *redactingWriterWithURLCredSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLogLevel {
		return
	}
	v := NewTimeLogFormat(log).ToJSON()
	rv := sink.jsonRedacterWithURLCred.Redact(v)

	sink.writeL.Lock()
	defer sink.writeL.Unlock()
	_, _ = sink.writer.Write(rv)
	_, _ = sink.writer.Write([]byte("\n"))
}

// TimeLogFormat adds a human readable RFC3339 log_time next to lager's epoch timestamp.
type TimeLogFormat struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func NewTimeLogFormat(log lager.LogFormat) TimeLogFormat {
	floatTime, err := strconv.ParseFloat(log.Timestamp, 64)
	if err != nil {
		floatTime = 0.0
	}
	return TimeLogFormat{
		LogTime:   time.Unix(int64(floatTime), 0).Format(time.RFC3339),
		LogFormat: log,
	}
}

func (tlf TimeLogFormat) ToJSON() []byte {
	content, err := json.Marshal(tlf)
	if err == nil {
		return content
	}
	var unsupportedErr *json.UnsupportedTypeError
	var marshalErr *json.MarshalerError
	if errors.As(err, &unsupportedErr) || errors.As(err, &marshalErr) {
		tlf.Data = map[string]interface{}{"lager serialisation error": err.Error(), "data_dump": fmt.Sprintf("%#v", tlf.Data)}
		content, err = json.Marshal(tlf)
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", err.Error())
		content = []byte("{}")
	}
	return content
}
