package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var ErrMalformedWorkItem = errors.New("malformed work item")

// MaxWorkItemDuration is the longest duration in seconds a time.Duration can hold.
const MaxWorkItemDuration = 9223372036

const WorkItemSchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "type": "object",
  "properties": {
    "id": {"type": "integer"},
    "duration": {"type": "number", "minimum": 0, "maximum": 9223372036}
  },
  "required": ["id", "duration"]
}`

var workItemSchemaLoader = gojsonschema.NewStringLoader(WorkItemSchema)

// WorkItem is the body of every message on the work queue.
type WorkItem struct {
	ID       int64   `json:"id"`
	Duration float64 `json:"duration"`
}

func (w WorkItem) Marshal() (string, error) {
	body, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ParseWorkItem validates body against WorkItemSchema before decoding it.
// Every failure wraps ErrMalformedWorkItem.
func ParseWorkItem(body string) (*WorkItem, error) {
	result, err := gojsonschema.Validate(workItemSchemaLoader, gojsonschema.NewStringLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedWorkItem, err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedWorkItem, strings.Join(details, "; "))
	}

	item := &WorkItem{}
	if err := json.Unmarshal([]byte(body), item); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedWorkItem, err.Error())
	}
	return item, nil
}

type OutgoingMessage struct {
	Body            string
	GroupID         string
	DeduplicationID string
}

type QueueMessage struct {
	MessageID     string
	ReceiptHandle string
	Body          string
	ReceiveCount  int
}
