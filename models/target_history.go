package models

type TargetStatus int

const (
	TargetStatusSucceeded TargetStatus = iota
	TargetStatusFailed
)

func (s TargetStatus) String() string {
	switch s {
	case TargetStatusSucceeded:
		return "succeeded"
	case TargetStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TargetDecision is the outcome of one target setter run.
type TargetDecision struct {
	PolicyName      string  `json:"policy_name"`
	SampleCount     int     `json:"sample_count"`
	AverageDuration float64 `json:"average_duration"`
	UsedFallback    bool    `json:"used_fallback"`
	PreviousTarget  float64 `json:"previous_target"`
	TargetBPI       int64   `json:"target_bpi"`
	Timestamp       int64   `json:"timestamp"`
}

type TargetHistory struct {
	TargetDecision
	Status TargetStatus `json:"status"`
	Error  string       `json:"error"`
}
