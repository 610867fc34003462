package models

type BacklogSample struct {
	QueueDepth         int64   `json:"queue_depth"`
	RunningTasks       int64   `json:"running_tasks"`
	BacklogPerInstance float64 `json:"backlog_per_instance"`
}
