package models

import "time"

const (
	StatisticAverage = "Average"

	DimensionType      = "Type"
	DimensionQueueName = "QueueName"

	UnitSeconds = "Seconds"
	UnitCount   = "Count"

	HighResolution int64 = 1
)

type Dimension struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MetricDimensions returns the dimension set every sample of one queue is tagged with.
func MetricDimensions(metricType, queueName string) []Dimension {
	return []Dimension{
		{Name: DimensionType, Value: metricType},
		{Name: DimensionQueueName, Value: queueName},
	}
}

type MetricSample struct {
	Namespace         string
	MetricName        string
	Value             float64
	Unit              string
	Dimensions        []Dimension
	Timestamp         time.Time
	StorageResolution int64
}

type MetricQuery struct {
	Namespace  string
	MetricName string
	Dimensions []Dimension
	Start      time.Time
	End        time.Time
	Period     time.Duration
	Statistic  string
}
