package models

const (
	PolicyTypeTargetTracking = "TargetTrackingScaling"
	ServiceNamespaceECS      = "ecs"
)

type ScalingPolicy struct {
	PolicyName        string
	PolicyType        string
	ServiceNamespace  string
	ResourceID        string
	ScalableDimension string
	TargetTracking    *TargetTrackingConfiguration
}

type TargetTrackingConfiguration struct {
	TargetValue      float64
	CustomizedMetric *CustomizedMetricSpecification
	PredefinedMetric *PredefinedMetricSpecification
	ScaleInCooldown  *int64
	ScaleOutCooldown *int64
	DisableScaleIn   *bool
}

type CustomizedMetricSpecification struct {
	MetricName string
	Namespace  string
	Statistic  string
	Unit       string
	Dimensions []Dimension
	// set when the specification is built from metric math queries instead of a single metric
	UsesMetricMath bool
}

type PredefinedMetricSpecification struct {
	PredefinedMetricType string
	ResourceLabel        string
}

// Clone returns a deep copy so a policy read from the store can be modified
// without touching the original.
func (p *ScalingPolicy) Clone() *ScalingPolicy {
	if p == nil {
		return nil
	}
	clone := *p
	if p.TargetTracking != nil {
		tt := *p.TargetTracking
		if tt.CustomizedMetric != nil {
			cm := *tt.CustomizedMetric
			cm.Dimensions = append([]Dimension(nil), tt.CustomizedMetric.Dimensions...)
			tt.CustomizedMetric = &cm
		}
		if tt.PredefinedMetric != nil {
			pm := *tt.PredefinedMetric
			tt.PredefinedMetric = &pm
		}
		tt.ScaleInCooldown = copyInt64(tt.ScaleInCooldown)
		tt.ScaleOutCooldown = copyInt64(tt.ScaleOutCooldown)
		if tt.DisableScaleIn != nil {
			v := *tt.DisableScaleIn
			tt.DisableScaleIn = &v
		}
		clone.TargetTracking = &tt
	}
	return &clone
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
