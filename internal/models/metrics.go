package models

// ClimbMetrics is the aggregate technique record computed once over a
// complete PoseStream. Every ratio metric carries the size of the valid
// sample subset it was computed from; metrics over empty subsets report
// zero values with a zero sample count.
type ClimbMetrics struct {
	StreamID string `json:"stream_id,omitempty"`

	// Hip path geometry
	PathEfficiency float64 `json:"path_efficiency"` // direct / total, 0-1
	TotalDistance  float64 `json:"total_distance"`  // cumulative hip path, pixels
	DirectDistance float64 `json:"direct_distance"` // start->end displacement, pixels
	PathSamples    int     `json:"path_samples"`

	// Movement variability
	TrajectoryEntropy float64 `json:"trajectory_entropy"` // normalized 0-1
	EntropySamples    int     `json:"entropy_samples"`    // displacement vectors binned

	// Joint extension
	ElbowOpenRatio    float64 `json:"elbow_open_ratio"` // fraction of arm samples >= 150 deg
	ElbowSamples      int     `json:"elbow_samples"`
	ShoulderOpenRatio float64 `json:"shoulder_open_ratio"`
	ShoulderSamples   int     `json:"shoulder_samples"`

	// Reach segmentation
	ReachCount      int     `json:"reach_count"`       // contiguous fast-wrist runs
	LongReachCount  int     `json:"long_reach_count"`  // runs longer than 1.0s
	AvgReachSeconds float64 `json:"avg_reach_seconds"` // mean run duration

	// Hip jerk smoothness
	Smoothness        float64 `json:"smoothness"` // 1/(1+meanJerk/scale), (0,1]
	SmoothnessSamples int     `json:"smoothness_samples"`

	// Rhythm
	MoveCount       int     `json:"move_count"`
	AvgPauseSeconds float64 `json:"avg_pause_seconds"`
	RhythmVariance  float64 `json:"rhythm_variance"`

	// Foot placement stability
	AvgFootJitter   float64 `json:"avg_foot_jitter"`
	CleanPlacements int     `json:"clean_placements"`
	TotalPlacements int     `json:"total_placements"`
	StabilityScore  float64 `json:"stability_score"`

	// Core engagement
	BodyTensionScore float64 `json:"body_tension_score"`
	SagCount         int     `json:"sag_count"`

	ClimbDuration float64 `json:"climb_duration"` // seconds over the valid hip subset

	CreatedAt string `json:"created_at,omitempty"`
}
