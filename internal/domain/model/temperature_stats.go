package model

import (
	"encoding/json"

	"climate-api/pkg/util/numberutils"
)

// TemperatureStats is the [min, max, average] reduction of temperature observations.
// It is serialized as a three element JSON array.
type TemperatureStats struct {
	Min     float64
	Max     float64
	Average float64
}

// NewTemperatureStats reduces the observations. ok is false when there is nothing to reduce.
func NewTemperatureStats(observations []float64) (stats TemperatureStats, ok bool) {
	if len(observations) == 0 {
		return TemperatureStats{}, false
	}

	return TemperatureStats{
		Min:     numberutils.MinFloat64(observations...),
		Max:     numberutils.MaxFloat64(observations...),
		Average: numberutils.AverageFloat64(observations...),
	}, true
}

func (s TemperatureStats) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{s.Min, s.Max, s.Average})
}

func (s *TemperatureStats) UnmarshalJSON(data []byte) error {
	var values [3]float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.Min, s.Max, s.Average = values[0], values[1], values[2]
	return nil
}
