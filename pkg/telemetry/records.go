// pkg/telemetry/records.go

// Package telemetry writes per-wave records of a session to CSV and
// summarises them when the session ends.
package telemetry

import "gonum.org/v1/gonum/stat"

// WaveRecord is one wave advance. Wave and Quota describe the wave that just
// began; Frames is how long the previous one lasted.
type WaveRecord struct {
	Wave   int    `csv:"wave"`
	Quota  int    `csv:"quota"`
	Score  int    `csv:"score"`
	Frame  uint64 `csv:"frame"`
	Frames uint64 `csv:"frames"`
}

// Summary describes a whole session.
type Summary struct {
	Waves        int
	FinalWave    int
	FinalScore   int
	MeanFrames   float64
	StdDevFrames float64
}

// Summarize computes frames-per-wave statistics over records. The standard
// deviation is zero with fewer than two records.
func Summarize(records []WaveRecord) Summary {
	if len(records) == 0 {
		return Summary{FinalWave: 1}
	}

	frames := make([]float64, len(records))
	for i, r := range records {
		frames[i] = float64(r.Frames)
	}

	last := records[len(records)-1]
	s := Summary{
		Waves:      len(records),
		FinalWave:  last.Wave,
		FinalScore: last.Score,
	}
	if len(frames) < 2 {
		s.MeanFrames = frames[0]
		return s
	}

	s.MeanFrames, s.StdDevFrames = stat.MeanStdDev(frames, nil)
	return s
}
