package usecase

import (
	"context"

	"study-tracker/internal/analytics"
	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

// periodOf buckets a local hour into the four fixed periods.
func periodOf(hour int) analytics.Period {
	switch {
	case hour >= 6 && hour < 12:
		return analytics.PeriodMorning
	case hour >= 12 && hour < 18:
		return analytics.PeriodAfternoon
	case hour >= 18:
		return analytics.PeriodEvening
	default:
		return analytics.PeriodNight
	}
}

// ByTimePeriod accumulates per-period totals, correctness and elapsed time.
// Tasks whose start time cannot be resolved are excluded entirely.
func (uc *implUseCase) ByTimePeriod(ctx context.Context, tasks []model.StudyTask) map[analytics.Period]analytics.PeriodStats {
	acc := make(map[analytics.Period]*analytics.PeriodStats)
	for _, t := range tasks {
		start, ok := taskStart(t)
		if !ok {
			uc.l.Warnf(ctx, "analytics.ByTimePeriod: task %s has no usable start time, skipping", t.TaskID)
			continue
		}
		p := periodOf(start.Hour())
		stats := acc[p]
		if stats == nil {
			stats = &analytics.PeriodStats{}
			acc[p] = stats
		}
		stats.Total++
		if record.IsCorrect(t.CorrectlyCompleted) {
			stats.Correct++
		}
		if minutes, ok := taskDuration(t); ok {
			stats.TotalTime += minutes
		}
	}

	out := make(map[analytics.Period]analytics.PeriodStats, len(acc))
	for p, stats := range acc {
		stats.Accuracy = roundPercent(stats.Correct, stats.Total)
		stats.AverageTime = stats.TotalTime / float64(stats.Total)
		out[p] = *stats
	}
	return out
}

// BestWorst picks the highest- and lowest-accuracy periods among buckets
// meeting the reliability threshold, ties broken by fixed bucket order.
// With no reliable bucket it falls back to the first and last bucket present,
// flagged Reliable=false so downstream presents them as a weaker signal.
func (uc *implUseCase) BestWorst(ctx context.Context, periods map[analytics.Period]analytics.PeriodStats) analytics.BestWorst {
	var best, worst *analytics.PeriodSelection
	for _, p := range analytics.PeriodOrder {
		stats, ok := periods[p]
		if !ok || stats.Total < analytics.ReliabilityThreshold {
			continue
		}
		if best == nil || stats.Accuracy > best.Stats.Accuracy {
			best = &analytics.PeriodSelection{Period: p, Stats: stats, Reliable: true}
		}
		if worst == nil || stats.Accuracy < worst.Stats.Accuracy {
			worst = &analytics.PeriodSelection{Period: p, Stats: stats, Reliable: true}
		}
	}
	if best != nil {
		return analytics.BestWorst{Best: best, Worst: worst}
	}

	// Fallback: first and last present bucket in fixed order.
	var present []analytics.Period
	for _, p := range analytics.PeriodOrder {
		if _, ok := periods[p]; ok {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return analytics.BestWorst{}
	}
	first, last := present[0], present[len(present)-1]
	return analytics.BestWorst{
		Best:  &analytics.PeriodSelection{Period: first, Stats: periods[first], Reliable: false},
		Worst: &analytics.PeriodSelection{Period: last, Stats: periods[last], Reliable: false},
	}
}
