package gantt

import "fmt"

// TimeInterval is the half-open window [TimeStart, TimeEnd) a job occupies.
type TimeInterval struct {
	TimeStart float64
	TimeEnd   float64
}

func NewTimeInterval(start, duration float64) TimeInterval {
	return TimeInterval{
		TimeStart: start,
		TimeEnd:   start + duration,
	}
}

func (interval TimeInterval) Width() float64 {
	return interval.TimeEnd - interval.TimeStart
}

// Middle is where the bar label is anchored.
func (interval TimeInterval) Middle() float64 {
	return interval.TimeStart + interval.Width()/2
}

func (interval TimeInterval) Contains(at float64) bool {
	return at >= interval.TimeStart && at < interval.TimeEnd
}

// Overlaps treats touching intervals as disjoint.
func (interval TimeInterval) Overlaps(other TimeInterval) bool {
	return interval.TimeStart < other.TimeEnd && other.TimeStart < interval.TimeEnd
}

func (interval TimeInterval) String() string {
	return fmt.Sprintf(
		"[%g, %g)",
		interval.TimeStart,
		interval.TimeEnd,
	)
}
