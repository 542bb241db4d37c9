package entity

import (
	"fmt"
	"time"
)

// Slot is a half-open [Start, End) time interval.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (s Slot) String() string {
	return fmt.Sprintf("%s-%s", s.Start.Format("15:04"), s.End.Format("15:04"))
}

// Overlaps reports whether two slots share any instant. Touching
// boundaries (one ends exactly when the other starts) do not overlap.
func (s Slot) Overlaps(other Slot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

// Equal reports whether both bounds match to the instant.
func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// SlotsBetween slices the window [start, end) into consecutive slots of
// the given step, left-aligned. A trailing remainder shorter than step
// is dropped. A non-positive step yields no slots.
func SlotsBetween(start, end time.Time, step time.Duration) []Slot {
	if step <= 0 {
		return nil
	}

	var slots []Slot
	for !start.Add(step).After(end) {
		slots = append(slots, Slot{Start: start, End: start.Add(step)})
		start = start.Add(step)
	}

	return slots
}

// FreeSlots returns the slots of the window not overlapped by any of
// the given reserved intervals.
func FreeSlots(window Slot, step time.Duration, reserved []Slot) []Slot {
	all := SlotsBetween(window.Start, window.End, step)

	free := make([]Slot, 0, len(all))
	for _, slot := range all {
		taken := false
		for _, r := range reserved {
			if slot.Overlaps(r) {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, slot)
		}
	}

	return free
}
