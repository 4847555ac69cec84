package schedule

import (
	"time"

	"github.com/classcal/classcal-backend/internal/types"
)

// Overlaps reports whether two half-open intervals intersect: touching
// endpoints do not conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !(!aEnd.After(bStart) || !aStart.Before(bEnd))
}

// ConflictsWithAny reports whether the candidate interval overlaps any of
// the existing events. Events without an end are treated as zero-duration
// points at their start. An unparseable candidate never conflicts; bad data
// must not block scheduling.
func ConflictsWithAny(candidateStart, candidateEnd string, existing []types.CustomEvent) bool {
	cStart, okStart := ParseStamp(candidateStart)
	cEnd, okEnd := ParseStamp(candidateEnd)
	if !okStart || !okEnd {
		return false
	}
	for _, ev := range existing {
		s, ok := ParseStamp(ev.Start)
		if !ok {
			continue
		}
		e := s
		if ev.End != "" {
			if parsed, okE := ParseStamp(ev.End); okE {
				e = parsed
			}
		}
		if Overlaps(cStart, cEnd, s, e) {
			return true
		}
	}
	return false
}
