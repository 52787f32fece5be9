// Package schedule implements the free/busy slot computation engine.
//
// The engine is a pure, stateless pipeline over immutable inputs: busy
// periods reported by one or more calendars are merged into a single
// sorted list, reconstructed into an alternating free/busy slot sequence
// covering a query window, and then clipped against configured daily hour
// windows with optional mid-day break splitting.
//
// All arithmetic is zone-aware. Day boundaries are derived in the zone of
// the slot being processed, so multi-day slots split correctly across DST
// transitions.
//
// Example usage:
//
//	merged := schedule.Merge(sources)
//	slots := schedule.Organize(merged, windowStart, windowEnd)
//	slots = schedule.FilterHours(slots, hours, schedule.FilterOptions{WeekdaysOnly: true})
package schedule
