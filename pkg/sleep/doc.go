// Package sleep paces DDC/CI exchanges.
//
// Monitors need a pause between writing a request and reading the reply,
// and flaky links need longer ones. Tuned returns the pause for a sleep
// Event, scaled by a configured multiplier and by the adjustment factor a
// worker's Stats has learned from recent status codes.
//
// Stats are owned by a single worker and are not locked. A Registry hands
// out one Stats per WorkerID, creating it on first use.
package sleep
