// Package coop provides a minimal cooperative task scheduler.
// Tasks are futures advanced one step at a time on the goroutine
// that calls Run, suspending at Timeouts and resuming once the
// Timeout's background notifier marks them ready.
// Only Notifiers are safe for concurrent use, every other method
// of a Scheduler belongs to the goroutine running it.
package coop
