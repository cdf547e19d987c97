// Package workers runs the server's background jobs. Each job implements
// [Worker]; the [Workers] aggregate starts them together at boot.
package workers

// Worker is a background job. Run either blocks for the duration of the work
// or spawns its own goroutines and returns.
type Worker interface {
	Run()
}
