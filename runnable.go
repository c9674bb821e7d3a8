package altecs

// Runnable is the interface implemented by loops and tasks.
// Run is called with the system's fields injected; per-entity systems are
// called once for every matching entity.
type Runnable interface {
	Run()
}
