package main

// infailableHandler adapts a hook callback with no failure mode to the
// error-returning signature the app hooks expect.
func infailableHandler[T any](fn func(e T)) func(e T) error {
	return func(e T) error {
		fn(e)
		return nil
	}
}
