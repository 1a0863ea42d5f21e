package server

// Server is the lifecycle of the datebook transport: RunServer blocks until a
// termination signal arrives, Shutdown drains in-flight requests and closes
// the listener.
type Server interface {
	RunServer()
	Shutdown()
}
