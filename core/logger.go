package core

// Logger is the app-wide logging contract.
// Implementations may forward entries to an error tracking service;
// a user.User may be passed as an arg to attribute the entry.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
