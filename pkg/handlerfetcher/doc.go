// Package handlerfetcher contains implementations of the domain.HandlerFetcher
// interface that are responsible for loading the function handlers, along with
// decorators that prepare the context each handler is invoked with.
package handlerfetcher
