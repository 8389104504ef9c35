// Package container implements the .sc document: header read/write, the
// tag dispatcher, save emit order, and external-texture file resolution.
//
// Document is the root aggregate every other package's types hang off
// of. Load and Save are the two entry points; both take LoadOption values
// (progress sink, filesystem and file name). During Load the tag
// dispatcher receives the document, the buffer, and one per-call
// dispatchState carrying the header counts, the per-kind counters, and
// the progress sink.
package container
