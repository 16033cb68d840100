// Package codefile implements the pure document model for Codepane.
//
// A Model is an ordered collection of in-memory File records plus the
// index of the file currently shown and the editing-mode flag. It holds
// no presentation state; rendering belongs to the editor package.
package codefile
