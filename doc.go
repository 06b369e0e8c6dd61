// Package smjson is a JSON codec built around a typed document tree.
//
// Decode parses a JSON text into a container.Container, Encode serializes
// a tree back to JSON (optionally pretty-printed), and the container
// package provides structural operations on already-built trees: Merge,
// ShallowCopy, DeepCopy, Cleanup and Rename.
//
// The decoder materializes the whole document before returning; it is not
// a streaming parser, a schema validator or a JSONPath engine.
package smjson
