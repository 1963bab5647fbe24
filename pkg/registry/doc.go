// Package registry holds the descriptors and factories of node types offered to a graph editor.
//
// Descriptors are presentation metadata only. Nothing in the blend core reads them.
package registry
