// Package memory provides in-process implementations of the store ports.
//
// The stores here are explicitly constructed values: each CaseStore owns its
// dataset and id counters, and Reset restores the dataset it was built with.
// They are intended for demos, local development and tests.
package memory
