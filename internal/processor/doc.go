// Package processor defines the image transformation contract and its
// implementations.
//
// A Processor owns one input-to-output pipeline: load, normalize,
// transform, save. Each implementation carries an explicit options
// struct validated at construction, so a constructed processor cannot
// fail on bad configuration mid-run. The CLI dispatcher selects
// processors by Name.
package processor
