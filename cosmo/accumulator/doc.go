// Package accumulator holds the in-memory form of the metrics document: a
// tree of simulations whose leaves are metric records.
//
// A Flat simulation maps snapshot → Record; a Nested simulation maps
// realization → snapshot → Record. The shape of a simulation is fixed by
// the first record stored in it; storing a record of the other shape fails
// with ErrShapeConflict.
//
// Values are a tagged union of scalar, numeric sequence and string
// reference. Values that fit none of these (as found in hand-edited or
// foreign documents) are kept as raw JSON and written back unchanged.
//
// JSON layout:
//
//	{"sim": {"000": {"entropy": 1.2, ...}}}                 flat
//	{"sim": {"17": {"000": {"entropy": 1.2, ...}}}}         nested
//
// On decode a simulation is nested only if all its second- and third-level
// keys are digit indices and every third-level value is an object.
//
// NaN is written as null and null is read back as NaN. Bare NaN and
// ±Infinity tokens in input documents are read as NaN.
//
// A Tree is not safe for concurrent mutation; clone it per goroutine.
package accumulator
