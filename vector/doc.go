// Package vector defines the dense numeric vector contract consumed by
// the seq and fft packages, and a reference implementation of it.
//
// In the original design this contract is provided by a host application
// (a matrix/statistics layer living outside this module); austra-core only
// depends on the narrow surface described here — length, indexing,
// reductions, and vectorized element-wise arithmetic. DenseInts,
// DenseReals and DenseComplexes are usable on their own, and are what
// seq's ToVectorInt/ToVectorReal/ToVectorComplex return.
package vector
