// Package seq implements austra-core's lazy numeric sequence algebra:
// a family of composable, resettable, once-consumable streams over
// int32, float64 and complex128, with map/filter/zip fusion and
// per-variant analytic fast paths for the closed-form-computable
// reductions (range/grid sums, repeat products, vector-backed SIMD
// delegation, and so on).
//
// Each element domain has its own concrete variant set and its own
// exported sequence interface (IntSequence, RealSequence,
// ComplexSequence) — there is no single generic Sequence[T], because the
// domains do not share identical operations (complex128 has no total
// order, so ComplexSequence has no Min/Max/Sort; only RealSequence has
// AR/MA; only IntSequence has an index-finder).
//
// The hot path (Next/Reset/Len/HasLength/HasStorage/Clone) is a small
// interface every variant implements directly. Everything else — sums,
// products, distinct, sort, arithmetic — is a package-level function
// that looks for a small, single-method optional interface on its
// argument (AnalyticSum, Storage, IndexAt, ...) before falling back to
// iterating the hot path. This mirrors the optional-interface pattern
// used throughout the standard library (io.ReaderFrom, io.WriterTo) and
// keeps the "prefer analytic > prefer vector SIMD > prefer lazy" fast-path
// rule explicit and auditable at each call site, rather than buried in a
// base-class override chain.
package seq
