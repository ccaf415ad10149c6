// Package randsrc defines the random-number source contracts consumed by
// the seq package's Random, Normal, AR and MA sequence variants, plus a
// math/rand/v2-backed reference implementation of each.
//
// austra-core never reads these sources itself beyond the documented
// contract: a uniform double in [0,1), a bounded integer draw, and a
// normal-distributed double (singly or in independent pairs). A host
// application is free to supply its own implementation, for example one
// seeded deterministically for reproducible backtests.
package randsrc
