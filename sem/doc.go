// Package sem builds the per-element discrete calculus used by a
// spectral-element flow solver: 1D quadrature rules for the staggered
// velocity (Gauss-Lobatto) and pressure (Gauss) meshes, the differentiation,
// interpolation and mass operators derived from them, and the tensor-product
// application of those 1D operators to element fields.
//
// Everything here is derived purely from the polynomial orders fixed at
// configuration time. A Space is built once at startup and is read-only
// afterwards, so it is shared freely across call sites without
// synchronization.
package sem
