// Package numeric defines the scalar kinds a vector may hold and the
// overflow-checked scalar operations shared by the element-wise transforms.
//
// This package is internal: external users work with the fixvec package,
// which re-exports the Number constraint.
package numeric
