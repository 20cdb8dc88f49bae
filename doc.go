// Package fixvec provides an owned, fixed-dimension generic numeric vector
// with pure element-wise transforms.
//
// A Vector's dimension and element type are fixed at construction and never
// change. All transforms return a new Vector and leave the receiver
// untouched, so Vectors are safe to share across concurrent readers.
//
// # Quick Start
//
//	v, _ := fixvec.Of[float32](10, -10, 5)
//	a, _ := v.Abs()       // Vec3(10, 10, 5)
//	x, _ := v.At(0)       // 10
//	_, err := v.At(5)     // *ErrIndexOutOfRange
//
// # Element Kinds
//
// The element type parameter accepts all integer and floating-point kinds.
// For unsigned kinds Abs is the identity. For signed integer kinds the
// minimum representable value has no representable magnitude; Abs and Neg
// report it as *ErrOverflow rather than wrapping silently.
//
// # Batch Transforms
//
// AbsAll and MapAll fan a transform out over many vectors:
//
//	out, err := fixvec.AbsAll(ctx, vecs, fixvec.WithConcurrency(8))
//
// # Related Packages
//
//   - metric: distance and similarity measures (Magnitude, CosineSimilarity, ...)
//   - codec: self-describing binary encoding with checksums and compression
//   - util: random vector generation for tests and benchmarks
package fixvec
