// Package metric provides distance and similarity measures over fixed
// vectors: magnitude, dot product, cosine similarity, squared L2 distance,
// and L2 normalization. All functions are generic over the floating-point
// kinds and dimension-checked where two vectors are involved.
package metric
