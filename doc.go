// Package sparsix is an in-memory toolkit for two-dimensional integer
// matrices that are mostly zero — store only what is non-zero, and pay
// only for what is stored.
//
// 🚀 What is sparsix?
//
//	A small, deterministic library that brings together:
//		• Entry store: coordinate → value dictionary that never keeps zeros
//		• Matrix: bounds-checked wrapper with immutable dimensions
//		• Arithmetic: sparse Add / Sub / Mul with fill-in cancellation
//		• CSR: compressed-sparse-row export and matrix–vector products
//		• Codec: a strict, line-oriented text format with precise errors
//
// ✨ Why choose sparsix?
//
//   - Sparse-first – every operation costs O(non-zeros), never O(rows×cols)
//   - Deterministic – canonical row-major iteration, stable serialization
//   - Honest errors – sentinel kinds plus structured detail (line, coordinate, bound)
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under two subpackages and a CLI:
//
//	matrix/      — entry store, Matrix, arithmetic engine, CSR export
//	codec/       — text grammar: Decode with full validation, canonical Encode
//	cmd/sparsix/ — file-level driver: info, add, sub, mul, transpose, scale, all
//
// Quick example of the on-disk grammar:
//
//	rows=2
//	cols=2
//	(0, 0, 5)
//	(1, 1, 3)
//
//	describes a 2×2 matrix with two non-zero cells.
//
//	go get github.com/katalvlaran/sparsix
package sparsix
