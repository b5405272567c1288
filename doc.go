// Package bitutil provides the low-level integer bit manipulation primitives
// used by cryptographic and wire-format code: circular rotation, masked
// logical shifts, host/network byte order conversion and most significant bit
// location.
//
// All operations are generic over the fixed-width integer types and are pure
// functions of their arguments, except for the host byte order
// classification which is observed once per process and cached.
//
// Operands are always handled through their unsigned view at the storage
// width of the type, so sign bits rotate like any other bit and right shifts
// zero-fill for signed types as well.
package bitutil
