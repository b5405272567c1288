package bitutil

// RotateLeft returns `v` rotated left by `k` bits within the storage width
// of T. `k` must be less than the width; callers reduce it beforehand.
func RotateLeft[T Integer](v T, k uint) T {
	return RotateLeftMasked(v, k, storageBits[T](), ^T(0))
}

// RotateRight returns `v` rotated right by `k` bits within the storage width
// of T. `k` must be less than the width; callers reduce it beforehand.
func RotateRight[T Integer](v T, k uint) T {
	return RotateRightMasked(v, k, storageBits[T](), ^T(0))
}

// RotateLeftMasked rotates the low `width` bits of `v` left by `k` bits and
// masks the result with `mask`. It serves values whose storage is wider than
// their nominal width, e.g. a 32-bit quantity kept in a uint64 is rotated with
// width 32 and mask 0xffffffff.
//
// A rotation by 0 yields v & mask. The result is unspecified for k > width.
func RotateLeftMasked[T Integer](v T, k, width uint, mask T) T {
	m := unsignedView(mask)
	u := unsignedView(v) & m
	return T(((u << k) | (u >> (width - k))) & m)
}

// RotateRightMasked is the right rotating counterpart of RotateLeftMasked.
func RotateRightMasked[T Integer](v T, k, width uint, mask T) T {
	m := unsignedView(mask)
	u := unsignedView(v) & m
	return T(((u >> k) | (u << (width - k))) & m)
}
