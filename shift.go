package bitutil

// ShiftLeft shifts `v` left by `k` bits. Bits moved past the storage width
// are dropped and a shift by the width or more yields 0.
func ShiftLeft[T Integer](v T, k uint) T {
	return ShiftLeftMasked(v, k, ^T(0))
}

// ShiftRight shifts `v` right by `k` bits, filling with zeros even when T is
// signed.
func ShiftRight[T Integer](v T, k uint) T {
	return ShiftRightMasked(v, k, ^T(0))
}

// ShiftLeftMasked shifts `v` left by `k` bits and masks the result with `mask`.
func ShiftLeftMasked[T Integer](v T, k uint, mask T) T {
	return T((unsignedView(v) << k) & unsignedView(mask))
}

// ShiftRightMasked masks `v` with `mask` and then shifts it right by `k` bits.
// The shift is logical: the sign bit of a signed T is never replicated.
func ShiftRightMasked[T Integer](v T, k uint, mask T) T {
	return T((unsignedView(v) & unsignedView(mask)) >> k)
}
