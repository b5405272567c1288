// Package endian detects the platform specific byte endianness. On first use
// the package observes how the bytes 0, 1, 2, 3 read back as a single uint32
// and caches the resulting classification tag for the life of the process.
package endian
