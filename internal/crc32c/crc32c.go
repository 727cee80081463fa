// Package crc32c computes the IEEE 802.3 CRC32 used to verify the
// uncompressed payload of an NZP container.
package crc32c

import "hash/crc32"

// table is built once at package init from the standard IEEE polynomial
// (0xEDB88320). Package-level var initialization happens before any
// goroutine can observe the table, so no additional lazy-init guard is
// needed.
var table = crc32.MakeTable(crc32.IEEE)

// Checksum returns the IEEE CRC32 of data, seed 0, final XOR 0xFFFFFFFF
// (both baked into crc32.Checksum's table-driven implementation).
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, table)
}
