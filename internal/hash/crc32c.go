package hash

import (
	"hash/crc32"
)

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Bytes hashes data deterministically.
func Bytes(data []byte) uint64 {
	return uint64(CRC32C(data))
}

// String hashes s deterministically.
func String(s string) uint64 {
	return uint64(crc32.Update(0, crc32cTable, []byte(s)))
}
