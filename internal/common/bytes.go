package common

// WipeByteArray zeroes the slice in place. Used for password buffers that
// should not linger in memory.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
