package common

// WipeByteArray overwrites b with zeroes. Used to scrub passwords from
// memory once they are no longer needed.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
