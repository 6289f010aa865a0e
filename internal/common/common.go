package common

// Helpers shared by the encode and decode paths: LSB-first bitmap
// access and varint size prefixes for compressed buffers.

// BytesForBits returns the byte length needed to hold n bits.
func BytesForBits(n int) int {
	return (n + 7) / 8
}

// BitIsSet reports whether bit i of b is set, LSB-first within each byte.
func BitIsSet(b []byte, i int) bool {
	return b[i/8]&(1<<(uint(i)%8)) != 0
}

// SetBit sets bit i of b, LSB-first within each byte.
func SetBit(b []byte, i int) {
	b[i/8] |= 1 << (uint(i) % 8)
}

// UnpackBits decodes n bits of b starting at bit offset into a fresh
// []bool. The caller must have checked that b holds offset+n bits.
func UnpackBits(b []byte, offset, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = BitIsSet(b, offset+i)
	}
	return out
}

// PackBits encodes bits into an LSB-first bitmap padded with zero bits
// up to the next byte boundary.
func PackBits(bits []bool) []byte {
	out := make([]byte, BytesForBits(len(bits)))
	for i, set := range bits {
		if set {
			SetBit(out, i)
		}
	}
	return out
}

// WriteVarUint appends a varint to buf (allocating if needed).
func WriteVarUint(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// ReadVarUint decodes a varint from b returning value and bytes consumed.
func ReadVarUint(b []byte) (uint64, int) {
	var x uint64
	var s uint
	for i, c := range b {
		x |= uint64(c&0x7F) << s
		if c&0x80 == 0 {
			return x, i + 1
		}
		s += 7
	}
	return 0, 0
}
