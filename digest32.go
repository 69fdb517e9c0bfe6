package murmur3

// Digest32 is a partial evaluation of a 32-bit hash: the running hash, the
// count of bytes consumed so far, and at most 3 pending tail bytes held
// inline. A Digest32 is a plain value. Write returns a derived digest and
// leaves its receiver untouched, so any intermediate state can be kept and
// extended down different branches. Nothing here touches the heap.
//
// The zero value is a valid digest with seed 0.
type Digest32 struct {
	h1   uint32
	clen uint32
	tail int
	buf  [4]byte
}

// New32 returns a digest seeded with 0.
func New32() Digest32 { return New32WithSeed(0) }

// New32WithSeed returns a digest seeded with an explicit seed value.
func New32WithSeed(seed uint32) Digest32 {
	return Digest32{h1: seed}
}

// Size returns the byte width of the final hash.
func (d Digest32) Size() int { return 4 }

// BlockSize returns the internal block width in bytes.
func (d Digest32) BlockSize() int { return 4 }

// Write folds p into the digest and returns the derived digest. Splitting a
// key across any number of Write calls yields the same final hash as a
// single Sum32 over the concatenation.
func (d Digest32) Write(p []byte) Digest32 {
	d.clen += uint32(len(p))

	// Top up pending bytes from a previous Write until a block forms.
	if d.tail > 0 {
		for d.tail < len(d.buf) && len(p) > 0 {
			d.buf[d.tail] = p[0]
			d.tail++
			p = p[1:]
		}
		if d.tail < len(d.buf) {
			return d
		}
		d.h1 = bmix32(d.h1, uint32(d.buf[0])|uint32(d.buf[1])<<8|uint32(d.buf[2])<<16|uint32(d.buf[3])<<24)
		d.tail = 0
	}

	for len(p) >= 4 {
		d.h1 = bmix32(d.h1, uint32(p[0])|uint32(p[1])<<8|uint32(p[2])<<16|uint32(p[3])<<24)
		p = p[4:]
	}

	for i := 0; i < len(p); i++ {
		d.buf[i] = p[i]
	}
	d.tail = len(p)
	return d
}

// WriteString is Write for a string key.
func (d Digest32) WriteString(s string) Digest32 {
	d.clen += uint32(len(s))

	if d.tail > 0 {
		for d.tail < len(d.buf) && len(s) > 0 {
			d.buf[d.tail] = s[0]
			d.tail++
			s = s[1:]
		}
		if d.tail < len(d.buf) {
			return d
		}
		d.h1 = bmix32(d.h1, uint32(d.buf[0])|uint32(d.buf[1])<<8|uint32(d.buf[2])<<16|uint32(d.buf[3])<<24)
		d.tail = 0
	}

	i, nblocks := 0, len(s)&^3
	for ; i < nblocks; i += 4 {
		d.h1 = bmix32(d.h1, uint32(s[i])|uint32(s[i+1])<<8|uint32(s[i+2])<<16|uint32(s[i+3])<<24)
	}

	d.tail = len(s) - nblocks
	for j := 0; j < d.tail; j++ {
		d.buf[j] = s[i+j]
	}
	return d
}

// Sum32 finalizes the digest and returns the hash. The receiver keeps its
// pre-finalization state, so a digest can be summed and then extended, and
// summing twice returns the same value.
func (d Digest32) Sum32() uint32 {
	h1 := d.h1

	var k uint32
	switch d.tail {
	case 3:
		k ^= uint32(d.buf[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(d.buf[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(d.buf[0])
		h1 ^= scramble32(k)
	}

	return fmix32(h1 ^ d.clen)
}

// Sum appends the big-endian bytes of the final hash to b.
func (d Digest32) Sum(b []byte) []byte {
	h := d.Sum32()
	return append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}
