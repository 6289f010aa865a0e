package arrowbuf

import (
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/rawbytedev/arrowbuf/internal/common"
)

// Compressed buffers carry a varint uncompressed-size prefix followed
// by a single zstd frame, one per buffer.

// rawBuffer returns b with d's codec undone. CompRaw hands the buffer
// back untouched; CompZstd decompresses into a fresh slice.
func (d Descriptor) rawBuffer(b []byte) ([]byte, error) {
	switch d.Codec {
	case CompRaw:
		return b, nil
	case CompZstd:
		return decompress(b)
	default:
		return nil, errors.Errorf("unknown codec %d", d.Codec)
	}
}

// maxRawSize bounds what a size prefix may claim, so a corrupt prefix
// cannot force a huge allocation.
const maxRawSize = 1 << 30

func decompress(b []byte) ([]byte, error) {
	size, n := common.ReadVarUint(b)
	if n == 0 {
		return nil, errors.Wrap(ErrCorruptBuffer, "missing size prefix")
	}
	if size > maxRawSize {
		return nil, errors.Wrapf(ErrCorruptBuffer, "size prefix %d exceeds limit", size)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(b[n:], make([]byte, 0, size))
	if err != nil {
		return nil, errors.Wrap(ErrCorruptBuffer, err.Error())
	}
	if uint64(len(raw)) != size {
		return nil, errors.Wrapf(ErrCorruptBuffer, "size prefix says %d bytes, frame held %d", size, len(raw))
	}
	return raw, nil
}

func compressBuf(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	out := common.WriteVarUint(nil, uint64(len(raw)))
	return enc.EncodeAll(raw, out), nil
}

// Compress returns a copy of d with both buffers zstd-compressed.
// Compressing an already-compressed descriptor is a no-op.
func (d Descriptor) Compress() (Descriptor, error) {
	if d.Codec == CompZstd {
		return d, nil
	}
	out := d
	var err error
	if out.Data, err = compressBuf(d.Data); err != nil {
		return Descriptor{}, err
	}
	if d.Validity != nil {
		if out.Validity, err = compressBuf(d.Validity); err != nil {
			return Descriptor{}, err
		}
	}
	out.Codec = CompZstd
	return out, nil
}
