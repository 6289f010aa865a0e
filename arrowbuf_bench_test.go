package arrowbuf

import (
	"math/rand"
	"testing"
)

func benchDescriptor(b *testing.B, n int) Descriptor {
	values := make([]int64, n)
	valid := make([]bool, n)
	for i := range values {
		values[i] = rand.Int63()
		valid[i] = i%7 != 0
	}
	d, err := Encode(values, valid)
	if err != nil {
		b.Fatal(err)
	}
	return d
}

func BenchmarkDecodeInt64(b *testing.B) {
	d := benchDescriptor(b, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = Decode[int64](d)
	}
}

func BenchmarkDecodeAny(b *testing.B) {
	d := benchDescriptor(b, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = DecodeAny(d)
	}
}

func BenchmarkDecodeBool(b *testing.B) {
	values := make([]bool, 4096)
	for i := range values {
		values[i] = i%3 == 0
	}
	d, err := EncodeBool(values, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = DecodeBool(d)
	}
}

func BenchmarkDecodeZstd(b *testing.B) {
	d := benchDescriptor(b, 4096)
	c, err := d.Compress()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _, _ = Decode[int64](c)
	}
}
