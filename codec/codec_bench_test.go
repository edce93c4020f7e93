package codec

import (
	"bytes"
	"math/rand"
	"testing"
)

func benchData(kind string, size int) []byte {
	switch kind {
	case "runs":
		var data []byte
		for len(data) < size {
			data = append(data, bytes.Repeat([]byte{byte(len(data) % 7)}, 64)...)
		}

		return data[:size]
	case "mixed":
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i % 16)
		}

		return data
	default: // random
		rng := rand.New(rand.NewSource(1))
		data := make([]byte, size)
		rng.Read(data)

		return data
	}
}

func BenchmarkCompress(b *testing.B) {
	for _, kind := range []string{"runs", "mixed", "random"} {
		data := benchData(kind, 64*1024)
		b.Run(kind, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	for _, kind := range []string{"runs", "mixed", "random"} {
		data := benchData(kind, 64*1024)
		container, err := Compress(data)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(kind, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := Decompress(container); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
