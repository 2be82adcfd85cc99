package cache

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// entry is the persisted form of a cached embedding.
type entry struct {
	storedAt int64 // unix milliseconds
	vector   []float32
}

var vectorSer = ord.NewSliceSer[float32](raw.Float32)

// marshalEntry serializes an entry to bytes.
func marshalEntry(e entry) []byte {
	size := varint.Int64.Size(e.storedAt) + vectorSer.Size(e.vector)
	bs := make([]byte, size)
	n := varint.Int64.Marshal(e.storedAt, bs)
	vectorSer.Marshal(e.vector, bs[n:])
	return bs
}

// unmarshalEntry deserializes an entry from bytes.
func unmarshalEntry(bs []byte) (entry, error) {
	storedAt, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return entry{}, fmt.Errorf("cache entry timestamp: %w", err)
	}
	vector, _, err := vectorSer.Unmarshal(bs[n:])
	if err != nil {
		return entry{}, fmt.Errorf("cache entry vector: %w", err)
	}
	return entry{storedAt: storedAt, vector: vector}, nil
}
