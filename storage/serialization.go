// Copyright 2025 Pantry Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/pantrylabs/foodsearch/core"
)

var vectorSer = ord.NewSliceSer[float32](varint.Float32)

// MarshalVectorEntry serializes a VectorEntry to bytes.
func MarshalVectorEntry(entry *core.VectorEntry) []byte {
	createdAt := entry.CreatedAt.UnixMicro()
	size := ord.String.Size(entry.Model) +
		vectorSer.Size(entry.Vector) +
		varint.Int64.Size(createdAt)

	buf := make([]byte, size)
	n := ord.String.Marshal(entry.Model, buf)
	n += vectorSer.Marshal(entry.Vector, buf[n:])
	varint.Int64.Marshal(createdAt, buf[n:])
	return buf
}

// UnmarshalVectorEntry deserializes a VectorEntry from bytes.
func UnmarshalVectorEntry(data []byte) (*core.VectorEntry, error) {
	model, n, err := ord.String.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	vector, m, err := vectorSer.Unmarshal(data[n:])
	if err != nil {
		return nil, err
	}

	createdAt, _, err := varint.Int64.Unmarshal(data[n+m:])
	if err != nil {
		return nil, err
	}

	return &core.VectorEntry{
		Model:     model,
		Vector:    vector,
		CreatedAt: time.UnixMicro(createdAt).UTC(),
	}, nil
}
