// Copyright 2025 Poiesic Systems
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
	"fmt"

	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/minutes/core"
)

// Row format versions, written as a leading varint. Bump when the generated
// codec layout changes.
const (
	documentRowVersion = 2
	chunkRowVersion    = 2
)

// MarshalDocument serializes an IndexedDocument to bytes.
func MarshalDocument(doc *core.IndexedDocument) []byte {
	buf := make([]byte, varint.Int.Size(documentRowVersion)+core.IndexedDocumentMUS.Size(*doc))
	n := varint.Int.Marshal(documentRowVersion, buf)
	core.IndexedDocumentMUS.Marshal(*doc, buf[n:])
	return buf
}

// UnmarshalDocument deserializes an IndexedDocument from bytes. Timestamps
// come back in UTC.
func UnmarshalDocument(data []byte) (*core.IndexedDocument, error) {
	n, err := checkVersion(data, documentRowVersion)
	if err != nil {
		return nil, err
	}
	doc, _, err := core.IndexedDocumentMUS.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: document: %w", ErrSerializationFailed, err)
	}
	doc.CreatedAt = doc.CreatedAt.UTC()
	doc.UpdatedAt = doc.UpdatedAt.UTC()
	return &doc, nil
}

// MarshalChunk serializes a ChunkRecord to bytes.
func MarshalChunk(chunk *core.ChunkRecord) []byte {
	buf := make([]byte, varint.Int.Size(chunkRowVersion)+core.ChunkRecordMUS.Size(*chunk))
	n := varint.Int.Marshal(chunkRowVersion, buf)
	core.ChunkRecordMUS.Marshal(*chunk, buf[n:])
	return buf
}

// UnmarshalChunk deserializes a ChunkRecord from bytes.
func UnmarshalChunk(data []byte) (*core.ChunkRecord, error) {
	n, err := checkVersion(data, chunkRowVersion)
	if err != nil {
		return nil, err
	}
	chunk, _, err := core.ChunkRecordMUS.Unmarshal(data[n:])
	if err != nil {
		return nil, fmt.Errorf("%w: chunk: %w", ErrSerializationFailed, err)
	}
	return &chunk, nil
}

func checkVersion(data []byte, want int) (int, error) {
	v, n, err := varint.Int.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	if v != want {
		return 0, fmt.Errorf("%w: row version %d, want %d", ErrSerializationFailed, v, want)
	}
	return n, nil
}
