// Copyright 2025 Zintix Labs
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

package calc

import (
	"iter"

	"github.com/zintix-labs/gleamgrid/sdk/tribit"
	"github.com/zintix-labs/gleamgrid/spec"
)

const (
	absent  uint8 = 0
	present uint8 = 1
)

// PresenceGlyph 輸出時代表「可消除」的字元
const PresenceGlyph = '#'

// PresenceMap 標記每一格是否屬於目前可消除的群組。每次盤面變動後整張重建。
type PresenceMap struct {
	flags tribit.Fields
	count int
}

func NewPresenceMap() *PresenceMap {
	return &PresenceMap{}
}

// Update 清空後，從每一個尚未被標記的可玩格子執行 Trace；群組 Valid 就標記全部成員。
// 結束時 t 保留最後一次 Trace 的結果。
func (m *PresenceMap) Update(t *Tracer, b Board) {
	m.flags.Fill(absent)
	m.count = 0
	for i := 0; i < spec.Size; i++ {
		if m.IslandAt(i) || !b.Get(i).Playable() {
			continue
		}
		t.Trace(i, b)
		if !t.Valid() {
			continue
		}
		for k := 0; k < t.Len(); k++ {
			if j := t.At(k); m.flags.Get(j) != present {
				m.flags.Set(j, present)
				m.count++
			}
		}
	}
}

// IslandAt index 是否屬於可消除群組
func (m *PresenceMap) IslandAt(i int) bool {
	return m.flags.Get(i) == present
}

// Exists 盤面上是否還有任何可消除群組（無步可走偵測）
func (m *PresenceMap) Exists() bool {
	return m.count > 0
}

// Count 被標記的格子數
func (m *PresenceMap) Count() int {
	return m.count
}

// Cells 依 row-major 輸出 (x, y, glyph)，可消除為 '#'，其餘為 '.'
func (m *PresenceMap) Cells() iter.Seq[spec.Cell] {
	return func(yield func(spec.Cell) bool) {
		for i := 0; i < spec.Size; i++ {
			g := spec.Empty.Glyph()
			if m.IslandAt(i) {
				g = PresenceGlyph
			}
			if !yield(spec.Cell{X: spec.X(i), Y: spec.Y(i), Glyph: g}) {
				return
			}
		}
	}
}

// AppendIndices 將所有被標記的索引附加到 dst（模擬器挑格子用）
func (m *PresenceMap) AppendIndices(dst []int) []int {
	for i := 0; i < spec.Size; i++ {
		if m.IslandAt(i) {
			dst = append(dst, i)
		}
	}
	return dst
}
