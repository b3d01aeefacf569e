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

	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
)

// Board 為 Tracer 讀取盤面所需的最小介面
type Board interface {
	Get(i int) spec.Symbol
}

// Tracer 由種子格做 flood fill，找出四方向相連、同圖標的所有格子。
//
// 成員列表為固定長度陣列，每格存完整索引（不壓成 3 bits，避免 index >= 8 被截斷）。
// 寫入游標 n 之前為依發現順序排列的成員；讀取游標 head 指向下一個要展開鄰居的成員。
// 查詢方法只在最近一次 Trace 之後有效。
type Tracer struct {
	members    [spec.Size]uint8
	n          int // 寫入游標
	head       int // 讀取游標
	dropped    int // 列表已滿時被丟棄的次數
	minCluster int
}

// NewTracer 建立 Tracer；minCluster 為 Valid 的門檻（相異格子數）。
func NewTracer(minCluster int) *Tracer {
	if minCluster < 1 {
		minCluster = spec.DefaultMinCluster
	}
	return &Tracer{minCluster: minCluster}
}

// Trace 以 seed 為起點重新計算群組
// seed 越界會 panic（*errs.E，Cause 為 errs.ErrOutOfRange）。
func (t *Tracer) Trace(seed int, b Board) {
	if !spec.ValidIndex(seed) {
		panic(errs.OutOfRange(errs.Fatal, "seed index", seed, spec.Size))
	}
	t.clear()
	t.add(seed)

	for t.head < t.n {
		curr := int(t.members[t.head])
		sym := b.Get(curr)
		x, y := spec.X(curr), spec.Y(curr)

		// 右、下、左、上；邊緣不回繞
		if x < spec.Cols-1 {
			t.mark(curr+1, sym, b)
		}
		if y < spec.Rows-1 {
			t.mark(curr+spec.Cols, sym, b)
		}
		if x > 0 {
			t.mark(curr-1, sym, b)
		}
		if y > 0 {
			t.mark(curr-spec.Cols, sym, b)
		}
		t.head++
	}
}

// Len 已記錄的相異成員數
func (t *Tracer) Len() int { return t.n }

// At 第 k 個成員的盤面索引（發現順序）
func (t *Tracer) At(k int) int { return int(t.members[k]) }

// Dropped 列表已滿時被忽略的新增次數；依構造群組大小不會超過 spec.Size，正常為 0。
func (t *Tracer) Dropped() int { return t.dropped }

// MinCluster 可消除門檻
func (t *Tracer) MinCluster() int { return t.minCluster }

// Valid 群組是否大到可被選取
func (t *Tracer) Valid() bool {
	return t.n >= t.minCluster
}

// Contains 線性掃描是否已記錄 i
func (t *Tracer) Contains(i int) bool {
	for k := 0; k < t.n; k++ {
		if int(t.members[k]) == i {
			return true
		}
	}
	return false
}

// Members 依發現順序輸出成員索引
func (t *Tracer) Members() iter.Seq[int] {
	return func(yield func(int) bool) {
		for k := 0; k < t.n; k++ {
			if !yield(int(t.members[k])) {
				return
			}
		}
	}
}

// LeftBound 成員最小 x；無成員回傳 -1
func (t *Tracer) LeftBound() int {
	lo := -1
	for k := 0; k < t.n; k++ {
		if x := spec.X(int(t.members[k])); lo < 0 || x < lo {
			lo = x
		}
	}
	return lo
}

// RightBound 成員最大 x；無成員回傳 -1
func (t *Tracer) RightBound() int {
	hi := -1
	for k := 0; k < t.n; k++ {
		if x := spec.X(int(t.members[k])); x > hi {
			hi = x
		}
	}
	return hi
}

// ColumnTopBound col 欄中成員最小 y（最上方）；該欄無成員回傳 -1
func (t *Tracer) ColumnTopBound(col int) int {
	lo := -1
	for k := 0; k < t.n; k++ {
		i := int(t.members[k])
		if spec.X(i) != col {
			continue
		}
		if y := spec.Y(i); lo < 0 || y < lo {
			lo = y
		}
	}
	return lo
}

// ColumnBottomBound col 欄中成員最大 y（最下方）；該欄無成員回傳 -1
func (t *Tracer) ColumnBottomBound(col int) int {
	hi := -1
	for k := 0; k < t.n; k++ {
		i := int(t.members[k])
		if spec.X(i) != col {
			continue
		}
		if y := spec.Y(i); y > hi {
			hi = y
		}
	}
	return hi
}

func (t *Tracer) clear() {
	t.n = 0
	t.head = 0
	t.dropped = 0
}

func (t *Tracer) mark(next int, sym spec.Symbol, b Board) {
	if b.Get(next) == sym {
		t.add(next)
	}
}

// add 重複或已滿皆為 no-op
func (t *Tracer) add(i int) {
	if t.Contains(i) {
		return
	}
	if t.n == len(t.members) {
		t.dropped++
		return
	}
	t.members[t.n] = uint8(i)
	t.n++
}
