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

// Package board 持有可見盤面：每格一個 3-bit 圖標代碼（1..5），以及補盤用的圖標產生器。
package board

import (
	"iter"

	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/sdk/core"
	"github.com/zintix-labs/gleamgrid/sdk/ops"
	"github.com/zintix-labs/gleamgrid/sdk/tribit"
	"github.com/zintix-labs/gleamgrid/spec"
)

// Cluster 為 Update 所需的群組邊界查詢（由 calc.Tracer 實作）。
// 邊界不存在時回傳 -1。
type Cluster interface {
	Len() int
	LeftBound() int
	RightBound() int
	ColumnTopBound(col int) int
	ColumnBottomBound(col int) int
}

// Board 盤面。建立後尺寸不變，整個生命週期原地修改。
type Board struct {
	cells tribit.Fields
	gen   *core.Generator
}

// New 建立空盤面（全部 spec.Empty），gen 為補盤來源。
func New(gen *core.Generator) *Board {
	if gen == nil {
		gen = core.NewDefaultGenerator()
	}
	return &Board{gen: gen}
}

// Randomize 每格改為 ((目前代碼 + 產生代碼) mod 5) + 1，結果必在 [1,5]。
func (b *Board) Randomize() {
	for i := 0; i < spec.Size; i++ {
		cur := b.cells.Get(i)
		code := uint8(b.gen.Generate().Code())
		b.cells.Set(i, (cur+code)%spec.Palette+1)
	}
}

// Get 讀取 index 的圖標
func (b *Board) Get(i int) spec.Symbol {
	return spec.FromBoardCode(b.cells.Get(i))
}

// Set 寫入 index 的圖標；Invalid 不可寫入盤面。
func (b *Board) Set(i int, s spec.Symbol) {
	if s == spec.Invalid {
		panic(errs.NewFatal("invalid symbol can not be written to board"))
	}
	b.cells.Set(i, s.BoardCode())
}

// At / Put 滿足 ops.Grid
func (b *Board) At(i int) spec.Symbol     { return b.Get(i) }
func (b *Board) Put(i int, s spec.Symbol) { b.Set(i, s) }

// Update 移除群組並讓受影響的每一欄下落補盤。
//
// 對 LeftBound..RightBound 每一欄：yMin 為該欄最上方成員、yMax 為最下方成員，
// diff = yMax - yMin + 1，再呼叫 OverwriteColumn(col, yMax, diff)。
func (b *Board) Update(c Cluster) {
	if c.Len() == 0 {
		return
	}
	for col := c.LeftBound(); col <= c.RightBound(); col++ {
		yMin := c.ColumnTopBound(col)
		yMax := c.ColumnBottomBound(col)
		if yMin < 0 || yMax < 0 {
			continue
		}
		b.OverwriteColumn(col, yMax, yMax-yMin+1)
	}
}

// OverwriteColumn 見 ops.Collapse
func (b *Board) OverwriteColumn(x int, yMax int, diff int) {
	if !spec.InBounds(x, yMax) {
		panic(errs.OutOfRange(errs.Fatal, "column", x, spec.Cols))
	}
	ops.Collapse(b, b.gen.Generate, x, yMax, diff)
}

// Cells 依 row-major 順序逐格輸出 (x, y, glyph)。可重複迭代，不保留任何引用。
func (b *Board) Cells() iter.Seq[spec.Cell] {
	return func(yield func(spec.Cell) bool) {
		for i := 0; i < spec.Size; i++ {
			c := spec.Cell{X: spec.X(i), Y: spec.Y(i), Glyph: b.Get(i).Glyph()}
			if !yield(c) {
				return
			}
		}
	}
}

// ForEach Cells 的 callback 形式
func (b *Board) ForEach(fn func(x, y int, glyph byte)) {
	for c := range b.Cells() {
		fn(c.X, c.Y, c.Glyph)
	}
}

// AppendDigits 每格一個代碼數字附加到 dst
func (b *Board) AppendDigits(dst []byte) []byte {
	return b.cells.AppendDigits(dst)
}

// String 長度固定為 spec.Size 的代碼字串 (row-major)
func (b *Board) String() string {
	return b.cells.String()
}

// Load 由代碼字串還原盤面（測試與重播用），每格必須是 '0'..'5'。
func (b *Board) Load(digits string) error {
	if len(digits) != spec.Size {
		return errs.Warnf("board digits length %d, want %d", len(digits), spec.Size)
	}
	for i := 0; i < spec.Size; i++ {
		d := digits[i]
		if d < '0' || d > '0'+byte(spec.Epsilon) {
			return errs.Warnf("board digit %q at %d out of range", d, i)
		}
	}
	for i := 0; i < spec.Size; i++ {
		b.cells.Set(i, digits[i]-'0')
	}
	return nil
}
