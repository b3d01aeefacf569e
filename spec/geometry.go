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

package spec

// 盤面尺寸於編譯期固定
const (
	Cols = 8
	Rows = 7
	Size = Cols * Rows
)

// Index 座標轉線性索引 (x + y*Cols)，不做邊界檢查。
func Index(x, y int) int {
	return y*Cols + x
}

// X 線性索引轉 x 座標
func X(i int) int {
	return i % Cols
}

// Y 線性索引轉 y 座標
func Y(i int) int {
	return i / Cols
}

func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

func ValidIndex(i int) bool {
	return i >= 0 && i < Size
}

// Cell 對外輸出的單格資訊 (x, y, glyph)
type Cell struct {
	X     int
	Y     int
	Glyph byte
}
