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

package ops

import "github.com/zintix-labs/gleamgrid/spec"

// Grid 可原地修改的盤面
type Grid interface {
	At(i int) spec.Symbol
	Put(i int, s spec.Symbol)
}

// Collapse 單欄下落補盤 (column-wise compact)
//
// 由 yMax 往上走到 0：來源 (x, y-diff) 存在就往下複製，否則由 refill 補新圖標。
// 效果：移除 [yMax-diff+1, yMax] 這段，上方整體下落 diff 格，頂端 diff 格補新圖標。
//
//   - g: 盤面 (原地修改)
//   - refill: 新圖標來源
//   - x: 欄
//   - yMax: 被移除區段最底的列
//   - diff: 被移除的格數
func Collapse(g Grid, refill func() spec.Symbol, x int, yMax int, diff int) {
	for y := yMax; y >= 0; y-- {
		dst := spec.Index(x, y)
		if y-diff < 0 {
			g.Put(dst, refill())
			continue
		}
		g.Put(dst, g.At(spec.Index(x, y-diff)))
	}
}
