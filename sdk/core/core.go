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

// Package core 提供盤面使用的決定性亂數來源。
//
//   - Generator：圖標產生器（RC4 + 自我推進的 running key），決定盤面演化。
//   - PCG32：模擬器中「虛擬玩家」選格子用的亂數，與盤面演化互不干擾。
package core

// Restorable 定義可快照與還原的狀態介面。
type Restorable interface {
	// Snapshot 回傳可用於還原的序列化狀態。
	Snapshot() ([]byte, error)
	// Restore 依序列化狀態還原內部狀態。
	Restore([]byte) error
}

// Picker 定義模擬器挑選格子所需的取樣能力。
type Picker interface {
	// IntN 回傳 [0,max) 的 int 亂數，若 max <= 0 回傳 -1。
	IntN(int) int
}

// Pick 從列表中隨機選取一個元素，若列表為空回傳 -1
func Pick(p Picker, src []int) int {
	if len(src) == 0 {
		return -1
	}
	return src[p.IntN(len(src))]
}
