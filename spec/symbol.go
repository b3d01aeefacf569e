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

import "strings"

// Symbol 盤面圖標。數值即為寫入盤面的 3-bit 代碼（board code）。
//
//   - Empty : 0，尚未初始化的格子
//   - Alpha ~ Epsilon : 1..5，五種可玩圖標（playable code 0..4）
//   - Invalid : 7，越界/錯誤標記，永遠不會寫入盤面
type Symbol uint8

const (
	Empty Symbol = iota
	Alpha
	Beta
	Gamma
	Delta
	Epsilon
	_
	Invalid
)

// Palette 可玩圖標數量
const Palette = 5

var symbolGlyph = [...]byte{
	Empty:   '.',
	Alpha:   'A',
	Beta:    'B',
	Gamma:   'G',
	Delta:   'D',
	Epsilon: 'E',
	6:       '?',
	Invalid: '?',
}

var symbolName = map[Symbol]string{
	Empty:   "empty",
	Alpha:   "alpha",
	Beta:    "beta",
	Gamma:   "gamma",
	Delta:   "delta",
	Epsilon: "epsilon",
	Invalid: "invalid",
}

// FromCode 由可玩代碼 (0..4) 轉為圖標，超出範圍回傳 Invalid。
func FromCode(code uint8) Symbol {
	if code >= Palette {
		return Invalid
	}
	return Alpha + Symbol(code)
}

// FromBoardCode 由盤面代碼 (0..5) 轉為圖標，其他值回傳 Invalid。
func FromBoardCode(v uint8) Symbol {
	if v > uint8(Epsilon) {
		return Invalid
	}
	return Symbol(v)
}

// Playable 是否為五種可玩圖標之一
func (s Symbol) Playable() bool {
	return s >= Alpha && s <= Epsilon
}

// Code 回傳可玩代碼 0..4；非可玩圖標回傳 -1（哨兵值）。
func (s Symbol) Code() int {
	if !s.Playable() {
		return -1
	}
	return int(s - Alpha)
}

// BoardCode 回傳寫入盤面的代碼
func (s Symbol) BoardCode() uint8 {
	return uint8(s)
}

// Glyph 顯示用字元
func (s Symbol) Glyph() byte {
	if int(s) >= len(symbolGlyph) {
		return '?'
	}
	return symbolGlyph[s]
}

func (s Symbol) String() string {
	if n, ok := symbolName[s]; ok {
		return n
	}
	return "invalid"
}

// ParseSymbol 接受名稱（alpha）或字元（A），不分大小寫。
func ParseSymbol(str string) (Symbol, bool) {
	str = strings.ToLower(strings.TrimSpace(str))
	for s, n := range symbolName {
		if s == Invalid {
			continue
		}
		if n == str {
			return s, true
		}
		if len(str) == 1 && str[0] == strings.ToLower(string(s.Glyph()))[0] {
			return s, true
		}
	}
	return Invalid, false
}
