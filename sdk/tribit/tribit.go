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

// Package tribit 提供每格 3 bits 的緊密儲存（PackedCellStore）。
//
// 整個盤面 spec.Size 格共用一個固定長度的 byte 陣列，不做任何動態配置。
// 3-bit 欄位可能跨越兩個 byte，Set/Get 會在兩側分別以位移/遮罩處理。
package tribit

import (
	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
)

const (
	// Width 每格位元數
	Width = 3
	// Mask 3-bit 遮罩
	Mask uint8 = 1<<Width - 1
	// Bytes 儲存所需 byte 數 ceil(3N/8)
	Bytes = (spec.Size*Width + 7) / 8
)

// Fields 固定長度的 3-bit 欄位陣列，零值即可使用（全部為 0）。
type Fields struct {
	data [Bytes]byte
}

// Len 欄位數
func (f *Fields) Len() int {
	return spec.Size
}

// Set 寫入 index 位置，只保留 value 的低 3 bits。
// index 越界會 panic（*errs.E，Cause 為 errs.ErrOutOfRange）。
func (f *Fields) Set(index int, value uint8) {
	check(index)
	bit := index * Width
	b := bit / 8
	off := uint(bit % 8)
	v := value & Mask

	f.data[b] &^= Mask << off
	f.data[b] |= v << off
	// 跨 byte：高位寫進下一個 byte 的低位
	if off > 8-Width {
		spill := 8 - off
		f.data[b+1] &^= Mask >> spill
		f.data[b+1] |= v >> spill
	}
}

// Get 讀取 index 位置的值 (0..7)
func (f *Fields) Get(index int) uint8 {
	check(index)
	bit := index * Width
	b := bit / 8
	off := uint(bit % 8)

	v := (f.data[b] >> off) & Mask
	if off > 8-Width {
		spill := 8 - off
		v |= (f.data[b+1] & (Mask >> spill)) << spill
	}
	return v
}

// Fill 將所有欄位設為 value
func (f *Fields) Fill(value uint8) {
	for i := 0; i < spec.Size; i++ {
		f.Set(i, value)
	}
}

// AppendDigits 每格一個 ASCII 數字 ('0'+value) 附加到 dst
func (f *Fields) AppendDigits(dst []byte) []byte {
	for i := 0; i < spec.Size; i++ {
		dst = append(dst, '0'+f.Get(i))
	}
	return dst
}

// String 固定長度 spec.Size 的數字字串，除錯/外部檢視用。
func (f *Fields) String() string {
	var buf [spec.Size]byte
	return string(f.AppendDigits(buf[:0]))
}

func check(index int) {
	if index < 0 || index >= spec.Size {
		panic(errs.OutOfRange(errs.Fatal, "tribit index", index, spec.Size))
	}
}
