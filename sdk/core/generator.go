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

package core

import (
	"crypto/rc4"
	"encoding/binary"

	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
)

// keyStep 每次產生後 running key 的推進倍率
const keyStep uint32 = 4321

// Generator 決定性圖標產生器。
//
// 每次 Generate：
//  1. 以 running key 的 big-endian 4 bytes 作為 RC4 金鑰
//  2. 取第一個 keystream byte，mod 5 得到可玩代碼
//  3. key += 4321 * code（uint32 溢位回繞）
//
// 合約：相同初始 key 必定產生相同序列。
type Generator struct {
	key uint32
}

// NewGenerator 以指定初始 key 建立產生器
func NewGenerator(seed uint32) *Generator {
	return &Generator{key: seed}
}

// NewDefaultGenerator 以 spec.DefaultSeed 建立產生器
func NewDefaultGenerator() *Generator {
	return NewGenerator(spec.DefaultSeed)
}

// Generate 產生一個可玩圖標
func (g *Generator) Generate() spec.Symbol {
	code := g.next() % spec.Palette
	g.key += keyStep * uint32(code)
	return spec.FromCode(code)
}

// Key 目前的 running key
func (g *Generator) Key() uint32 {
	return g.key
}

// Snapshot 取得當下 running key（4 bytes big-endian）
func (g *Generator) Snapshot() ([]byte, error) {
	return binary.BigEndian.AppendUint32(make([]byte, 0, 4), g.key), nil
}

// Restore 還原 running key
func (g *Generator) Restore(data []byte) error {
	if len(data) != 4 {
		return errs.Warnf("generator snapshot must be 4 bytes, got %d", len(data))
	}
	g.key = binary.BigEndian.Uint32(data)
	return nil
}

// next 回傳以目前 key 初始化之 RC4 的第一個 keystream byte
func (g *Generator) next() uint8 {
	var key [4]byte
	binary.BigEndian.PutUint32(key[:], g.key)
	// 4-byte 金鑰必在 RC4 允許範圍 [1,256]
	c, _ := rc4.NewCipher(key[:])
	var out [1]byte
	c.XORKeyStream(out[:], out[:])
	return out[0]
}
