package core

import (
	"encoding/binary"
	"math/bits"

	"github.com/zintix-labs/gleamgrid/errs"
)

const pcg32Multiplier = 6364136223846793005

// PCG32 為 64-bit 狀態、32-bit 輸出的 PCG (XSH RR) 產生器。
// 模擬器以它驅動虛擬玩家的選擇；不參與盤面圖標的產生。
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 以指定 seed 建立，相同 seed 產生相同序列。
func NewPCG32(seed int64) *PCG32 {
	r := &PCG32{}
	r.init(seed, 1)
	return r
}

// Uint32 回傳非負整數uint32亂數。
func (r *PCG32) Uint32() uint32 {
	return r.next()
}

// IntN 回傳 [0,n) 的亂數；若 n <= 0 回傳 -1。
func (r *PCG32) IntN(max int) int {
	if max <= 0 {
		return -1
	}
	return int(r.below(uint32(max)))
}

// Snapshot 取得當下內部狀態 (state, inc)
func (r *PCG32) Snapshot() ([]byte, error) {
	b := make([]byte, 0, 16)
	b = binary.BigEndian.AppendUint64(b, r.state)
	b = binary.BigEndian.AppendUint64(b, r.inc)
	return b, nil
}

// Restore 還原 Snapshot 取得的狀態
func (r *PCG32) Restore(data []byte) error {
	if len(data) != 16 {
		return errs.Warnf("pcg32 snapshot must be 16 bytes, got %d", len(data))
	}
	inc := binary.BigEndian.Uint64(data[8:])
	if inc&1 == 0 {
		return errs.NewWarn("pcg32 snapshot has even increment")
	}
	r.state = binary.BigEndian.Uint64(data[:8])
	r.inc = inc
	return nil
}

// init PCG 建議的初始化流程：先用 stream 初始化一次，再加 seed，最後再 step。
func (r *PCG32) init(seed int64, seq uint64) {
	r.state = 0
	r.inc = (seq << 1) | 1
	r.next()
	r.state += uint64(seed)
	r.next()
}

func (r *PCG32) next() uint32 {
	old := r.state
	r.state = old*pcg32Multiplier + r.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return bits.RotateLeft32(xorshifted, -int(rot))
}

// below 無偏差的 [0,bound) 取樣（拒絕取樣）
func (r *PCG32) below(bound uint32) uint32 {
	threshold := (^bound + 1) % bound
	for {
		v := r.next()
		if v >= threshold {
			return v % bound
		}
	}
}
