package gleamgrid

import (
	"encoding/binary"
	"iter"

	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
)

// BoardString 固定長度 spec.Size 的代碼字串，row-major，每格一個 ASCII 數字。
func (g *Game) BoardString() string {
	return g.board.String()
}

// AppendBoard 與 BoardString 相同，但附加到呼叫端的緩衝，不另外配置。
func (g *Game) AppendBoard(dst []byte) []byte {
	return g.board.AppendDigits(dst)
}

// Cells 依 row-major 輸出盤面 (x, y, glyph)，給呈現層直接繪製
func (g *Game) Cells() iter.Seq[spec.Cell] {
	return g.board.Cells()
}

// ForEach Cells 的 callback 形式
func (g *Game) ForEach(fn func(x, y int, glyph byte)) {
	g.board.ForEach(fn)
}

// Presence 依 row-major 輸出可消除標記 ('#' 可消除，'.' 不可)
func (g *Game) Presence() iter.Seq[spec.Cell] {
	return g.isles.Cells()
}

// SelectableIndices 將所有可選取格子的索引附加到 dst
func (g *Game) SelectableIndices(dst []int) []int {
	return g.isles.AppendIndices(dst)
}

// State 引擎狀態快照（僅存在記憶體，用於回放/比對）
type State struct {
	Board string `json:"board" yaml:"board"`
	Key   uint32 `json:"key"   yaml:"key"`
	Moves int    `json:"moves" yaml:"moves"`
}

// Snapshot 取得目前盤面、running key 與步數
func (g *Game) Snapshot() State {
	return State{Board: g.BoardString(), Key: g.gen.Key(), Moves: g.moves}
}

// Restore 還原 Snapshot 並重建 PresenceMap
func (g *Game) Restore(st State) error {
	if err := g.board.Load(st.Board); err != nil {
		return errs.Wrap(err, "restore board failed")
	}
	if err := g.gen.Restore(binary.BigEndian.AppendUint32(nil, st.Key)); err != nil {
		return errs.Wrap(err, "restore generator failed")
	}
	g.moves = st.Moves
	g.updated = false
	g.isles.Update(g.tracer, g.board)
	return nil
}

// Load 以代碼字串取代整個盤面並重建 PresenceMap。
// 每格 '1'..'5'；'0' 為空格，空格不會構成可消除群組。
func (g *Game) Load(digits string) error {
	if err := g.board.Load(digits); err != nil {
		return err
	}
	g.updated = false
	g.isles.Update(g.tracer, g.board)
	return nil
}
