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

// Package gleamgrid 是固定尺寸消除盤面的狀態機。
//
// Game 組合了三個元件並擁有它們的全部狀態：
//  1. Board：3-bit 緊密儲存的可見盤面，以及決定性的圖標產生器（RC4 running key）。
//  2. Tracer：由單一格子出發的 flood fill，記錄群組成員與邊界。
//  3. PresenceMap：全盤可消除群組的標記，每次盤面變動後整張重建。
//
// 資料流：Select → PresenceMap 判斷是否可選 → Tracer 重算群組 → Board.Update 逐欄下落補盤 → PresenceMap 重建。
//
// 並發語意：Game 不是併發安全的，也不需要鎖；一個 Game 只應由一個 goroutine 操作。
// 模擬器以「每個 worker 一個 Game」的方式平行執行。
package gleamgrid

import (
	"log/slog"

	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/logger"
	"github.com/zintix-labs/gleamgrid/sdk/board"
	"github.com/zintix-labs/gleamgrid/sdk/calc"
	"github.com/zintix-labs/gleamgrid/sdk/core"
	"github.com/zintix-labs/gleamgrid/spec"
)

// Game 盤面引擎（呼叫端持有，非全域單例）
type Game struct {
	gs          *spec.GameSetting
	log         *slog.Logger
	gen         *core.Generator
	board       *board.Board
	tracer      *calc.Tracer
	isles       *calc.PresenceMap
	updated     bool // 最近一次 Select 是否改變了盤面
	moves       int  // 成功消除次數
	lastCleared int  // 最近一次消除的群組大小
}

// New 依設定建立 Game，完成初始亂數盤面與可消除標記。
//   - gs 為 nil 時使用 spec.Default()
//   - log 為 nil 時使用靜默 logger
func New(gs *spec.GameSetting, log *slog.Logger) (*Game, error) {
	if gs == nil {
		gs = spec.Default()
	}
	if err := gs.Init(); err != nil {
		return nil, errs.Wrap(err, "new game failed")
	}
	if log == nil {
		log = logger.Silent()
	}
	g := &Game{
		gs:     gs,
		log:    log.With(slog.String("game", gs.GameName)),
		gen:    core.NewGenerator(gs.Seed),
		tracer: calc.NewTracer(gs.MinCluster),
		isles:  calc.NewPresenceMap(),
	}
	g.board = board.New(g.gen)
	g.board.Randomize()
	g.isles.Update(g.tracer, g.board)
	g.log.Debug("game ready", slog.Uint64("seed", uint64(gs.Seed)), slog.Int("selectable", g.isles.Count()))
	return g, nil
}

// NewDefault 以預設設定建立 Game
func NewDefault() *Game {
	g, _ := New(nil, nil)
	return g
}

// Select 選取 (x, y)。
//
// 座標越界回傳 Warn 等級錯誤（errors.Is(err, errs.ErrOutOfRange)）。
// 該格不屬於可消除群組時為 no-op，Updated() 維持 false；
// 否則移除該群組、逐欄下落補盤、重建 PresenceMap，Updated() 為 true。
func (g *Game) Select(x, y int) error {
	g.updated = false
	if x < 0 || x >= spec.Cols {
		return errs.OutOfRange(errs.Warn, "x", x, spec.Cols)
	}
	if y < 0 || y >= spec.Rows {
		return errs.OutOfRange(errs.Warn, "y", y, spec.Rows)
	}
	i := spec.Index(x, y)
	if !g.isles.IslandAt(i) {
		g.log.Debug("select ignored", slog.Int("x", x), slog.Int("y", y))
		return nil
	}
	g.tracer.Trace(i, g.board)
	g.lastCleared = g.tracer.Len()
	g.board.Update(g.tracer)
	g.isles.Update(g.tracer, g.board)
	g.updated = true
	g.moves++
	g.log.Debug("cluster cleared",
		slog.Int("x", x), slog.Int("y", y),
		slog.Int("size", g.lastCleared),
		slog.Int("selectable", g.isles.Count()))
	return nil
}

// UpdateBoard 以 Tracer 目前持有的群組狀態執行下落補盤（外部 tick 驅動），之後重建 PresenceMap。
// Tracer 沒有成員時盤面不變。
func (g *Game) UpdateBoard() {
	g.board.Update(g.tracer)
	g.isles.Update(g.tracer, g.board)
}

// Updated 最近一次 Select 是否改變了盤面
func (g *Game) Updated() bool { return g.updated }

// HasMoves 盤面上是否還有可消除群組。引擎本身不據此結束遊戲。
func (g *Game) HasMoves() bool { return g.isles.Exists() }

// Selectable (x, y) 是否可被選取；越界回傳 false。
func (g *Game) Selectable(x, y int) bool {
	return spec.InBounds(x, y) && g.isles.IslandAt(spec.Index(x, y))
}

// Moves 成功消除次數
func (g *Game) Moves() int { return g.moves }

// LastCleared 最近一次消除的格子數
func (g *Game) LastCleared() int { return g.lastCleared }

// Setting 目前使用的設定
func (g *Game) Setting() *spec.GameSetting { return g.gs }

// Seed 建立時使用的初始金鑰
func (g *Game) Seed() uint32 { return g.gs.Seed }

// Key 圖標產生器目前的 running key
func (g *Game) Key() uint32 { return g.gen.Key() }
