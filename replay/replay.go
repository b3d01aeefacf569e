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

// Package replay 記錄並驗證一局遊戲的操作紀錄。
//
// 紀錄檔為 zstd 壓縮的 JSON：起始金鑰、群組門檻、依序的選取座標與最終盤面。
// 引擎是決定性的，因此以相同設定重播所有選取必定得到相同的最終盤面。
package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/klauspost/compress/zstd"
	"github.com/zintix-labs/gleamgrid"
	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
)

// Version 目前的紀錄檔格式版本
const Version = 1

// Move 一次選取（包含未造成消除的選取）；Tick 為 true 時代表一次外部 UpdateBoard
type Move struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Tick bool `json:"tick,omitempty"`
}

// Transcript 單局操作紀錄
type Transcript struct {
	Version    int    `json:"version"`
	GameName   string `json:"game_name"`
	Seed       uint32 `json:"seed"`
	MinCluster int    `json:"min_cluster"`
	Moves      []Move `json:"moves"`
	Final      string `json:"final"` // 最終盤面 row-major 數字字串
}

// NewTranscript 以設定建立空白紀錄；gs 必須已 Init
func NewTranscript(gs *spec.GameSetting) *Transcript {
	return &Transcript{
		Version:    Version,
		GameName:   gs.GameName,
		Seed:       gs.Seed,
		MinCluster: gs.MinCluster,
		Moves:      make([]Move, 0, 32),
	}
}

// Add 附加一次選取
func (t *Transcript) Add(x, y int) {
	t.Moves = append(t.Moves, Move{X: x, Y: y})
}

// Tick 附加一次外部 UpdateBoard
func (t *Transcript) Tick() {
	t.Moves = append(t.Moves, Move{Tick: true})
}

// Seal 寫入最終盤面
func (t *Transcript) Seal(g *gleamgrid.Game) {
	t.Final = g.BoardString()
}

// Setting 還原出對應的遊戲設定
func (t *Transcript) Setting() *spec.GameSetting {
	return &spec.GameSetting{
		GameName:   t.GameName,
		Seed:       t.Seed,
		MinCluster: t.MinCluster,
		LogMode:    "silence",
	}
}

// Encode 以 zstd 壓縮寫出 JSON 紀錄
func Encode(w io.Writer, t *Transcript) error {
	zw, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return errs.Wrap(err, "zstd writer err")
	}
	if err := json.NewEncoder(zw).Encode(t); err != nil {
		_ = zw.Close()
		return errs.Wrap(err, "encode transcript err")
	}
	if err := zw.Close(); err != nil {
		return errs.Wrap(err, "flush transcript err")
	}
	return nil
}

// Decode 讀取 zstd 壓縮的 JSON 紀錄
func Decode(r io.Reader) (*Transcript, error) {
	zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, errs.Wrap(err, "zstd reader err")
	}
	defer zr.Close()

	t := new(Transcript)
	dec := json.NewDecoder(zr)
	dec.DisallowUnknownFields()
	if err := dec.Decode(t); err != nil {
		return nil, errs.Wrap(err, "decode transcript err")
	}
	if t.Version != Version {
		return nil, errs.Warnf("unsupported transcript version %d", t.Version)
	}
	if t.Final != "" && len(t.Final) != spec.Size {
		return nil, errs.Warnf("transcript final board must be %d digits, got %d", spec.Size, len(t.Final))
	}
	return t, nil
}

// Play 以紀錄的設定建立新局並依序重播所有選取
func Play(t *Transcript, log *slog.Logger) (*gleamgrid.Game, error) {
	g, err := gleamgrid.New(t.Setting(), log)
	if err != nil {
		return nil, err
	}
	for i, m := range t.Moves {
		if m.Tick {
			g.UpdateBoard()
			continue
		}
		if err := g.Select(m.X, m.Y); err != nil {
			return nil, errs.WrapWithExtra(err, "replay move err", fmt.Sprintf("move %d (%d,%d)", i, m.X, m.Y))
		}
	}
	return g, nil
}

// Verify 重播並比對最終盤面
func Verify(t *Transcript) error {
	g, err := Play(t, nil)
	if err != nil {
		return err
	}
	if got := g.BoardString(); got != t.Final {
		return errs.Warnf("final board mismatch: got %s, want %s", got, t.Final)
	}
	return nil
}
