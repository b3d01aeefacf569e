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

package recorder

import (
	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
	"github.com/zintix-labs/gleamgrid/stats"
)

// GameRecorder 遊戲紀錄員
//
// 每個 worker 持有一個，只記錄 int 計數；全部完成後 Merge 再由 Done 產出統計報表。
type GameRecorder struct {
	GameName     string
	MinCluster   int
	Games        int   // 完成局數
	Moves        int   // 成功消除次數
	Cleared      int   // 消除格子總數
	DeadBoards   int   // 在步數用完前就無步可走的局數
	SizeCollect  []int // SizeCollect[n] = 大小為 n 的消除次數
	MovesPerGame []int // 每局的消除次數
	curMoves     int
}

func NewGameRecorder(name string, minCluster int) (*GameRecorder, error) {
	if minCluster < 1 || minCluster > spec.Size {
		return nil, errs.Fatalf("min cluster err %d", minCluster)
	}
	return &GameRecorder{
		GameName:     name,
		MinCluster:   minCluster,
		SizeCollect:  make([]int, spec.Size+1),
		MovesPerGame: make([]int, 0, 64),
	}, nil
}

// RecordMove 紀錄一次成功消除
func (r *GameRecorder) RecordMove(cleared int) {
	if cleared < 0 || cleared > spec.Size {
		return
	}
	r.Moves++
	r.Cleared += cleared
	r.SizeCollect[cleared]++
	r.curMoves++
}

// EndGame 結束目前這一局；dead 表示因為無步可走而提前結束
func (r *GameRecorder) EndGame(dead bool) {
	r.Games++
	if dead {
		r.DeadBoards++
	}
	r.MovesPerGame = append(r.MovesPerGame, r.curMoves)
	r.curMoves = 0
}

// Merge 合併多個紀錄員；名稱或門檻不同視為錯誤
func Merge(rs []*GameRecorder) (*GameRecorder, error) {
	if len(rs) == 0 {
		return nil, errs.NewFatal("merge game record err : empty input")
	}
	r0 := rs[0]
	m, err := NewGameRecorder(r0.GameName, r0.MinCluster)
	if err != nil {
		return nil, err
	}
	for _, v := range rs {
		if v.GameName != r0.GameName {
			return nil, errs.NewFatal("merge game record err : different game name")
		}
		if v.MinCluster != r0.MinCluster {
			return nil, errs.NewFatal("merge game record err : different min cluster")
		}
		m.Games += v.Games
		m.Moves += v.Moves
		m.Cleared += v.Cleared
		m.DeadBoards += v.DeadBoards
		for i, c := range v.SizeCollect {
			m.SizeCollect[i] += c
		}
		m.MovesPerGame = append(m.MovesPerGame, v.MovesPerGame...)
	}
	return m, nil
}

// Done 產出統計報表（已呼叫 StatReport.Done）
func (r *GameRecorder) Done(seed int64) *stats.StatReport {
	maxSize := 0
	for n, c := range r.SizeCollect {
		if c > 0 {
			maxSize = n
		}
	}
	// 分布只列出門檻以上到最大值
	lo := r.MinCluster
	hi := max(maxSize, lo)
	sizes := make([]int, 0, hi-lo+1)
	counts := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		sizes = append(sizes, n)
		counts = append(counts, r.SizeCollect[n])
	}

	report := &stats.StatReport{
		Summary: &stats.SummaryReport{
			GameName:    r.GameName,
			Seed:        seed,
			MinCluster:  r.MinCluster,
			Games:       r.Games,
			Moves:       r.Moves,
			Cleared:     r.Cleared,
			DeadBoards:  r.DeadBoards,
			MaxCluster:  maxSize,
			MedianMoves: stats.MedianInt(r.MovesPerGame),
		},
		Dist: &stats.DistReport{
			ClusterSize:  sizes,
			ClusterCount: counts,
		},
	}
	report.Done()
	return report
}
