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

package gleamgrid

import (
	"crypto/rand"
	"io"
	"log/slog"
	"math"
	"math/big"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/logger"
	"github.com/zintix-labs/gleamgrid/recorder"
	"github.com/zintix-labs/gleamgrid/sdk/core"
	"github.com/zintix-labs/gleamgrid/spec"
	"github.com/zintix-labs/gleamgrid/stats"
)

// Simulator 以隨機玩家大量自動遊玩，統計群組大小與死盤比例。
//
// 每一局的盤面金鑰與玩家種子都在派工前依序由 SeedMaker 產生，
// 因此同一個 seed 下結果與 worker 數量、排程順序無關。
type Simulator struct {
	gs        *spec.GameSetting
	log       *slog.Logger
	initSeed  int64
	seedmaker *core.SeedMaker
}

// simJob 單局任務
type simJob struct {
	key    uint32 // 盤面產生器金鑰
	player int64  // 玩家選擇種子
}

// NewSimulator 建立模擬器；seed < 0 時以 crypto/rand 取得隨機種子
func NewSimulator(gs *spec.GameSetting, log *slog.Logger, seed int64) (*Simulator, error) {
	if gs == nil {
		gs = spec.Default()
	}
	if err := gs.Init(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Silent()
	}
	if seed < 0 {
		n, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
		if err != nil {
			return nil, errs.Wrap(err, "simulator seed err")
		}
		seed = n.Int64()
	}
	return &Simulator{
		gs:        gs,
		log:       log,
		initSeed:  seed,
		seedmaker: core.NewSeedMaker(seed),
	}, nil
}

// Seed 初始種子
func (s *Simulator) Seed() int64 { return s.initSeed }

// Sim 以 workers 個 goroutine 平行跑 games 局，每局最多 moves 次消除。
// 回傳合併後的統計報表與用時。
func (s *Simulator) Sim(games int, moves int, workers int, showpb bool) (*stats.StatReport, time.Duration, error) {
	if games < 1 {
		return nil, 0, errs.NewWarn("games must > 0")
	}
	if moves < 1 {
		return nil, 0, errs.NewWarn("moves must > 0")
	}
	if workers < 1 {
		return nil, 0, errs.NewWarn("workers must > 0")
	}
	workers = min(workers, games)

	// 先依序派生所有種子，確保結果可重現
	plan := make([]simJob, games)
	for i := range plan {
		plan[i] = simJob{key: deriveKey(s.seedmaker.Next()), player: s.seedmaker.Next()}
	}

	rBuf := make([]*recorder.GameRecorder, workers)
	for i := range rBuf {
		r, err := recorder.NewGameRecorder(s.gs.GameName, s.gs.MinCluster)
		if err != nil {
			return nil, 0, err
		}
		rBuf[i] = r
	}
	eBuf := make([]error, workers)

	jobs := make(chan simJob, 2048)
	wg := new(sync.WaitGroup)
	wg.Add(workers)

	bar := pb.StartNew(games)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	s.log.Debug("simulation start", "games", games, "moves", moves, "workers", workers, "seed", s.initSeed)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for j := range jobs {
				if eBuf[w] != nil {
					continue
				}
				if err := s.play(j, moves, rBuf[w]); err != nil {
					eBuf[w] = err
				}
				bar.Increment()
			}
		}(w)
	}
	for _, j := range plan {
		jobs <- j
	}
	close(jobs)
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	for _, err := range eBuf {
		if err != nil {
			return nil, used, err
		}
	}
	merged, err := recorder.Merge(rBuf)
	if err != nil {
		return nil, used, err
	}
	s.log.Debug("simulation done", "games", merged.Games, "moves", merged.Moves, "used", used)
	return merged.Done(s.initSeed), used, nil
}

// play 單局：玩家每一步由目前可消除的格子中均勻挑一個
func (s *Simulator) play(j simJob, moves int, r *recorder.GameRecorder) error {
	cfg := *s.gs
	cfg.Seed = j.key
	g, err := New(&cfg, logger.Silent())
	if err != nil {
		return err
	}
	player := core.NewPCG32(j.player)
	buf := make([]int, 0, spec.Size)
	for range moves {
		buf = g.SelectableIndices(buf[:0])
		i := core.Pick(player, buf)
		if i < 0 {
			r.EndGame(true)
			return nil
		}
		if err := g.Select(spec.X(i), spec.Y(i)); err != nil {
			return err
		}
		if !g.Updated() {
			return errs.Fatalf("selectable cell %d did not clear", i)
		}
		r.RecordMove(g.LastCleared())
	}
	r.EndGame(false)
	return nil
}

// deriveKey 取 63-bit 種子的低 32 位作為盤面金鑰；0 保留給預設值
func deriveKey(seed int64) uint32 {
	k := uint32(seed) ^ uint32(seed>>32)
	if k == 0 {
		k = spec.DefaultSeed
	}
	return k
}
