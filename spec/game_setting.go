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

import (
	"fmt"

	"github.com/zintix-labs/gleamgrid/errs"
)

const (
	// DefaultSeed 圖標產生器的預設初始金鑰
	DefaultSeed uint32 = 123456789
	// DefaultMinCluster 可消除群組的最小顆數（相異格子數）
	DefaultMinCluster = 4
)

// GameSetting 遊戲設定。盤面尺寸固定，不在此設定。
//
// Fields:
//   - GameName: 遊戲名稱（觀測/日誌用）
//   - Seed: 圖標產生器初始金鑰；0 代表使用 DefaultSeed
//   - MinCluster: 可消除群組的最小顆數；0 代表使用 DefaultMinCluster
//   - LogMode: dev | prod | silence
type GameSetting struct {
	GameName   string `yaml:"game_name"   json:"game_name"`
	Seed       uint32 `yaml:"seed"        json:"seed"`
	MinCluster int    `yaml:"min_cluster" json:"min_cluster"`
	LogMode    string `yaml:"log_mode"    json:"log_mode"`
	initFlag   bool
}

// Default 回傳全部採預設值的設定
func Default() *GameSetting {
	gs := &GameSetting{}
	_ = gs.Init()
	return gs
}

// Init 補上預設值並檢查不合法的設定
func (gs *GameSetting) Init() error {
	if gs.initFlag {
		return nil
	}
	if gs.GameName == "" {
		gs.GameName = "gleamgrid"
	}
	if gs.Seed == 0 {
		gs.Seed = DefaultSeed
	}
	if gs.MinCluster == 0 {
		gs.MinCluster = DefaultMinCluster
	}
	if gs.MinCluster < 2 || gs.MinCluster > Size {
		return errs.NewFatal(fmt.Sprintf("min_cluster must be in [2,%d], got %d", Size, gs.MinCluster))
	}
	switch gs.LogMode {
	case "":
		gs.LogMode = "dev"
	case "dev", "prod", "silence":
	default:
		return errs.NewFatal(fmt.Sprintf("unknown log_mode %q", gs.LogMode))
	}
	gs.initFlag = true
	return nil
}
