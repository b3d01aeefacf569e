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

package perf

import (
	"github.com/pkg/profile"
	"github.com/zintix-labs/gleamgrid/errs"
)

const pprofDir = "build/profiling" // pprof檔案寫入路徑

// Modes 支援的 profiling 模式
var Modes = []string{"cpu", "heap", "allocs"}

// RunPProf 依 mode 包住 exe 執行 profiling；mode 為空字串時直接執行。
// 輸出檔寫入 build/profiling/{cpu,mem}.pprof
//
// Usage like:
//
//	go run ./cmd/run -p cpu
func RunPProf(exe func(), mode string) error {
	return RunPProfTo(exe, mode, pprofDir)
}

// RunPProfTo 同 RunPProf，但可指定輸出目錄
func RunPProfTo(exe func(), mode string, dir string) error {
	if mode == "" {
		exe()
		return nil
	}
	opt, err := option(mode)
	if err != nil {
		return err
	}
	p := profile.Start(opt, profile.ProfilePath(dir), profile.Quiet, profile.NoShutdownHook)
	defer p.Stop()
	exe()
	return nil
}

func option(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "cpu":
		return profile.CPUProfile, nil
	case "heap":
		// in-use memory 快照
		return profile.MemProfileHeap, nil
	case "allocs":
		// 累積配置，需搭配 -alloc_space / -alloc_objects 查看
		return profile.MemProfileAllocs, nil
	}
	return nil, errs.NewWarn("unknown profile mode: " + mode)
}
