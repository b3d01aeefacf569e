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

package main

import (
	"bufio"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
)

// lineFilter 回傳 false 表示該行不輸出
type lineFilter func(line string) bool

// runTest 只顯示每個套件的 ok / FAIL 行
func runTest() {
	color.Green("running tests")
	cleanCache(false)
	stream("tests", exec.Command("go", "test", "./...", "-cover", "-count=1"), func(line string) bool {
		return strings.HasPrefix(line, "ok") || strings.HasPrefix(line, "FAIL") ||
			strings.Contains(line, "build failed") || strings.Contains(line, "setup failed")
	})
}

// runTestAll 全部套件測試並顯示覆蓋率
func runTestAll() {
	color.Green("running tests (all with coverage)")
	cleanCache(true)
	passthrough("tests (with coverage)", exec.Command("go", "test", "./...", "-cover"))
}

// runTestDetail verbose 測試，略過沒有測試檔的套件
func runTestDetail() {
	color.Green("running tests (detail)")
	cleanCache(true)
	stream("tests (detail)", exec.Command("go", "test", "./...", "-v", "-count=1"), func(line string) bool {
		return !strings.Contains(line, "[no test files]")
	})
}

// runSim 固定種子的小型模擬，用於快速確認統計輸出
func runSim() {
	color.Green("running simulation smoke (seed 1)")
	passthrough("simulation", exec.Command("go", "run", "./cmd/run",
		"-games", "20000", "-moves", "50", "-worker", "4", "-seed", "1"))
}

// runPGO 以 CPU profile 跑一次模擬，輸出可作為 PGO 的 default.pgo
func runPGO() {
	color.Green("collecting cpu profile into build/profiling")
	passthrough("pgo", exec.Command("go", "run", "./cmd/run",
		"-games", "200000", "-moves", "50", "-worker", "4", "-seed", "1", "-p", "cpu"))
}

func cleanCache(strict bool) {
	c := exec.Command("go", "clean", "-testcache")
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		color.Red("go clean -testcache failed: %v", err)
		if strict {
			os.Exit(1)
		}
	}
}

func passthrough(name string, cmd *exec.Cmd) {
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		color.Red("\n%s finished with errors", name)
		os.Exit(1)
	}
}

// stream 合併 stdout/stderr，逐行過濾並依 ok / FAIL 上色
func stream(name string, cmd *exec.Cmd, keep lineFilter) {
	out, err := cmd.StdoutPipe()
	if err != nil {
		color.Red("failed to get stdout pipe: %v", err)
		os.Exit(1)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		color.Red("error starting %s: %v", name, err)
		os.Exit(1)
	}

	sc := bufio.NewScanner(out)
	for sc.Scan() {
		line := sc.Text()
		if !keep(line) {
			continue
		}
		switch {
		case strings.HasPrefix(line, "ok"):
			color.Green("%s", line)
		case strings.HasPrefix(line, "FAIL"), strings.Contains(line, "failed"):
			color.Red("%s", line)
		default:
			color.White("%s", line)
		}
	}
	if err := sc.Err(); err != nil {
		color.Red("scanner error: %v", err)
	}
	if err := cmd.Wait(); err != nil {
		color.Red("\n%s finished with errors", name)
		os.Exit(1)
	}
}
