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
	"os"

	"github.com/fatih/color"
)

// 開發用任務：go run ./scripts [task]
func main() {
	if len(os.Args) < 2 {
		color.Yellow("Usage: go run ./scripts [test|test-all|test-detail|sim|pgo]")
		os.Exit(1)
	}
	selectTask(os.Args[1])
}

func selectTask(task string) {
	switch task {
	case "test":
		runTest()
	case "test-all":
		runTestAll()
	case "test-detail":
		runTestDetail()
	case "sim":
		runSim()
	case "pgo":
		runPGO()
	default:
		color.Yellow("Unknown task: %s", task)
		os.Exit(1)
	}
}
