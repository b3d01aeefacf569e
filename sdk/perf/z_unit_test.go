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
	"os"
	"path/filepath"
	"testing"
)

func TestRunPProfEmptyModeRunsOnce(t *testing.T) {
	n := 0
	if err := RunPProfTo(func() { n++ }, "", t.TempDir()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 1 {
		t.Fatalf("exe ran %d times", n)
	}
}

func TestRunPProfUnknownMode(t *testing.T) {
	ran := false
	if err := RunPProfTo(func() { ran = true }, "gpu", t.TempDir()); err == nil {
		t.Fatalf("unknown mode should fail")
	}
	if ran {
		t.Fatalf("exe should not run on unknown mode")
	}
}

func TestRunPProfCPUWritesFile(t *testing.T) {
	dir := t.TempDir()
	if err := RunPProfTo(func() {}, "cpu", dir); err != nil {
		t.Fatalf("cpu profile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cpu.pprof")); err != nil {
		t.Fatalf("cpu.pprof not written: %v", err)
	}
}
