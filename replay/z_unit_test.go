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

package replay

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/zintix-labs/gleamgrid"
	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
)

// recordGame 每步選第一個可消除的格子，中間穿插一次 tick 與一次無效選取
func recordGame(t *testing.T, steps int) *Transcript {
	t.Helper()
	gs := spec.Default()
	g, err := gleamgrid.New(gs, nil)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	tr := NewTranscript(gs)
	buf := make([]int, 0, spec.Size)
	for s := 0; s < steps; s++ {
		buf = g.SelectableIndices(buf[:0])
		if len(buf) == 0 {
			break
		}
		x, y := spec.X(buf[0]), spec.Y(buf[0])
		if err := g.Select(x, y); err != nil {
			t.Fatalf("select: %v", err)
		}
		tr.Add(x, y)
		if s == 1 {
			g.UpdateBoard()
			tr.Tick()
		}
	}
	// 不可消除的格子也要被記錄
	for i := 0; i < spec.Size; i++ {
		if !g.Selectable(spec.X(i), spec.Y(i)) {
			_ = g.Select(spec.X(i), spec.Y(i))
			tr.Add(spec.X(i), spec.Y(i))
			break
		}
	}
	tr.Seal(g)
	return tr
}

func TestEncodeDecodeVerify(t *testing.T) {
	tr := recordGame(t, 6)
	var buf bytes.Buffer
	if err := Encode(&buf, tr); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Seed != tr.Seed || got.MinCluster != tr.MinCluster || len(got.Moves) != len(tr.Moves) || got.Final != tr.Final {
		t.Fatalf("decoded transcript differs: %+v vs %+v", got, tr)
	}
	if err := Verify(got); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyDetectsTamperedFinal(t *testing.T) {
	tr := recordGame(t, 3)
	b := []byte(tr.Final)
	if b[0] == '1' {
		b[0] = '2'
	} else {
		b[0] = '1'
	}
	tr.Final = string(b)
	if err := Verify(tr); err == nil {
		t.Fatalf("tampered final board should fail")
	}
}

func TestPlayRejectsOutOfRangeMove(t *testing.T) {
	tr := NewTranscript(spec.Default())
	tr.Add(8, 0)
	_, err := Play(tr, nil)
	if err == nil {
		t.Fatalf("out of range move should fail")
	}
	if !errors.Is(err, errs.ErrOutOfRange) {
		t.Fatalf("want ErrOutOfRange, got %v", err)
	}
}

func TestPlayRejectsBadThreshold(t *testing.T) {
	tr := NewTranscript(spec.Default())
	tr.MinCluster = 1
	if _, err := Play(tr, nil); err == nil {
		t.Fatalf("min cluster 1 should fail")
	}
}

func encodeRaw(t *testing.T, raw string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	if _, err := zw.Write([]byte(raw)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return &buf
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"version":       `{"version":9,"seed":1,"min_cluster":4,"moves":[],"final":""}`,
		"unknown field": `{"version":1,"seed":1,"min_cluster":4,"moves":[],"final":"","extra":1}`,
		"short final":   `{"version":1,"seed":1,"min_cluster":4,"moves":[],"final":"123"}`,
	}
	for name, raw := range cases {
		if _, err := Decode(encodeRaw(t, raw)); err == nil {
			t.Fatalf("%s: decode should fail", name)
		}
	}
	if _, err := Decode(bytes.NewBufferString("not zstd at all")); err == nil {
		t.Fatalf("plain text should fail")
	}
}
