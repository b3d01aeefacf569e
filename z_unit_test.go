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
	"errors"
	"testing"

	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/spec"
)

// checkerDigits 西洋棋盤 (1/2)，並把 cells 改成 '5'
func checkerDigits(cells ...[2]int) string {
	b := make([]byte, spec.Size)
	for i := range b {
		if (spec.X(i)+spec.Y(i))%2 == 0 {
			b[i] = '1'
		} else {
			b[i] = '2'
		}
	}
	for _, c := range cells {
		b[spec.Index(c[0], c[1])] = '5'
	}
	return string(b)
}

func inPalette(d byte) bool { return d >= '1' && d <= '5' }

func TestNewGameBoard(t *testing.T) {
	g := NewDefault()
	s := g.BoardString()
	if len(s) != spec.Size {
		t.Fatalf("board string len %d", len(s))
	}
	for i := 0; i < len(s); i++ {
		if !inPalette(s[i]) {
			t.Fatalf("cell %d = %c not in [1,5]", i, s[i])
		}
	}
	if string(g.AppendBoard(nil)) != s {
		t.Fatalf("AppendBoard mismatch")
	}
	n := 0
	for c := range g.Cells() {
		if c.Glyph == '?' || c.Glyph == '.' {
			t.Fatalf("unexpected glyph at %+v", c)
		}
		n++
	}
	if n != spec.Size {
		t.Fatalf("Cells yielded %d", n)
	}
}

func TestGameDeterminism(t *testing.T) {
	gs1 := &spec.GameSetting{Seed: 2024}
	gs2 := &spec.GameSetting{Seed: 2024}
	g1, err := New(gs1, nil)
	if err != nil {
		t.Fatalf("new err: %v", err)
	}
	g2, _ := New(gs2, nil)
	if g1.Seed() != 2024 {
		t.Fatalf("seed = %d, want 2024", g1.Seed())
	}
	for step := 0; step < 20; step++ {
		if g1.BoardString() != g2.BoardString() {
			t.Fatalf("boards diverged at step %d", step)
		}
		idx := g1.SelectableIndices(nil)
		if len(idx) == 0 {
			break
		}
		i := idx[step%len(idx)]
		_ = g1.Select(spec.X(i), spec.Y(i))
		_ = g2.Select(spec.X(i), spec.Y(i))
		if !g1.Updated() || !g2.Updated() {
			t.Fatalf("selecting a flagged cell must update")
		}
	}
}

func TestSelectOutOfRange(t *testing.T) {
	g := NewDefault()
	for _, xy := range [][2]int{{-1, 0}, {spec.Cols, 0}, {0, spec.Rows}, {0, -3}} {
		err := g.Select(xy[0], xy[1])
		if !errors.Is(err, errs.ErrOutOfRange) {
			t.Fatalf("select %v: expected ErrOutOfRange, got %v", xy, err)
		}
		if e, ok := errs.AsErr(err); !ok || e.ErrLv != errs.Warn {
			t.Fatalf("select %v: expected warn level", xy)
		}
		if g.Updated() {
			t.Fatalf("out of range select must not update")
		}
	}
}

func TestSelectNoop(t *testing.T) {
	g := NewDefault()
	if err := g.Load(checkerDigits()); err != nil {
		t.Fatalf("load err: %v", err)
	}
	if g.HasMoves() {
		t.Fatalf("checker board must have no moves")
	}
	before := g.BoardString()
	if err := g.Select(2, 2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if g.Updated() || g.BoardString() != before || g.Moves() != 0 {
		t.Fatalf("select on inert cell must be a no-op")
	}
}

func TestSelectClearsSquare(t *testing.T) {
	square := [][2]int{{3, 2}, {4, 2}, {3, 3}, {4, 3}}
	g := NewDefault()
	if err := g.Load(checkerDigits(square...)); err != nil {
		t.Fatalf("load err: %v", err)
	}
	for _, c := range square {
		if !g.Selectable(c[0], c[1]) {
			t.Fatalf("cell %v should be selectable", c)
		}
	}
	flagged := 0
	for c := range g.Presence() {
		if c.Glyph == '#' {
			flagged++
		}
	}
	if flagged != 4 {
		t.Fatalf("presence flagged %d cells", flagged)
	}

	before := g.BoardString()
	if err := g.Select(3, 3); err != nil {
		t.Fatalf("select err: %v", err)
	}
	if !g.Updated() || g.Moves() != 1 || g.LastCleared() != 4 {
		t.Fatalf("updated=%v moves=%d cleared=%d", g.Updated(), g.Moves(), g.LastCleared())
	}
	after := g.BoardString()
	const diff = 2
	for i := 0; i < spec.Size; i++ {
		x, y := spec.X(i), spec.Y(i)
		switch {
		case (x != 3 && x != 4) || y > 3:
			if after[i] != before[i] {
				t.Fatalf("cell (%d,%d) outside cluster columns changed", x, y)
			}
		case y >= diff:
			if after[i] != before[spec.Index(x, y-diff)] {
				t.Fatalf("cell (%d,%d) did not fall by %d", x, y, diff)
			}
		default:
			if !inPalette(after[i]) {
				t.Fatalf("refill (%d,%d) = %c", x, y, after[i])
			}
		}
	}
	// 被移除的區域只有在下落後又形成合格群組時才會被標記
	for _, c := range square {
		if !g.Selectable(c[0], c[1]) {
			continue
		}
		probe := NewDefault()
		_ = probe.Load(after)
		if !probe.Selectable(c[0], c[1]) {
			t.Fatalf("presence map inconsistent at %v", c)
		}
	}
}

func TestUpdateBoardUsesHeldCluster(t *testing.T) {
	g := NewDefault()
	if err := g.Load(checkerDigits()); err != nil {
		t.Fatalf("load err: %v", err)
	}
	// 重建標記時最後 trace 的是最後一格 (7,6)，單格群組
	before := g.BoardString()
	g.UpdateBoard()
	after := g.BoardString()
	for i := 0; i < spec.Size; i++ {
		x, y := spec.X(i), spec.Y(i)
		switch {
		case x != spec.Cols-1:
			if after[i] != before[i] {
				t.Fatalf("cell (%d,%d) changed", x, y)
			}
		case y > 0:
			if after[i] != before[spec.Index(x, y-1)] {
				t.Fatalf("cell (%d,%d) did not fall", x, y)
			}
		default:
			if !inPalette(after[i]) {
				t.Fatalf("top refill out of palette: %c", after[i])
			}
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	g := NewDefault()
	st := g.Snapshot()
	play := func() string {
		for k := 0; k < 5; k++ {
			idx := g.SelectableIndices(nil)
			if len(idx) == 0 {
				break
			}
			_ = g.Select(spec.X(idx[0]), spec.Y(idx[0]))
		}
		return g.BoardString()
	}
	first := play()
	if err := g.Restore(st); err != nil {
		t.Fatalf("restore err: %v", err)
	}
	if g.BoardString() != st.Board || g.Key() != st.Key {
		t.Fatalf("restore did not reset state")
	}
	if second := play(); second != first {
		t.Fatalf("replay after restore diverged")
	}
}
