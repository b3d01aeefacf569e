// play 以標準輸入逐行操作一局遊戲。
//
// 指令：
//
//	x y    選取 (x, y)
//	tick   以目前 Tracer 狀態執行一次 UpdateBoard
//	show   重新顯示盤面
//	quit   結束（同 EOF）
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/zintix-labs/gleamgrid"
	"github.com/zintix-labs/gleamgrid/configs"
	"github.com/zintix-labs/gleamgrid/errs"
	"github.com/zintix-labs/gleamgrid/logger"
	"github.com/zintix-labs/gleamgrid/replay"
	"github.com/zintix-labs/gleamgrid/spec"
)

func main() {
	conf := flag.String("config", "", "game setting file (yaml/json); empty uses embedded default")
	seed := flag.Uint64("seed", 0, "override generator key (0 keeps config)")
	mode := flag.String("log-mode", "", "override log mode: dev, prod, silence")
	record := flag.String("record", "", "write a zstd transcript to this path on exit")
	flag.Parse()

	gs, err := configs.Load(*conf)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		gs.Seed = uint32(*seed)
	}
	if *mode != "" {
		gs.LogMode = *mode
	}
	lm, ok := logger.ParseMode(gs.LogMode)
	if !ok {
		log.Fatalf("unknown log mode %q", gs.LogMode)
	}

	g, err := gleamgrid.New(gs, logger.NewDefaultLogger(lm))
	if err != nil {
		log.Fatal(err)
	}
	tr := replay.NewTranscript(gs)

	run(g, tr, os.Stdin, os.Stdout)

	if *record != "" {
		tr.Seal(g)
		if err := writeTranscript(*record, tr); err != nil {
			log.Fatal(err)
		}
	}
}

func run(g *gleamgrid.Game, tr *replay.Transcript, in io.Reader, out io.Writer) {
	draw(out, g)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "q":
			return
		case "show":
			draw(out, g)
			continue
		case "tick":
			g.UpdateBoard()
			tr.Tick()
			draw(out, g)
			continue
		}
		x, y, err := parseXY(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := g.Select(x, y); err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		tr.Add(x, y)
		if g.Updated() {
			fmt.Fprintf(out, "cleared %d cells (moves %d)\n", g.LastCleared(), g.Moves())
		} else {
			fmt.Fprintln(out, "nothing to clear there")
		}
		draw(out, g)
		if !g.HasMoves() {
			fmt.Fprintln(out, "no clusters left")
		}
	}
}

func parseXY(line string) (int, int, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return 0, 0, errs.NewWarn("want: x y | tick | show | quit")
	}
	x, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, errs.Wrap(err, "bad x")
	}
	y, err := strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, errs.Wrap(err, "bad y")
	}
	return x, y, nil
}

// draw 左側為盤面，右側為可消除標記
func draw(out io.Writer, g *gleamgrid.Game) {
	var board, isles [spec.Rows][spec.Cols]byte
	for c := range g.Cells() {
		board[c.Y][c.X] = c.Glyph
	}
	for c := range g.Presence() {
		isles[c.Y][c.X] = c.Glyph
	}
	var sb strings.Builder
	sb.WriteString("   ")
	for x := 0; x < spec.Cols; x++ {
		sb.WriteByte('0' + byte(x))
	}
	sb.WriteByte('\n')
	for y := 0; y < spec.Rows; y++ {
		sb.WriteByte('0' + byte(y))
		sb.WriteString("  ")
		sb.Write(board[y][:])
		sb.WriteString("   ")
		sb.Write(isles[y][:])
		sb.WriteByte('\n')
	}
	fmt.Fprint(out, sb.String())
}

func writeTranscript(path string, tr *replay.Transcript) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(err, "create transcript err")
	}
	if err := replay.Encode(f, tr); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
