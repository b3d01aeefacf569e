// replay 重播 play -record 產生的紀錄檔並比對最終盤面。
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zintix-labs/gleamgrid/replay"
)

func main() {
	verbose := flag.Bool("v", false, "print the replayed board")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: replay [-v] <transcript>")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	tr, err := replay.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	if err := replay.Verify(tr); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("ok: %d moves, seed %d, min cluster %d\n", len(tr.Moves), tr.Seed, tr.MinCluster)
	if *verbose {
		g, err := replay.Play(tr, nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(g.BoardString())
		fmt.Println()
	}
}
