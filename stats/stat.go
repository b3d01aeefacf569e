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

package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var lang language.Tag = language.English

// 信賴區間
type CI struct {
	Lo float64 `json:"Lo" yaml:"lo"`
	Hi float64 `json:"Hi" yaml:"hi"`
}

// StatReport 模擬統計報告
type StatReport struct {
	Summary *SummaryReport `json:"Summary" yaml:"summary"`
	Dist    *DistReport    `json:"Dist"    yaml:"dist"`
	isDone  bool
}

type SummaryReport struct {
	GameName    string  `json:"GameName"    yaml:"game_name"`
	Seed        int64   `json:"Seed"        yaml:"seed"`
	MinCluster  int     `json:"MinCluster"  yaml:"min_cluster"`
	Games       int     `json:"Games"       yaml:"games"`
	Moves       int     `json:"Moves"       yaml:"moves"`
	Cleared     int     `json:"Cleared"     yaml:"cleared"`
	DeadBoards  int     `json:"DeadBoards"  yaml:"dead_boards"`
	DeadRate    float64 `json:"DeadRate"    yaml:"dead_rate"`
	MeanMoves   float64 `json:"MeanMoves"   yaml:"mean_moves"`
	MedianMoves float64 `json:"MedianMoves" yaml:"median_moves"`
	MeanCluster float64 `json:"MeanCluster" yaml:"mean_cluster"`
	StdCluster  float64 `json:"StdCluster"  yaml:"std_cluster"`
	ClusterCI   CI      `json:"ClusterCI"   yaml:"cluster_ci"`
	MaxCluster  int     `json:"MaxCluster"  yaml:"max_cluster"`
}

// DistReport 消除群組大小分布
type DistReport struct {
	ClusterSize  []int     `json:"ClusterSize"  yaml:"cluster_size"`
	ClusterCount []int     `json:"ClusterCount" yaml:"cluster_count"`
	ClusterDist  []float64 `json:"ClusterDist"  yaml:"cluster_dist"`
}

// ============================================================
// ** 公開方法 **
// ============================================================

// Done 將累積計數轉換為最終統計結果並鎖定 isDone 標記。
func (s *StatReport) Done() {
	if s.isDone {
		return
	}
	sm := s.Summary
	if sm.Games > 0 {
		sm.DeadRate = float64(sm.DeadBoards) / float64(sm.Games)
		sm.MeanMoves = float64(sm.Moves) / float64(sm.Games)
	}

	total := 0
	for _, c := range s.Dist.ClusterCount {
		total += c
	}
	s.Dist.ClusterDist = make([]float64, len(s.Dist.ClusterCount))
	if total > 0 {
		xs := make([]float64, len(s.Dist.ClusterSize))
		ws := make([]float64, len(s.Dist.ClusterCount))
		for i := range xs {
			xs[i] = float64(s.Dist.ClusterSize[i])
			ws[i] = float64(s.Dist.ClusterCount[i])
			s.Dist.ClusterDist[i] = ws[i] / float64(total)
		}
		sm.MeanCluster = stat.Mean(xs, ws)
		if total > 1 {
			sm.StdCluster = math.Sqrt(stat.Variance(xs, ws))
		}
		sm.ClusterCI = ci(sm.MeanCluster, sm.StdCluster, total)
	}
	s.isDone = true
}

// MedianInt 整數序列的中位數（經驗分位數），空序列回傳 0
func MedianInt(v []int) float64 {
	if len(v) == 0 {
		return 0
	}
	x := make([]float64, len(v))
	for i, n := range v {
		x[i] = float64(n)
	}
	sort.Float64s(x)
	return stat.Quantile(0.5, stat.Empirical, x, nil)
}

func (s *StatReport) WriteWith(w io.Writer, rep StatReportRender) error {
	s.Done()
	return rep.Write(w, s)
}

// StdOut 輸出用時與摘要表格
func (s *StatReport) StdOut(ut time.Duration) {
	s.Done()
	formatDuration(ut, s.Summary.Games)
	fmt.Println(s.Table())
}

// Table 摘要表格
func (s *StatReport) Table() string {
	s.Done()
	keys, msg := s.fmtBasic()
	return fmtTable(s.Summary.GameName, keys, msg)
}

// DistTable 群組大小分布表格
func (s *StatReport) DistTable() string {
	s.Done()
	p := message.NewPrinter(lang)
	keys := make([]string, 0, len(s.Dist.ClusterSize))
	msg := make(map[string]string, len(s.Dist.ClusterSize))
	for i, size := range s.Dist.ClusterSize {
		k := fmt.Sprintf("size %2d", size)
		keys = append(keys, k)
		msg[k] = p.Sprintf("%d (%.2f %%)", s.Dist.ClusterCount[i], 100.0*s.Dist.ClusterDist[i])
	}
	if len(keys) == 0 {
		return ""
	}
	return fmtTable("Cluster Size Distribution", keys, msg)
}

// ============================================================
// ** 內部方法 **
// ============================================================

// ci 95% 常態近似信賴區間
func ci(mean float64, std float64, n int) CI {
	if n < 2 {
		return CI{Lo: mean, Hi: mean}
	}
	z := distuv.UnitNormal.Quantile(0.975)
	se := std / math.Sqrt(float64(n))
	return CI{Lo: mean - z*se, Hi: mean + z*se}
}

func formatDuration(d time.Duration, games int) {
	p := message.NewPrinter(lang)
	sec := d.Seconds()
	if sec <= 0 {
		sec = 1e-9
	}
	gps := int(float64(games) / sec)
	if sec < 60.0 {
		p.Printf("used: %.2f seconds\ngps : %d games/sec\n", sec, gps)
		return
	}
	m := int(d.Minutes())
	p.Printf("used: %dm %ds\ngps : %d games/sec\n", m, int(d.Seconds())%60, gps)
}

func (s *StatReport) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	sm := s.Summary
	basic := map[string]string{
		"Game Name":      sm.GameName,
		"Seed":           fmt.Sprintf("%d", sm.Seed),
		"Min Cluster":    p.Sprintf("%d", sm.MinCluster),
		"Games":          p.Sprintf("%d", sm.Games),
		"Moves":          p.Sprintf("%d", sm.Moves),
		"Cleared Cells":  p.Sprintf("%d", sm.Cleared),
		"Dead Boards":    p.Sprintf("%d (%.2f %%)", sm.DeadBoards, 100.0*sm.DeadRate),
		"Moves / Game":   p.Sprintf("mean %.2f, median %.1f", sm.MeanMoves, sm.MedianMoves),
		"Cluster Size":   p.Sprintf("%.3f ± %.3f", sm.MeanCluster, sm.StdCluster),
		"Cluster 95% CI": p.Sprintf("[%.3f,%.3f]", sm.ClusterCI.Lo, sm.ClusterCI.Hi),
		"Max Cluster":    p.Sprintf("%d", sm.MaxCluster),
	}
	keys := []string{"Game Name", "Seed", "Min Cluster", "Games", "Moves", "Cleared Cells", "Dead Boards", "Moves / Game", "Cluster Size", "Cluster 95% CI", "Max Cluster"}
	return keys, basic
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		maxKeyLen = max(maxKeyLen, runewidth.StringWidth(k))
		maxValLen = max(maxValLen, runewidth.StringWidth(m))
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)
	left := max((totalInner-titleW)/2, 0)
	right := max(totalInner-titleW-left, 0)

	var sb strings.Builder
	sb.WriteString(top)
	sb.WriteString("|" + blank(left) + title + blank(right) + "|\n")
	sb.WriteString(divider)
	for _, k := range keys {
		v := msg[k]
		sb.WriteString("| " + k + blank(maxKeyLen-2-runewidth.StringWidth(k)) + " | " + v + blank(maxValLen-2-runewidth.StringWidth(v)) + " |\n")
	}
	sb.WriteString(divider)
	return sb.String()
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
