package main

import (
	"io"
	"math/rand"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// runsPerCase 케이스마다 측정하는 횟수
const runsPerCase = 3

// Distribution 정렬 전 데이터 분포
type Distribution int

const (
	Random Distribution = iota
	Sorted
	Reversed
)

var allDistributions = []Distribution{Random, Sorted, Reversed}

func (d Distribution) String() string {
	switch d {
	case Random:
		return "Random"
	case Sorted:
		return "Ascending"
	case Reversed:
		return "Descending"
	default:
		return "Unknown"
	}
}

func parseDistribution(name string) (Distribution, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, d := range allDistributions {
		if want == strings.ToLower(d.String()) {
			return d, nil
		}
	}
	switch want {
	case "asc", "sorted":
		return Sorted, nil
	case "desc", "reversed":
		return Reversed, nil
	}
	return 0, errors.Newf("unknown distribution %q", name)
}

// Measurement 한 케이스(알고리즘, 분포, 방향)의 측정 결과
type Measurement struct {
	Algorithm    string               `json:"algorithm"`
	Distribution string               `json:"distribution"`
	Direction    string               `json:"direction"`
	DataSize     int                  `json:"data_size"`
	Runs         [runsPerCase]float64 `json:"runs_seconds"`
	Average      float64              `json:"average_seconds"`
}

// fillArray 분포에 따라 arr 전체를 덮어쓴다. 모든 분포의 값은 [1, N] 범위.
func fillArray(arr []int, dist Distribution, rng *rand.Rand) {
	n := len(arr)
	switch dist {
	case Sorted:
		for i := range n {
			arr[i] = i + 1
		}
	case Reversed:
		for i := range n {
			arr[i] = n - i
		}
	default:
		for i := range n {
			arr[i] = rng.Intn(n) + 1
		}
	}
}

// bench 벤치마크 드라이버. 배열 하나와 난수 생성기 하나를 소유한다.
type bench struct {
	arr     []int
	rng     *rand.Rand
	out     io.Writer
	metrics *sortMetrics

	results []Measurement
}

func newBench(cfg Config, out io.Writer, metrics *sortMetrics) *bench {
	return &bench{
		arr:     make([]int, cfg.N),
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		out:     out,
		metrics: metrics,
	}
}

// measureSingle 배열 초기화 후 한 번 정렬하고 걸린 시간(초)을 반환
func (b *bench) measureSingle(algo Algorithm, dist Distribution, dir Direction) (float64, error) {
	fillArray(b.arr, dist, b.rng)

	// 측정 전 GC로 안정화
	runtime.GC()

	start := time.Now()
	err := algo.Sort(b.arr, dir)
	elapsed := time.Since(start)

	if err != nil {
		return 0, errors.Wrapf(err, "%s on %s input", algo, dist)
	}
	return elapsed.Seconds(), nil
}

// measureCase 세 번 측정하면서 바로바로 출력하고 평균까지 출력
func (b *bench) measureCase(algo Algorithm, dist Distribution, dir Direction) (Measurement, error) {
	m := Measurement{
		Algorithm:    algo.String(),
		Distribution: dist.String(),
		Direction:    dir.String(),
		DataSize:     len(b.arr),
	}

	printRowLabel(b.out, m)

	sum := 0.0
	for run := range runsPerCase {
		seconds, err := b.measureSingle(algo, dist, dir)
		if err != nil {
			return m, err
		}
		m.Runs[run] = seconds
		sum += seconds
		printRun(b.out, seconds)
		b.metrics.observeRun(m, seconds)
	}

	m.Average = sum / runsPerCase
	printAverage(b.out, m.Average)
	b.metrics.setAverage(m)

	return m, nil
}

// run 알고리즘 -> 분포 -> 방향 순으로 전체 스윕
func (b *bench) run(algos []Algorithm, dists []Distribution, dirs []Direction) error {
	printHeader(b.out)

	for idx, algo := range algos {
		if idx > 0 {
			printSeparator(b.out)
		}
		for _, dist := range dists {
			for _, dir := range dirs {
				if !slices.Contains(algo.Directions(), dir) {
					continue
				}
				m, err := b.measureCase(algo, dist, dir)
				if err != nil {
					return err
				}
				b.results = append(b.results, m)
			}
		}
	}

	return nil
}
