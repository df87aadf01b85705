package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

var tableLine = "\t" + strings.Repeat("-", 82) + "\n"

func printHeader(w io.Writer) {
	fmt.Fprintf(w, "\n\t%-29s | %-7s | %-8s | %-8s | %-8s | %s\n",
		"Algorithm", "N", "1. Run", "2. Run", "3. Run", "Average")
	fmt.Fprint(w, tableLine)
}

func printSeparator(w io.Writer) {
	fmt.Fprint(w, tableLine)
}

// printRowLabel 측정 전에 행 앞부분만 출력 (진행 상황이 바로 보이도록)
func printRowLabel(w io.Writer, m Measurement) {
	fmt.Fprintf(w, "\t%13s %-4s %-10s | %7d | ", m.Algorithm, m.Direction, m.Distribution, m.DataSize)
}

func printRun(w io.Writer, seconds float64) {
	fmt.Fprintf(w, "%6.2f s | ", seconds)
}

func printAverage(w io.Writer, seconds float64) {
	fmt.Fprintf(w, "%6.2f s\n", seconds)
}

// printMeasurement 저장된 결과 한 행 전체 출력
func printMeasurement(w io.Writer, m Measurement) {
	printRowLabel(w, m)
	for _, seconds := range m.Runs {
		printRun(w, seconds)
	}
	printAverage(w, m.Average)
}

// printHistory 실행(run)별로 묶어서 이전 스윕 결과 출력
func printHistory(w io.Writer, entries []historyEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "저장된 벤치마크 기록이 없습니다.")
		return
	}

	var current uint64
	for i, e := range entries {
		if i == 0 || e.RunID != current {
			current = e.RunID
			fmt.Fprintf(w, "\n실행 시각: %s\n", e.RunTime().Format("2006-01-02 15:04:05"))
			printHeader(w)
		}
		printMeasurement(w, e.Measurement)
	}
}

// saveResultsToMarkdown 분포별 표로 마크다운 저장
func saveResultsToMarkdown(path string, results []Measurement) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create markdown report")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)

	var builder strings.Builder
	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0)))

	for _, dist := range allDistributions {
		var rows []Measurement
		for _, m := range results {
			if m.Distribution == dist.String() {
				rows = append(rows, m)
			}
		}
		if len(rows) == 0 {
			continue
		}

		builder.WriteString(fmt.Sprintf("## %s 입력 - %d개 데이터\n\n", dist, rows[0].DataSize))
		builder.WriteString("| 알고리즘 | 방향 | 1. Run | 2. Run | 3. Run | 평균 |\n")
		builder.WriteString("|----------|------|--------|--------|--------|------|\n")
		for _, m := range rows {
			builder.WriteString(fmt.Sprintf("| %s | %s | %.2f s | %.2f s | %.2f s | %.2f s |\n",
				m.Algorithm, m.Direction, m.Runs[0], m.Runs[1], m.Runs[2], m.Average))
		}
		builder.WriteString("\n")
	}

	if _, err := writer.WriteString(builder.String()); err != nil {
		return errors.Wrap(err, "write markdown report")
	}
	return errors.Wrap(writer.Flush(), "flush markdown report")
}

// saveResultsToJSON 들여쓰기된 JSON 저장
func saveResultsToJSON(path string, results []Measurement) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create json report")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return errors.Wrap(err, "encode json report")
	}
	return errors.Wrap(writer.Flush(), "flush json report")
}
