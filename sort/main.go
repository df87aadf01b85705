package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sortbench: ")

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("설정 오류: %v", err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(cfg Config, out io.Writer) error {
	if cfg.ShowHistory {
		return showHistory(cfg, out)
	}

	fmt.Fprintln(out, "정렬 알고리즘 벤치마크 시작...")
	fmt.Fprintf(out, "CPU 코어 수: %d\n", runtime.NumCPU())
	fmt.Fprintf(out, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintf(out, "데이터 크기: %s개, 시드: %d\n", humanize.Comma(int64(cfg.N)), cfg.Seed)

	runID := uint64(time.Now().UnixNano())
	metrics := newSortMetrics(cfg.N)

	b := newBench(cfg, out, metrics)
	if err := b.run(cfg.Algorithms, cfg.Distributions, cfg.Directions); err != nil {
		return err
	}
	fmt.Fprintln(out)

	return saveResults(cfg, out, runID, b.results, metrics)
}

// saveResults 설정된 출력(JSON, 마크다운, 메트릭, 기록 저장소)에 결과 저장
func saveResults(cfg Config, out io.Writer, runID uint64, results []Measurement, metrics *sortMetrics) error {
	if cfg.JSONPath != "" {
		if err := saveResultsToJSON(cfg.JSONPath, results); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", cfg.JSONPath)
	}

	if cfg.MarkdownPath != "" {
		if err := saveResultsToMarkdown(cfg.MarkdownPath, results); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", cfg.MarkdownPath)
	}

	if cfg.MetricsPath != "" {
		if err := metrics.writeTextfile(cfg.MetricsPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s 파일이 생성되었습니다.\n", cfg.MetricsPath)
	}

	if cfg.StoreBackend != "" {
		path := storePath(cfg)
		store, err := openHistoryStore(cfg.StoreBackend, path)
		if err != nil {
			return err
		}
		if err := saveMeasurements(store, runID, results); err != nil {
			store.Close()
			return errors.Wrapf(err, "save history to %s", cfg.StoreBackend)
		}
		if err := store.Close(); err != nil {
			return errors.Wrapf(err, "close %s", cfg.StoreBackend)
		}

		size, err := getDirSize(path)
		if err != nil {
			log.Printf("기록 크기 확인 실패: %v", err)
		} else {
			fmt.Fprintf(out, "%s 기록 저장 완료 (%d건, %s)\n", cfg.StoreBackend, len(results), humanize.Bytes(uint64(size)))
		}
	}

	return nil
}

func showHistory(cfg Config, out io.Writer) error {
	store, err := openHistoryStore(cfg.StoreBackend, storePath(cfg))
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := loadHistory(store)
	if err != nil {
		return errors.Wrapf(err, "load history from %s", cfg.StoreBackend)
	}
	printHistory(out, entries)
	return nil
}

func storePath(cfg Config) string {
	if cfg.StorePath != "" {
		return cfg.StorePath
	}
	return defaultStorePaths[cfg.StoreBackend]
}
