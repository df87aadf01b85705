package main

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// defaultN 기본 배열 크기
const defaultN = 150000

// Config 벤치마크 설정. 인자가 없으면 기본 전체 스윕.
type Config struct {
	N             int
	Seed          int64
	Algorithms    []Algorithm
	Distributions []Distribution
	Directions    []Direction

	JSONPath     string
	MarkdownPath string
	MetricsPath  string

	StoreBackend string
	StorePath    string
	ShowHistory  bool
}

func parseConfig(args []string, output io.Writer) (Config, error) {
	var (
		cfg                Config
		algos, dists, dirs string
	)

	fs := flag.NewFlagSet("sortbench", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.N, "n", defaultN, "array length")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = current time)")
	fs.StringVar(&algos, "algos", "", "comma-separated algorithms (default all)")
	fs.StringVar(&dists, "dists", "", "comma-separated distributions: random, ascending, descending (default all)")
	fs.StringVar(&dirs, "dirs", "", "comma-separated sort directions: asc, desc (default all)")
	fs.StringVar(&cfg.JSONPath, "json", "", "write results as JSON to this file")
	fs.StringVar(&cfg.MarkdownPath, "md", "", "write results as Markdown to this file")
	fs.StringVar(&cfg.MetricsPath, "metrics", "", "write Prometheus textfile to this file")
	fs.StringVar(&cfg.StoreBackend, "store", "", "history backend: bbolt, badger or pebble")
	fs.StringVar(&cfg.StorePath, "store-path", "", "history location (default depends on backend)")
	fs.BoolVar(&cfg.ShowHistory, "history", false, "print stored history and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, errors.Newf("unexpected arguments: %v", fs.Args())
	}

	if cfg.N < 1 {
		return cfg, errors.Newf("-n must be at least 1, got %d", cfg.N)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var err error
	if cfg.Algorithms, err = parseList(algos, allAlgorithms, parseAlgorithm); err != nil {
		return cfg, errors.Wrap(err, "-algos")
	}
	if cfg.Distributions, err = parseList(dists, allDistributions, parseDistribution); err != nil {
		return cfg, errors.Wrap(err, "-dists")
	}
	if cfg.Directions, err = parseList(dirs, allDirections, parseDirection); err != nil {
		return cfg, errors.Wrap(err, "-dirs")
	}

	if cfg.StoreBackend != "" {
		if _, ok := defaultStorePaths[cfg.StoreBackend]; !ok {
			return cfg, errors.Wrapf(ErrUnknownBackend, "-store %q", cfg.StoreBackend)
		}
	}
	if cfg.ShowHistory && cfg.StoreBackend == "" {
		return cfg, errors.New("-history requires -store")
	}

	return cfg, nil
}

// parseList 쉼표로 구분된 이름 목록. 비어 있으면 기본값 전체.
func parseList[T any](raw string, all []T, parse func(string) (T, error)) ([]T, error) {
	if strings.TrimSpace(raw) == "" {
		return all, nil
	}

	var out []T
	for _, name := range strings.Split(raw, ",") {
		v, err := parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
