package main

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Direction 정렬 방향 (오름차순/내림차순)
type Direction int

const (
	Ascending Direction = iota
	Descending
)

var allDirections = []Direction{Ascending, Descending}

// lessFunc a가 b보다 엄격하게 앞에 와야 하면 true
type lessFunc func(a, b int) bool

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return "UNKNOWN"
	}
}

// before 방향에 맞는 비교 함수 하나를 반환. 모든 알고리즘은 이 함수만 사용한다.
func (d Direction) before() lessFunc {
	if d == Descending {
		return func(a, b int) bool { return a > b }
	}
	return func(a, b int) bool { return a < b }
}

func parseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return 0, errors.Newf("unknown direction %q", name)
}
