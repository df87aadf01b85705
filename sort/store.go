package main

import (
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	bucketName = "sortbench"
	keySize    = 12 // runID(8) + seq(4)
)

// ErrUnknownBackend 지원하지 않는 저장소 백엔드
var ErrUnknownBackend = errors.New("unknown store backend")

var defaultStorePaths = map[string]string{
	"bbolt":  "sortbench_history.db",
	"badger": "sortbench_history_badger",
	"pebble": "sortbench_history_pebble",
}

type kvPair struct {
	key   []byte
	value []byte
}

// historyStore 벤치마크 기록용 정렬된 KV 저장소.
// scan은 키의 바이트 순서대로 순회한다.
type historyStore interface {
	writeBatch(pairs []kvPair) error
	scan(fn func(key, value []byte) error) error
	Close() error
}

// historyEntry 저장소에서 읽어 온 한 행
type historyEntry struct {
	RunID uint64
	Seq   uint32
	Measurement
}

// RunTime 실행 시작 시각 (runID는 유닉스 나노초)
func (e historyEntry) RunTime() time.Time {
	return time.Unix(0, int64(e.RunID))
}

func openHistoryStore(backend, path string) (historyStore, error) {
	if path == "" {
		path = defaultStorePaths[backend]
	}

	switch backend {
	case "bbolt":
		return openBboltStore(path)
	case "badger":
		return openBadgerStore(path)
	case "pebble":
		return openPebbleStore(path)
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
}

func encodeKey(runID uint64, seq uint32) []byte {
	key := make([]byte, keySize)
	binary.BigEndian.PutUint64(key[:8], runID)
	binary.BigEndian.PutUint32(key[8:], seq)
	return key
}

func decodeKey(key []byte) (uint64, uint32, error) {
	if len(key) != keySize {
		return 0, 0, errors.Newf("history key has %d bytes, want %d", len(key), keySize)
	}
	return binary.BigEndian.Uint64(key[:8]), binary.BigEndian.Uint32(key[8:]), nil
}

// saveMeasurements 한 스윕 결과를 배치 하나로 기록
func saveMeasurements(store historyStore, runID uint64, results []Measurement) error {
	pairs := make([]kvPair, 0, len(results))
	for i, m := range results {
		value, err := json.Marshal(m)
		if err != nil {
			return errors.Wrapf(err, "encode %s/%s/%s", m.Algorithm, m.Distribution, m.Direction)
		}
		pairs = append(pairs, kvPair{key: encodeKey(runID, uint32(i)), value: value})
	}
	return store.writeBatch(pairs)
}

// loadHistory 모든 기록을 시간 순서대로 읽는다
func loadHistory(store historyStore) ([]historyEntry, error) {
	var entries []historyEntry
	err := store.scan(func(key, value []byte) error {
		runID, seq, err := decodeKey(key)
		if err != nil {
			return err
		}
		e := historyEntry{RunID: runID, Seq: seq}
		if err := json.Unmarshal(value, &e.Measurement); err != nil {
			return errors.Wrapf(err, "decode history entry %d/%d", runID, seq)
		}
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// getDirSize 파일 또는 디렉터리의 전체 크기
func getDirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, errors.Wrapf(err, "stat %s", path)
}
