package main

import (
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
)

func TestHistoryStoreRoundTrip(t *testing.T) {
	for _, backend := range []string{"bbolt", "badger", "pebble"} {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "history")

			store, err := openHistoryStore(backend, path)
			if err != nil {
				t.Fatal(err)
			}

			// 나중 실행을 먼저 기록해도 읽을 때는 시간 순서
			if err := saveMeasurements(store, 200, sampleResults[:1]); err != nil {
				t.Fatal(err)
			}
			if err := saveMeasurements(store, 100, sampleResults); err != nil {
				t.Fatal(err)
			}
			if err := store.Close(); err != nil {
				t.Fatal(err)
			}

			store, err = openHistoryStore(backend, path)
			if err != nil {
				t.Fatal(err)
			}
			defer store.Close()

			got, err := loadHistory(store)
			if err != nil {
				t.Fatal(err)
			}
			want := []historyEntry{
				{RunID: 100, Seq: 0, Measurement: sampleResults[0]},
				{RunID: 100, Seq: 1, Measurement: sampleResults[1]},
				{RunID: 200, Seq: 0, Measurement: sampleResults[0]},
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}

			size, err := getDirSize(path)
			if err != nil {
				t.Fatal(err)
			}
			if size <= 0 {
				t.Errorf("store size = %d", size)
			}
		})
	}
}

func TestHistoryStoreEmpty(t *testing.T) {
	store, err := openHistoryStore("bbolt", filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	got, err := loadHistory(store)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries from empty store", len(got))
	}
}

func TestOpenHistoryStoreUnknownBackend(t *testing.T) {
	_, err := openHistoryStore("leveldb", t.TempDir())
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("got %v, want ErrUnknownBackend", err)
	}
}

func TestDecodeKey(t *testing.T) {
	runID, seq, err := decodeKey(encodeKey(1<<40+7, 12))
	if err != nil {
		t.Fatal(err)
	}
	if runID != 1<<40+7 || seq != 12 {
		t.Errorf("decodeKey = %d, %d", runID, seq)
	}

	if _, _, err := decodeKey([]byte("short")); err == nil {
		t.Error("decodeKey accepted a short key")
	}
}
