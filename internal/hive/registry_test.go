package hive_test

import (
	"path/filepath"
	"testing"

	"github.com/mjl-/mox/mlog"

	"github.com/jeremy-sud/Eon-AI-Project/internal/hive"
	"github.com/jeremy-sud/Eon-AI-Project/reservoir"
)

func openTestRegistry(t *testing.T) *hive.Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "peers.db")
	r, err := hive.OpenRegistry(path, mlog.New("test", nil))
	if err != nil {
		t.Fatalf("OpenRegistry: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestAcceptThenLookupRoundTrip(t *testing.T) {
	r := openTestRegistry(t)

	weights := []reservoir.Weight{1, -1, 1, -1}
	packet := reservoir.EncodePacket(0xcafef00d, weights)

	rec, err := r.Accept(packet)
	if err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if rec.Seed != 0xcafef00d {
		t.Fatalf("accepted record seed = %#x, want 0xcafef00d", rec.Seed)
	}

	found, ok, err := r.Lookup(0xcafef00d)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok {
		t.Fatal("Lookup did not find a record that was just accepted")
	}
	if found.Seed != rec.Seed || found.NumWeights != rec.NumWeights {
		t.Fatalf("Lookup returned %+v, want %+v", found, rec)
	}
}

func TestLookupMissingSeed(t *testing.T) {
	r := openTestRegistry(t)
	_, ok, err := r.Lookup(1234)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if ok {
		t.Fatal("Lookup reported a record for a seed that was never accepted")
	}
}

func TestAcceptRejectsMalformedPacket(t *testing.T) {
	r := openTestRegistry(t)
	if _, err := r.Accept([]byte("not a packet")); err == nil {
		t.Error("Accept accepted a malformed packet")
	}
}

func TestAcceptOverwritesPreviousRecordForSameSeed(t *testing.T) {
	r := openTestRegistry(t)

	first := reservoir.EncodePacket(1, []reservoir.Weight{1, 1})
	if _, err := r.Accept(first); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	second := reservoir.EncodePacket(1, []reservoir.Weight{1, 1, 1, 1})
	if _, err := r.Accept(second); err != nil {
		t.Fatalf("Accept: %v", err)
	}

	rec, ok, err := r.Lookup(1)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok {
		t.Fatal("Lookup did not find a record")
	}
	if rec.NumWeights != 4 {
		t.Fatalf("NumWeights = %d, want 4 (the second, overwriting Accept)", rec.NumWeights)
	}
}
