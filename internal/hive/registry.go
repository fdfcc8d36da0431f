// Package hive keeps bookkeeping on peers exchanged over the reservoir
// package's 1-bit wire codec: who last published a readout snapshot, what
// it decoded to, and when it was accepted. It is a persistence and
// authentication layer, not a transport — no network code lives here.
package hive

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mjl-/mox/mlog"
	bolt "go.etcd.io/bbolt"

	"github.com/jeremy-sud/Eon-AI-Project/reservoir"
)

var peersBucket = []byte("peers")

// PeerRecord is the last accepted readout update from one peer, keyed by
// its birth seed.
type PeerRecord struct {
	Seed       uint32
	NumWeights uint16
	Payload    []byte
	AcceptedAt time.Time
}

// Registry is a bbolt-backed peer bookkeeping store. bbolt transactions
// are not safe for concurrent writers, so Registry serializes access with
// its own mutex — concurrency local to the registry, external to any
// reservoir.Core it bookkeeps for.
type Registry struct {
	mu  sync.Mutex
	db  *bolt.DB
	log mlog.Log
}

// OpenRegistry opens (creating if necessary) a bbolt database at path and
// ensures its peers bucket exists.
func OpenRegistry(path string, log mlog.Log) (*Registry, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("hive: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(peersBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("hive: init buckets: %w", err)
	}
	return &Registry{db: db, log: log}, nil
}

// Close releases the underlying bbolt database.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Accept decodes a framed readout packet and, if it is well formed and of
// a known type, persists it as the sender's latest record. Unsigned
// packets are accepted as-is; callers that require provenance should
// verify with VerifyPacket before calling Accept.
func (r *Registry) Accept(buf []byte) (*PeerRecord, error) {
	pkt, err := reservoir.DecodePacket(buf)
	if err != nil {
		return nil, fmt.Errorf("hive: decode packet: %w", err)
	}
	if pkt.Type != reservoir.PacketReadoutUpdate {
		return nil, fmt.Errorf("hive: unsupported packet type %#x", pkt.Type)
	}

	rec := &PeerRecord{
		Seed:       pkt.Seed,
		NumWeights: pkt.NumWeights,
		Payload:    append([]byte(nil), pkt.Payload...),
		AcceptedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(peersBucket)
		data := encodeRecord(rec)
		return b.Put(seedKey(rec.Seed), data)
	})
	if err != nil {
		return nil, fmt.Errorf("hive: persist record for seed %#x: %w", rec.Seed, err)
	}

	r.log.Debug("hive: accepted peer readout update",
		slog.Any("seed", rec.Seed),
		slog.Int("numWeights", int(rec.NumWeights)))
	return rec, nil
}

// Lookup returns the last accepted record for seed, if any.
func (r *Registry) Lookup(seed uint32) (*PeerRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rec *PeerRecord
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(peersBucket)
		data := b.Get(seedKey(seed))
		if data == nil {
			return nil
		}
		decoded, err := decodeRecord(data)
		if err != nil {
			return err
		}
		rec = decoded
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("hive: lookup seed %#x: %w", seed, err)
	}
	return rec, rec != nil, nil
}

func seedKey(seed uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, seed)
	return key
}

func encodeRecord(r *PeerRecord) []byte {
	buf := make([]byte, 0, 4+2+8+len(r.Payload))
	var tmp4 [4]byte
	binary.BigEndian.PutUint32(tmp4[:], r.Seed)
	buf = append(buf, tmp4[:]...)

	var tmp2 [2]byte
	binary.BigEndian.PutUint16(tmp2[:], r.NumWeights)
	buf = append(buf, tmp2[:]...)

	var tmp8 [8]byte
	binary.BigEndian.PutUint64(tmp8[:], uint64(r.AcceptedAt.Unix()))
	buf = append(buf, tmp8[:]...)

	return append(buf, r.Payload...)
}

func decodeRecord(data []byte) (*PeerRecord, error) {
	const headerSize = 4 + 2 + 8
	if len(data) < headerSize {
		return nil, fmt.Errorf("hive: truncated record (%d bytes)", len(data))
	}
	seed := binary.BigEndian.Uint32(data[0:4])
	numWeights := binary.BigEndian.Uint16(data[4:6])
	ts := int64(binary.BigEndian.Uint64(data[6:14]))
	payload := append([]byte(nil), data[headerSize:]...)

	return &PeerRecord{
		Seed:       seed,
		NumWeights: numWeights,
		Payload:    payload,
		AcceptedAt: time.Unix(ts, 0).UTC(),
	}, nil
}
