package reservoir

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the Core's full state to path as a flat binary snapshot,
// using the teacher's write-to-temp-then-rename-then-fsync sequence so a
// reader never observes a half-written file.
//
// Unlike the original firmware, which fwrite'd the whole in-memory struct
// (padding, host endianness and all), Save writes each field in explicit
// declared order with a fixed little-endian byte order, so a snapshot is
// portable across the architectures Go targets.
func (c *Core) Save(path string) error {
	if c == nil {
		return ErrInvalidArgument
	}
	var buf bytes.Buffer
	if err := c.encode(&buf); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}

// Load replaces the Core's contents with the snapshot at path. The file
// must be exactly the size Save would have produced for this build's
// dimensions and numeric mode; anything else is rejected as malformed
// rather than partially applied.
func (c *Core) Load(path string) error {
	if c == nil {
		return ErrInvalidArgument
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	if want := snapshotSize(); len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrShortRead, len(data), want)
	}
	return c.decode(bytes.NewReader(data))
}

func (c *Core) encode(w *bytes.Buffer) error {
	order := binary.LittleEndian

	if err := binary.Write(w, order, c.Certificate.BirthTime); err != nil {
		return err
	}
	if _, err := w.Write(c.Certificate.Hash[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.Certificate.ReservoirSeed); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.Certificate.ReservoirSize); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.Certificate.Version); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.state[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.wIn[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.wRes[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.wOut[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.sparseIndices[:]); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.sparseCount); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.samplesProcessed); err != nil {
		return err
	}
	if err := binary.Write(w, order, c.learningSessions); err != nil {
		return err
	}
	trained := byte(0)
	if c.isTrained {
		trained = 1
	}
	if err := w.WriteByte(trained); err != nil {
		return err
	}
	return w.WriteByte(0) // padding, keeps the counters block 2-byte aligned
}

func (c *Core) decode(r *bytes.Reader) error {
	order := binary.LittleEndian

	if err := binary.Read(r, order, &c.Certificate.BirthTime); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if _, err := r.Read(c.Certificate.Hash[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, &c.Certificate.ReservoirSeed); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, &c.Certificate.ReservoirSize); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, &c.Certificate.Version); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, c.state[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, c.wIn[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, c.wRes[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, c.wOut[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, c.sparseIndices[:]); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, &c.sparseCount); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, &c.samplesProcessed); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	if err := binary.Read(r, order, &c.learningSessions); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	trained, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	c.isTrained = trained != 0
	if _, err := r.ReadByte(); err != nil {
		return fmt.Errorf("%w: %v", ErrShortRead, err)
	}
	return nil
}

func snapshotSize() int {
	const certSize = 8 + 16 + 4 + 2 + 2
	const countersSize = 4 + 4 + 2
	stateSize := ReservoirSize * accumSize
	winSize := ReservoirSize * InputSize * weightSize
	wresSize := SparseCapacity * weightSize
	woutSize := OutputSize * ReservoirSize * weightSize
	idxSize := SparseCapacity * 2
	const sparseCountSize = 2
	return certSize + stateSize + winSize + wresSize + woutSize + idxSize + sparseCountSize + countersSize
}

// writeAtomic commits data to path via write-to-temp, fsync, rename,
// fsync-parent-directory, adapted from the teacher's src/core/io/writer.go
// so a crash mid-write never leaves a corrupt snapshot on disk.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrOpenFailed, err)
		}
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	if n, err := f.Write(data); err != nil || n != len(data) {
		f.Close()
		os.Remove(tmp)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrShortWrite, err)
		}
		return ErrShortWrite
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	if d, err := os.Open(dir); err == nil {
		d.Sync()
		d.Close()
	}

	return nil
}
