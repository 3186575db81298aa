package seqset

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/seqset/alphabet"
	"github.com/hupe1980/seqset/internal/rng"
)

// Snapshot layout: a plain header (magic, version) followed by an lz4-framed
// little-endian body holding the alphabets, mode flags, record tensors, raw
// label lists, per-file record counts and the current split assignment.
// Feature blocks are not persisted; reload them via LoadFeatures.
const (
	snapshotMagic   uint32 = 0x53455144 // "SEQD"
	snapshotVersion uint16 = 1
)

type snapshotFlags uint8

const (
	flagMultiLabel snapshotFlags = 1 << iota
	flagDual
	flagPWM
	flagSplit
)

// Save writes a snapshot of the dataset to w.
func (ds *Dataset) Save(w io.Writer) error {
	err := ds.save(w)
	ds.logger.LogSnapshot(context.Background(), "save", len(ds.records), err)
	return err
}

func (ds *Dataset) save(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, snapshotMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, snapshotVersion); err != nil {
		return err
	}

	zw := lz4.NewWriter(w)
	bw := bufio.NewWriter(zw)

	flags := snapshotFlags(0)
	if ds.multiLabel {
		flags |= flagMultiLabel
	}
	if ds.joiner != nil {
		flags |= flagDual
	}
	if ds.pwm {
		flags |= flagPWM
	}
	if ds.splits != nil {
		flags |= flagSplit
	}
	if err := binary.Write(bw, binary.LittleEndian, flags); err != nil {
		return err
	}

	primary, secondary := ds.alphabets()
	if err := writeString(bw, primary); err != nil {
		return err
	}
	if err := writeString(bw, secondary); err != nil {
		return err
	}

	rows, cols := ds.Shape()
	for _, v := range []uint32{uint32(len(ds.records)), uint32(rows), uint32(cols)} {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	for _, m := range ds.records {
		if err := binary.Write(bw, binary.LittleEndian, m.Data); err != nil {
			return err
		}
	}

	for _, raw := range ds.rawLabels {
		if err := writeIntSlice(bw, raw); err != nil {
			return err
		}
	}

	if err := binary.Write(bw, binary.LittleEndian, uint32(len(ds.fileNames))); err != nil {
		return err
	}
	for i, name := range ds.fileNames {
		if err := writeString(bw, name); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint32(ds.fileCounts[i])); err != nil {
			return err
		}
	}

	if ds.splits != nil {
		for _, group := range [][]int{ds.splits.train, ds.splits.val, ds.splits.test} {
			if err := writeIntSlice(bw, group); err != nil {
				return err
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return err
	}
	return zw.Close()
}

// LoadSnapshot reconstructs a dataset from a snapshot written by Save. Label
// vectors are rebuilt from the stored raw label lists. Options apply as in
// New; WithStructure/WithStructurePWM are ignored (the stored mode wins).
func LoadSnapshot(r io.Reader, optFns ...Option) (*Dataset, error) {
	ds, err := loadSnapshot(r, optFns)

	records := 0
	if ds != nil {
		records = len(ds.records)
	}
	logger := NoopLogger()
	if ds != nil {
		logger = ds.logger
	}
	logger.LogSnapshot(context.Background(), "load", records, err)
	return ds, err
}

func loadSnapshot(r io.Reader, optFns []Option) (*Dataset, error) {
	var magic uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic 0x%08x", ErrBadSnapshot, magic)
	}
	var version uint16
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}
	if version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadSnapshot, version)
	}

	br := bufio.NewReader(lz4.NewReader(r))

	var flags snapshotFlags
	if err := binary.Read(br, binary.LittleEndian, &flags); err != nil {
		return nil, err
	}

	primary, err := readString(br)
	if err != nil {
		return nil, err
	}
	secondary, err := readString(br)
	if err != nil {
		return nil, err
	}

	o := applyOptions(optFns)
	ds := &Dataset{
		logger:      o.logger,
		opener:      o.source,
		multiLabel:  flags&flagMultiLabel != 0,
		pwm:         flags&flagPWM != 0,
		parallelism: o.parallelism,
	}
	if flags&flagDual != 0 {
		ds.joiner, err = alphabet.NewJoiner(primary, secondary)
	} else {
		ds.enc, err = alphabet.NewEncoder(primary)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadSnapshot, err)
	}

	seed := o.seed
	if !o.seedSet {
		seed = time.Now().UnixNano()
	}
	ds.rng = rng.New(seed)

	var numRecords, rows, cols uint32
	for _, v := range []*uint32{&numRecords, &rows, &cols} {
		if err := binary.Read(br, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}

	ds.records = make([]alphabet.Matrix, numRecords)
	for i := range ds.records {
		m := alphabet.NewMatrix(int(rows), int(cols))
		if err := binary.Read(br, binary.LittleEndian, m.Data); err != nil {
			return nil, err
		}
		ds.records[i] = m
	}

	ds.rawLabels = make([][]int, numRecords)
	for i := range ds.rawLabels {
		if ds.rawLabels[i], err = readIntSlice(br); err != nil {
			return nil, err
		}
	}

	var numFiles uint32
	if err := binary.Read(br, binary.LittleEndian, &numFiles); err != nil {
		return nil, err
	}
	ds.fileNames = make([]string, numFiles)
	ds.fileCounts = make([]int, numFiles)
	for i := range ds.fileNames {
		if ds.fileNames[i], err = readString(br); err != nil {
			return nil, err
		}
		var count uint32
		if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		ds.fileCounts[i] = int(count)
	}

	if flags&flagSplit != 0 {
		ds.splits = &assignment{}
		for _, group := range []*[]int{&ds.splits.train, &ds.splits.val, &ds.splits.test} {
			if *group, err = readIntSlice(br); err != nil {
				return nil, err
			}
		}
	}

	ds.processLabels()
	return ds, nil
}

func (ds *Dataset) alphabets() (primary, secondary string) {
	if ds.joiner != nil {
		return ds.joiner.Primary(), ds.joiner.Secondary()
	}
	return ds.enc.Symbols(), ""
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint16
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeIntSlice(w io.Writer, values []int) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		if err := binary.Write(w, binary.LittleEndian, uint32(v)); err != nil {
			return err
		}
	}
	return nil
}

func readIntSlice(r io.Reader) ([]int, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i := range out {
		var v uint32
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			return nil, err
		}
		out[i] = int(v)
	}
	return out, nil
}
