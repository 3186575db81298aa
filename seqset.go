package seqset

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/seqset/alphabet"
	"github.com/hupe1980/seqset/fasta"
	"github.com/hupe1980/seqset/feature"
	"github.com/hupe1980/seqset/internal/rng"
	"github.com/hupe1980/seqset/source"
)

// Dataset owns the encoded records, label vectors, split assignment and
// auxiliary feature blocks for one loaded corpus. A Dataset that failed to
// construct is unusable and must be rebuilt; there are no partial-load
// semantics.
type Dataset struct {
	logger      *Logger
	opener      source.Opener
	enc         *alphabet.Encoder // single-alphabet mode
	joiner      *alphabet.Joiner  // dual-alphabet mode
	pwm         bool
	multiLabel  bool
	parallelism int

	records    []alphabet.Matrix
	rawLabels  [][]int
	labels     [][]uint8
	classSets  []*roaring.Bitmap
	fileNames  []string
	fileCounts []int

	splits   *assignment
	features *feature.Store
	rng      *rng.RNG
}

// New loads a single-label dataset: one FASTA file per class, class id given
// by file position. Headers are ignored. Unless disabled via WithAutoSplit,
// the data is split 70%/15%/15% after loading.
func New(ctx context.Context, classFiles []string, symbols string, optFns ...Option) (*Dataset, error) {
	return newDataset(ctx, classFiles, symbols, false, optFns)
}

// NewMultiLabel loads a multi-label dataset from a single FASTA file whose
// headers are comma-separated class indices (e.g. ">0,2").
func NewMultiLabel(ctx context.Context, classFile string, symbols string, optFns ...Option) (*Dataset, error) {
	return newDataset(ctx, []string{classFile}, symbols, true, optFns)
}

func newDataset(ctx context.Context, classFiles []string, symbols string, multiLabel bool, optFns []Option) (*Dataset, error) {
	if len(classFiles) == 0 {
		return nil, ErrNoFiles
	}

	o := applyOptions(optFns)

	ds := &Dataset{
		logger:      o.logger,
		opener:      o.source,
		pwm:         o.pwm,
		multiLabel:  multiLabel,
		parallelism: o.parallelism,
		fileNames:   append([]string(nil), classFiles...),
	}

	var err error
	if o.secondary != "" {
		ds.joiner, err = alphabet.NewJoiner(symbols, o.secondary)
	} else {
		ds.enc, err = alphabet.NewEncoder(symbols)
	}
	if err != nil {
		return nil, err
	}

	seed := o.seed
	if !o.seedSet {
		seed = time.Now().UnixNano()
	}
	ds.rng = rng.New(seed)

	if err := ds.loadAll(ctx, classFiles); err != nil {
		return nil, err
	}
	if len(ds.records) == 0 {
		return nil, ErrNoRecords
	}
	if err := ds.checkShapes(); err != nil {
		return nil, err
	}
	ds.processLabels()

	if o.autoSplit {
		if err := ds.Split(0.7, 0.15); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// Len returns the number of records.
func (ds *Dataset) Len() int { return len(ds.records) }

// Shape returns the shape (sequence length, alphabet size) shared by every
// record tensor.
func (ds *Dataset) Shape() (rows, cols int) {
	return ds.records[0].Rows, ds.records[0].Cols
}

// AlphabetSize returns the width of the encoding alphabet (the joint size in
// dual-alphabet mode).
func (ds *Dataset) AlphabetSize() int {
	if ds.joiner != nil {
		return ds.joiner.Size()
	}
	return ds.enc.Size()
}

// Record returns the encoded tensor of one record. The matrix shares backing
// storage with the dataset and must not be mutated.
func (ds *Dataset) Record(i int) alphabet.Matrix { return ds.records[i] }

type fileResult struct {
	records  []alphabet.Matrix
	labels   [][]int
	repaired int
}

// loadAll loads all class files, bounded-parallel, preserving file order.
// Each file gets its own generator seeded from the dataset generator, so the
// random repair is reproducible independent of scheduling.
func (ds *Dataset) loadAll(ctx context.Context, classFiles []string) error {
	seeds := make([]int64, len(classFiles))
	for i := range seeds {
		seeds[i] = ds.rng.Int63()
	}

	results := make([]fileResult, len(classFiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ds.parallelism)
	for i, name := range classFiles {
		g.Go(func() error {
			res, err := ds.loadFile(gctx, name, i, rng.New(seeds[i]))
			ds.logger.LogLoad(gctx, name, len(res.records), res.repaired, err)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		ds.records = append(ds.records, res.records...)
		ds.rawLabels = append(ds.rawLabels, res.labels...)
		ds.fileCounts = append(ds.fileCounts, len(res.records))
	}
	return nil
}

func (ds *Dataset) loadFile(ctx context.Context, name string, classID int, r *rng.RNG) (fileResult, error) {
	var res fileResult

	rc, err := ds.opener.Open(ctx, name)
	if err != nil {
		return res, err
	}
	defer rc.Close()

	records, err := fasta.Parse(rc)
	if err != nil {
		return res, err
	}

	for _, rec := range records {
		m, repaired, err := ds.encodeRecord(name, rec, r)
		if err != nil {
			return res, err
		}
		res.repaired += repaired

		labels := []int{classID}
		if ds.multiLabel {
			labels, err = parseHeaderLabels(name, rec.Header)
			if err != nil {
				return res, err
			}
		}

		res.records = append(res.records, m)
		res.labels = append(res.labels, labels)
	}
	return res, nil
}

// encodeRecord turns one FASTA block into an encoded tensor, repairing
// out-of-alphabet characters with uniformly random alphabet characters.
func (ds *Dataset) encodeRecord(file string, rec fasta.Record, r *rng.RNG) (alphabet.Matrix, int, error) {
	if ds.joiner == nil {
		// Sequence-only entries may span multiple lines.
		if len(rec.Block) < 1 {
			return alphabet.Matrix{}, 0, &BlockError{File: file, Header: rec.Header, WantLines: 1, GotLines: 0}
		}
		seq, repaired := repair(strings.ToUpper(strings.Join(rec.Block, "")), ds.enc.Symbols(), r)
		m, err := ds.enc.Encode(seq)
		return m, repaired, err
	}

	if ds.pwm {
		want := 1 + len(ds.joiner.Secondary())
		if len(rec.Block) != want {
			return alphabet.Matrix{}, 0, &BlockError{File: file, Header: rec.Header, WantLines: want, GotLines: len(rec.Block)}
		}
		seq, repaired := repair(strings.ToUpper(rec.Block[0]), ds.joiner.Primary(), r)
		pwm, err := parsePWM(file, rec.Header, rec.Block[1:], len(seq))
		if err != nil {
			return alphabet.Matrix{}, 0, err
		}
		m, err := ds.joiner.EncodePWM(seq, pwm)
		return m, repaired, err
	}

	if len(rec.Block) < 2 {
		return alphabet.Matrix{}, 0, &BlockError{File: file, Header: rec.Header, WantLines: 2, GotLines: len(rec.Block)}
	}
	seq, nSeq := repair(strings.ToUpper(rec.Block[0]), ds.joiner.Primary(), r)
	// Some structure tools append free energy after the structure; keep the
	// first whitespace-separated token only.
	fields := strings.Fields(rec.Block[1])
	if len(fields) == 0 {
		return alphabet.Matrix{}, 0, &BlockError{File: file, Header: rec.Header, WantLines: 2, GotLines: 1}
	}
	structLine := strings.ToUpper(fields[0])
	structure, nStruct := repair(structLine, ds.joiner.Secondary(), r)
	m, err := ds.joiner.Encode(seq, structure)
	return m, nSeq + nStruct, err
}

// repair replaces every character not in symbols with a uniformly random
// character from symbols. Returns the repaired string and the number of
// replacements. This is a documented lossy step, not an error.
func repair(s, symbols string, r *rng.RNG) (string, int) {
	var member [256]bool
	for i := 0; i < len(symbols); i++ {
		member[symbols[i]] = true
	}

	replaced := 0
	var out []byte
	for i := 0; i < len(s); i++ {
		if member[s[i]] {
			continue
		}
		if out == nil {
			out = []byte(s)
		}
		out[i] = r.Pick(symbols)
		replaced++
	}
	if out == nil {
		return s, 0
	}
	return string(out), replaced
}

// parsePWM parses |secondary| rows of per-position probabilities into a
// (seqLen, |secondary|) matrix: row k of the block holds the probabilities of
// secondary symbol k across all positions.
func parsePWM(file, header string, rows []string, seqLen int) (alphabet.Matrix, error) {
	pwm := alphabet.NewMatrix(seqLen, len(rows))
	for k, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != seqLen {
			return alphabet.Matrix{}, &PWMRowError{File: file, Header: header, Row: k, WantCols: seqLen, GotCols: len(fields)}
		}
		for pos, field := range fields {
			v, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return alphabet.Matrix{}, &ParseValueError{File: file, Value: field, cause: err}
			}
			pwm.Set(pos, k, float32(v))
		}
	}
	return pwm, nil
}

// parseHeaderLabels parses a multi-label header: a comma-separated list of
// non-negative class indices.
func parseHeaderLabels(file, header string) ([]int, error) {
	parts := strings.Split(header, ",")
	labels := make([]int, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &HeaderError{File: file, Header: header, cause: err}
		}
		if idx < 0 {
			return nil, &HeaderError{File: file, Header: header}
		}
		labels = append(labels, idx)
	}
	return labels, nil
}

// checkShapes enforces the dataset invariant that every record tensor has the
// same shape.
func (ds *Dataset) checkShapes() error {
	rows := ds.records[0].Rows
	for i := 1; i < len(ds.records); i++ {
		if ds.records[i].Rows != rows {
			return &ShapeMismatchError{Index: i, WantRows: rows, GotRows: ds.records[i].Rows}
		}
	}
	return nil
}
