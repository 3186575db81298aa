package seqset

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"github.com/hupe1980/seqset/feature"
)

// LoadFeatures appends one auxiliary feature block from text files holding
// one value per line. The file list must match the class files the dataset
// was built from (one file in multi-label mode), and each file's line count
// must equal the record count of the corresponding class file. Numeric values
// are parsed as floats and optionally z-score standardized; categorical
// values are one-hot encoded over the observed categories (at most 256,
// mapped in lexicographic order). Call repeatedly to add multiple blocks;
// batch generation concatenates them in add order.
func (ds *Dataset) LoadFeatures(ctx context.Context, files []string, categorical, standardize bool) error {
	err := ds.loadFeatures(ctx, files, categorical, standardize)

	kind := feature.Numeric
	if categorical {
		kind = feature.Categorical
	}
	width := 0
	if err == nil {
		width = ds.features.Width()
	}
	ds.logger.LogFeature(ctx, kind.String(), width, err)
	return err
}

func (ds *Dataset) loadFeatures(ctx context.Context, files []string, categorical, standardize bool) error {
	if len(files) != len(ds.fileNames) {
		return &FileCountError{Want: len(ds.fileNames), Got: len(files)}
	}

	values := make([]string, 0, len(ds.records))
	floats := make([]float32, 0, len(ds.records))
	for i, name := range files {
		lines, err := ds.readLines(ctx, name)
		if err != nil {
			return err
		}
		if len(lines) != ds.fileCounts[i] {
			return &CountMismatchError{File: name, Want: ds.fileCounts[i], Got: len(lines)}
		}
		if categorical {
			values = append(values, lines...)
			continue
		}
		for _, v := range lines {
			f, err := strconv.ParseFloat(v, 32)
			if err != nil {
				return &ParseValueError{File: name, Value: v, cause: err}
			}
			floats = append(floats, float32(f))
		}
	}

	if ds.features == nil {
		ds.features = feature.NewStore(len(ds.records))
	}

	if categorical {
		return ds.features.AddCategorical(values)
	}
	return ds.features.AddNumeric(floats, standardize)
}

func (ds *Dataset) readLines(ctx context.Context, name string) ([]string, error) {
	rc, err := ds.opener.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var lines []string
	sc := bufio.NewScanner(rc)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// FeatureWidth returns the total auxiliary vector width per record, 0 when no
// feature blocks are loaded.
func (ds *Dataset) FeatureWidth() int {
	if ds.features == nil {
		return 0
	}
	return ds.features.Width()
}

// Features returns the concatenated auxiliary vector of one record, nil when
// no feature blocks are loaded.
func (ds *Dataset) Features(record int) []float32 {
	if ds.features == nil {
		return nil
	}
	return ds.features.Get(record)
}
