package seqset

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/seqset/alphabet"
)

// processLabels converts the raw per-record label-index lists into
// fixed-width binary membership vectors and per-class membership bitmaps.
// Runs exactly once at load time; the vectors are immutable afterwards.
func (ds *Dataset) processLabels() {
	numClasses := 0
	for _, raw := range ds.rawLabels {
		for _, idx := range raw {
			if idx+1 > numClasses {
				numClasses = idx + 1
			}
		}
	}

	ds.labels = make([][]uint8, len(ds.rawLabels))
	ds.classSets = make([]*roaring.Bitmap, numClasses)
	for c := range ds.classSets {
		ds.classSets[c] = roaring.New()
	}
	for i, raw := range ds.rawLabels {
		vec := make([]uint8, numClasses)
		for _, idx := range raw {
			vec[idx] = 1
			ds.classSets[idx].Add(uint32(i))
		}
		ds.labels[i] = vec
	}
}

// NumClasses returns the number of classes, 1 + the maximum class index seen
// across all records.
func (ds *Dataset) NumClasses() int { return len(ds.classSets) }

// Labels returns the label matrix for a group, one binary membership vector
// per record, shape (group size, NumClasses()).
func (ds *Dataset) Labels(group Group) ([][]uint8, error) {
	idx, err := ds.GroupIndices(group)
	if err != nil {
		return nil, err
	}
	out := make([][]uint8, len(idx))
	for i, x := range idx {
		out[i] = ds.labels[x]
	}
	return out, nil
}

// Data returns the encoded tensors and label vectors for a group, both in
// group index order. The matrices and vectors share storage with the dataset
// and must not be mutated.
func (ds *Dataset) Data(group Group) ([]alphabet.Matrix, [][]uint8, error) {
	idx, err := ds.GroupIndices(group)
	if err != nil {
		return nil, nil, err
	}
	inputs := make([]alphabet.Matrix, len(idx))
	labels := make([][]uint8, len(idx))
	for i, x := range idx {
		inputs[i] = ds.records[x]
		labels[i] = ds.labels[x]
	}
	return inputs, labels, nil
}

// ClassWeights returns per-class weights proportional to total/count,
// normalized so the most frequent class has weight 1. Useful for weighting
// losses on imbalanced data.
func (ds *Dataset) ClassWeights() map[int]float64 {
	weights := make(map[int]float64, len(ds.classSets))
	minWeight := 0.0
	total := float64(len(ds.records))
	for c, set := range ds.classSets {
		count := float64(set.GetCardinality())
		w := 0.0
		if count > 0 {
			w = total / count
		}
		weights[c] = w
		if minWeight == 0 || (w > 0 && w < minWeight) {
			minWeight = w
		}
	}
	if minWeight > 0 {
		for c := range weights {
			weights[c] /= minWeight
		}
	}
	return weights
}

// classCounts returns, for each class, how many of the given records belong
// to it. Membership is resolved through the per-class bitmaps.
func (ds *Dataset) classCounts(idx []int) []uint64 {
	group := roaring.New()
	for _, x := range idx {
		group.Add(uint32(x))
	}
	counts := make([]uint64, len(ds.classSets))
	for c, set := range ds.classSets {
		counts[c] = roaring.And(group, set).GetCardinality()
	}
	return counts
}

// Summary returns a tabular per-group, per-class record count overview for
// human inspection.
func (ds *Dataset) Summary() (string, error) {
	groups := []Group{GroupTrain, GroupVal, GroupTest}
	counts := make(map[Group][]uint64, len(groups)+1)

	all := make([]uint64, ds.NumClasses())
	for _, g := range groups {
		idx, err := ds.GroupIndices(g)
		if err != nil {
			return "", err
		}
		counts[g] = ds.classCounts(idx)
		for c, n := range counts[g] {
			all[c] += n
		}
	}
	counts[GroupAll] = all

	formatRow := func(values []uint64) string {
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = fmt.Sprintf("%9d", v)
		}
		return strings.Join(cells, "  ")
	}

	header := make([]string, ds.NumClasses())
	for c := range header {
		header[c] = fmt.Sprintf("%9s", fmt.Sprintf("class_%d", c))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "            %s\n", strings.Join(header, "  "))
	fmt.Fprintf(&b, "all data:   %s\n", formatRow(counts[GroupAll]))
	fmt.Fprintf(&b, "training:   %s\n", formatRow(counts[GroupTrain]))
	fmt.Fprintf(&b, "validation: %s\n", formatRow(counts[GroupVal]))
	fmt.Fprintf(&b, "test:       %s", formatRow(counts[GroupTest]))
	return b.String(), nil
}

// Sequences decodes the records of one class within a group back into
// strings. In dual-alphabet mode the primary (sequence) string is returned;
// PWM-encoded rows decode by argmax. sel optionally restricts the result to
// positions within the class-filtered index list.
func (ds *Dataset) Sequences(classID int, group Group, sel []int) ([]string, error) {
	if classID < 0 || classID >= ds.NumClasses() {
		return nil, &ClassIndexError{Class: classID, NumClasses: ds.NumClasses()}
	}
	idx, err := ds.GroupIndices(group)
	if err != nil {
		return nil, err
	}

	var members []int
	for _, x := range idx {
		if ds.classSets[classID].Contains(uint32(x)) {
			members = append(members, x)
		}
	}
	if sel == nil {
		sel = make([]int, len(members))
		for i := range sel {
			sel[i] = i
		}
	}

	out := make([]string, 0, len(sel))
	for _, pos := range sel {
		if pos < 0 || pos >= len(members) {
			return nil, &SelectionError{Position: pos, Size: len(members)}
		}
		var seq string
		if ds.joiner != nil {
			seq, _, err = ds.joiner.Decode(ds.records[members[pos]])
		} else {
			seq, err = ds.enc.Decode(ds.records[members[pos]])
		}
		if err != nil {
			return nil, err
		}
		out = append(out, seq)
	}
	return out, nil
}
