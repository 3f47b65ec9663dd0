// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/razsultana/genome-spy/interval"
	"github.com/razsultana/genome-spy/view"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func TestFromRecords(t *testing.T) {
	tab := FromRecords([]map[string]interface{}{
		{"chrom": "chr1", "start": 10, "end": 20.5},
		{"chrom": "chr2", "start": 3},
		{"chrom": 7, "end": 8.0},
	})
	if want := []string{"chrom", "end", "start"}; !de(want, tab.Columns()) {
		t.Fatalf("columns = %v, want %v", tab.Columns(), want)
	}
	if got, want := tab.Column("chrom"), []string{"chr1", "chr2", "7"}; !de(want, got) {
		t.Errorf("chrom = %v, want %v", got, want)
	}
	end := tab.Column("end").([]float64)
	if end[0] != 20.5 || !math.IsNaN(end[1]) || end[2] != 8 {
		t.Errorf("end = %v, want [20.5 NaN 8]", end)
	}
}

func TestFromRecordsIntegerKinds(t *testing.T) {
	tab := FromRecords([]map[string]interface{}{
		{"pos": uint(4)},
		{"pos": uint32(9)},
		{"pos": int8(-1)},
	})
	if got, want := tab.Column("pos"), []float64{4, 9, -1}; !de(want, got) {
		t.Errorf("pos = %v, want %v", got, want)
	}
}

func TestExtent(t *testing.T) {
	d := New("genes", FromRecords([]map[string]interface{}{
		{"start": 10, "name": "a"},
		{"start": 3, "name": "b"},
		{"name": "a"},
		{"start": 42, "name": "c"},
	}))

	iv, ok, err := d.Extent("start")
	if err != nil || !ok || iv != interval.New(3, 42) {
		t.Errorf("Extent(start) = %v, %v, %v; want [3,42], true, nil", iv, ok, err)
	}

	_, _, err = d.Extent("nope")
	var me *view.MissingError
	if !errors.As(err, &me) || me.Field != "nope" {
		t.Errorf("Extent(nope) error = %v, want MissingError", err)
	}

	_, _, err = d.Extent("name")
	var ce *view.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("Extent(name) error = %v, want ConfigError", err)
	}
}

func TestExtentConverts(t *testing.T) {
	d := New("ints", new(table.Builder).Add("pos", []int{5, -2, 9}).Add("empty", []float64{math.NaN(), math.NaN(), math.Inf(1)}).Done())
	if iv, ok, err := d.Extent("pos"); err != nil || !ok || iv != interval.New(-2, 9) {
		t.Errorf("Extent(pos) = %v, %v, %v; want [-2,9]", iv, ok, err)
	}
	if _, ok, err := d.Extent("empty"); err != nil || ok {
		t.Errorf("Extent of all-NaN column = %v, %v; want false, nil", ok, err)
	}
}

func TestDistinctValues(t *testing.T) {
	d := New("t", new(table.Builder).
		Add("chrom", []string{"chr2", "chr1", "chr2", "chrX"}).
		Add("strand", []int{1, -1, 1, 1}).
		Done())
	if got, err := d.DistinctValues("chrom"); err != nil || !de(got, []string{"chr2", "chr1", "chrX"}) {
		t.Errorf("DistinctValues(chrom) = %v, %v", got, err)
	}
	if got, err := d.DistinctValues("strand"); err != nil || !de(got, []string{"1", "-1"}) {
		t.Errorf("DistinctValues(strand) = %v, %v", got, err)
	}
	if !d.HasField("chrom") || d.HasField("gene") {
		t.Errorf("HasField is wrong")
	}
}

func TestReadTSV(t *testing.T) {
	in := "chrom\tstart\tend\n# comment\nchr1\t10\t20\nchr2\t\t40\n"
	tab, err := ReadTSV(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"chrom", "start", "end"}; !de(want, tab.Columns()) {
		t.Errorf("columns = %v, want %v", tab.Columns(), want)
	}
	if got := tab.Column("chrom"); !de(got, []string{"chr1", "chr2"}) {
		t.Errorf("chrom = %v", got)
	}
	start := tab.Column("start").([]float64)
	if start[0] != 10 || !math.IsNaN(start[1]) {
		t.Errorf("start = %v, want [10 NaN]", start)
	}

	if _, err := ReadTSV(strings.NewReader("")); err == nil {
		t.Errorf("empty input should fail")
	}
}
