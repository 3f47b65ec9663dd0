// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package data provides view data sources backed by go-gg tables.
package data

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/razsultana/genome-spy/interval"
	"github.com/razsultana/genome-spy/view"
)

// Table is a view.DataSource over a table.Table.
type Table struct {
	name string
	t    *table.Table
}

// New returns a data source named name over t. The name identifies
// the source in errors.
func New(name string, t *table.Table) *Table {
	return &Table{name, t}
}

func (d *Table) String() string { return d.name }

// Table returns the underlying table.
func (d *Table) Table() *table.Table { return d.t }

// HasField reports whether the table has a column named field.
func (d *Table) HasField(field string) bool {
	return d.t.Column(field) != nil
}

func (d *Table) column(field string) (table.Slice, error) {
	col := d.t.Column(field)
	if col == nil {
		return nil, &view.MissingError{View: d.name, Field: field}
	}
	return col, nil
}

// Extent returns the range of the finite values of a numeric column.
// time.Time columns are measured in milliseconds since the epoch.
func (d *Table) Extent(field string) (interval.Interval, bool, error) {
	col, err := d.column(field)
	if err != nil {
		return interval.Interval{}, false, err
	}
	xs, err := floats(col)
	if err != nil {
		return interval.Interval{}, false, &view.ConfigError{View: d.name, Msg: fmt.Sprintf("field %q: %v", field, err)}
	}

	min, max := math.NaN(), math.NaN()
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min || math.IsNaN(min) {
			min = v
		}
		if v > max || math.IsNaN(max) {
			max = v
		}
	}
	if math.IsNaN(min) {
		return interval.Interval{}, false, nil
	}
	return interval.New(min, max), true, nil
}

// DistinctValues returns the distinct values of a column formatted
// with fmt.Sprint, in first-seen order.
func (d *Table) DistinctValues(field string) ([]string, error) {
	col, err := d.column(field)
	if err != nil {
		return nil, err
	}
	if ss, ok := col.([]string); ok {
		if len(ss) == 0 {
			return []string{}, nil
		}
		return slice.Nub(ss).([]string), nil
	}
	cv := reflect.ValueOf(col)
	vals := make([]string, cv.Len())
	for i := range vals {
		vals[i] = fmt.Sprint(cv.Index(i).Interface())
	}
	if len(vals) == 0 {
		return vals, nil
	}
	return slice.Nub(vals).([]string), nil
}

var canCardinal = map[reflect.Kind]bool{
	reflect.Float32: true,
	reflect.Float64: true,
	reflect.Int:     true,
	reflect.Int8:    true,
	reflect.Int16:   true,
	reflect.Int32:   true,
	reflect.Int64:   true,
	reflect.Uint:    true,
	reflect.Uintptr: true,
	reflect.Uint8:   true,
	reflect.Uint16:  true,
	reflect.Uint32:  true,
	reflect.Uint64:  true,
}

// floats converts a numeric or time column to []float64.
func floats(col table.Slice) ([]float64, error) {
	switch col := col.(type) {
	case []float64:
		return col, nil
	case []time.Time:
		xs := make([]float64, len(col))
		for i, t := range col {
			xs[i] = float64(t.UnixNano()) / 1e6
		}
		return xs, nil
	}
	if !canCardinal[reflect.TypeOf(col).Elem().Kind()] {
		return nil, fmt.Errorf("column of type %T is not numeric", col)
	}
	var xs []float64
	slice.Convert(&xs, col)
	return xs, nil
}

// FromRecords builds a table from rows of field values. Columns are
// sorted by name. A column whose values are all numbers becomes a
// []float64 with NaN for missing values; any other column becomes a
// []string with "" for missing values.
func FromRecords(rows []map[string]interface{}) *table.Table {
	keyset := map[string]bool{}
	for _, row := range rows {
		for k := range row {
			keyset[k] = true
		}
	}
	keys := make([]string, 0, len(keyset))
	for k := range keyset {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nan := math.NaN()
	tab := new(table.Builder)
	for _, key := range keys {
		numeric := true
		for _, row := range rows {
			if v, ok := row[key]; ok && v != nil {
				if _, ok := view.ToFloat(v); !ok {
					numeric = false
					break
				}
			}
		}

		if numeric {
			seq := make([]float64, len(rows))
			for i, row := range rows {
				seq[i] = nan
				if v, ok := row[key]; ok && v != nil {
					seq[i], _ = view.ToFloat(v)
				}
			}
			tab.Add(key, seq)
			continue
		}
		seq := make([]string, len(rows))
		for i, row := range rows {
			if v, ok := row[key]; ok && v != nil {
				seq[i] = fmt.Sprint(v)
			}
		}
		tab.Add(key, seq)
	}
	return tab.Done()
}
