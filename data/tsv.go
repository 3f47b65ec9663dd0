// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// ReadTSV reads a tab-separated table with a header row. Columns whose
// non-empty cells all parse as numbers become []float64, with NaN for
// empty cells; other columns become []string.
func ReadTSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.LazyQuotes = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := recs[0], recs[1:]

	tab := new(table.Builder)
	for j, name := range header {
		if name == "" {
			return nil, fmt.Errorf("column %d has no name", j+1)
		}
		nums := make([]float64, len(rows))
		numeric := true
		for i, row := range rows {
			if row[j] == "" {
				nums[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(row[j], 64)
			if err != nil {
				numeric = false
				break
			}
			nums[i] = v
		}
		if numeric {
			tab.Add(name, nums)
			continue
		}
		strs := make([]string, len(rows))
		for i, row := range rows {
			strs[i] = row[j]
		}
		tab.Add(name, strs)
	}
	return tab.Done(), nil
}
