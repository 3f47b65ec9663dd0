// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/table"
	"github.com/razsultana/genome-spy/data"
)

func (d *Data) load(baseDir string) (*table.Table, error) {
	switch {
	case d.URL != "" && d.Values != nil:
		return nil, fmt.Errorf("both values and url")
	case d.URL != "":
		path := d.URL
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		t, err := data.ReadTSV(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", d.URL, err)
		}
		return t, nil
	}

	rows := make([]map[string]interface{}, len(d.Values))
	for i, v := range d.Values {
		switch v := v.(type) {
		case map[string]interface{}:
			rows[i] = v
		case map[interface{}]interface{}:
			row := make(map[string]interface{}, len(v))
			for k, x := range v {
				row[fmt.Sprint(k)] = x
			}
			rows[i] = row
		case []interface{}:
			return nil, fmt.Errorf("value %d is a list", i)
		default:
			rows[i] = map[string]interface{}{"data": v}
		}
	}
	return data.FromRecords(rows), nil
}
