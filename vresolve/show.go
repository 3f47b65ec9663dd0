// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/razsultana/genome-spy/view"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [spec...]",
	Short: "Print every scale resolution of each specification",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"-"}
		}
		for _, path := range args {
			root, err := load(path)
			if err != nil {
				return err
			}
			if len(args) > 1 {
				fmt.Fprintf(os.Stdout, "# %s\n", displayPath(path))
			}
			if err := show(os.Stdout, root); err != nil {
				return err
			}
		}
		return nil
	},
}

// show writes one line per resolution in the tree rooted at root.
func show(w io.Writer, root view.View) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "OWNER\tCHANNEL\tTYPE\tDOMAIN\tTITLE\tMEMBERS")
	err := view.Walk(root, func(v view.View) error {
		for _, r := range v.Resolutions() {
			d, err := r.Domain()
			if err != nil {
				return err
			}
			title, _ := r.Title()
			var members []string
			for _, m := range r.Members() {
				members = append(members, m.View.Name()+"."+string(m.Channel))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%q\t%s\n", v.Name(), r.Channel(), r.Type(), d, title, strings.Join(members, " "))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}
