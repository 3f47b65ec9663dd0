// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/razsultana/genome-spy/view"
	"github.com/spf13/cobra"
)

var flagExprs []string

var queryCmd = &cobra.Command{
	Use:   "query -e expr [-e expr...] spec",
	Short: "Query resolutions of a specification",
	Long: `Query resolutions of a specification.

Each expression has the form "op channel [view] [arg]", split like a
shell command line so view names may be quoted. Without a view, the
root view is queried. Operations are:

  domain   the merged domain
  scale    the materialized scale
  title    the resolved title
  ticks    up to arg (default 5) tick labels`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := load(args[0])
		if err != nil {
			return err
		}
		for _, expr := range flagExprs {
			if err := query(os.Stdout, root, expr); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringArrayVarP(&flagExprs, "expr", "e", nil, "query `expression` (repeatable)")
}

// query evaluates expr against the resolved tree rooted at root and
// writes the result to w.
func query(w io.Writer, root view.View, expr string) error {
	words, err := shellquote.Split(expr)
	if err != nil {
		return fmt.Errorf("%q: %v", expr, err)
	}
	if len(words) < 2 || len(words) > 4 {
		return fmt.Errorf("%q: want op channel [view] [arg]", expr)
	}
	op, ch := words[0], view.Channel(words[1])
	if !ch.Valid() {
		return fmt.Errorf("%q: unknown channel %q", expr, ch)
	}

	v := root
	if len(words) >= 3 {
		v = view.Find(root, words[2])
		if v == nil {
			return fmt.Errorf("%q: no view named %q", expr, words[2])
		}
	}
	r := v.Resolution(ch)
	if r == nil {
		fmt.Fprintf(w, "%s %s: no resolution\n", v.Name(), ch)
		return nil
	}

	switch op {
	case "domain":
		d, err := r.Domain()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s: %s\n", v.Name(), ch, d)

	case "scale":
		s, err := r.Scale()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %s: %s\n", v.Name(), ch, s)

	case "title":
		title, _ := r.Title()
		fmt.Fprintf(w, "%s %s: %q\n", v.Name(), ch, title)

	case "ticks":
		n := 5
		if len(words) == 4 {
			n, err = strconv.Atoi(words[3])
			if err != nil || n < 1 {
				return fmt.Errorf("%q: bad tick count %q", expr, words[3])
			}
		}
		s, err := r.Scale()
		if err != nil {
			return err
		}
		_, _, labels := s.Ticks(n)
		fmt.Fprintf(w, "%s %s: %s\n", v.Name(), ch, strings.Join(labels, " "))

	default:
		return fmt.Errorf("%q: unknown operation %q", expr, op)
	}
	return nil
}
