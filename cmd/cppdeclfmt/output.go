package main

import (
	"fmt"
	"io"

	"github.com/bitly/go-simplejson"
	"github.com/google/uuid"

	"github.com/gaarutyunov/cppdecl/pkg/ast"
	"github.com/gaarutyunov/cppdecl/pkg/visitors"
)

// printText writes each result as an indented tree via visitors.Dump,
// grounded on the teacher's DebugPrinter-based example output.
func printText(w io.Writer, results []lineResult) {
	for _, r := range results {
		fmt.Fprintf(w, "# %s\n", r.line)
		if r.err != nil {
			fmt.Fprintf(w, "error: %v\n\n", r.err)
			continue
		}
		d := visitors.NewDump()
		r.decl.Accept(d)
		fmt.Fprint(w, d.String())
		fmt.Fprintln(w)
	}
}

// printJSON builds a JSON document for a batch of results using
// simplejson.New rather than encoding/json struct tags: the AST is a
// tagged-union node family with no single struct shape, so each entry's
// body is assembled key-by-key instead. Every run is stamped with a
// fresh request ID so concurrent --watch reparses can be told apart in a
// build log that interleaves their output.
func printJSON(w io.Writer, results []lineResult) error {
	root := simplejson.New()
	root.Set("request_id", uuid.NewString())

	entries := make([]any, 0, len(results))
	for _, r := range results {
		entry := simplejson.New()
		entry.Set("line", r.line)
		if r.err != nil {
			entry.Set("error", r.err.Error())
		} else {
			d := visitors.NewDump()
			r.decl.Accept(d)
			entry.Set("tree", d.String())
			entry.Set("warnings", checkerWarnings(r.decl))
		}
		entries = append(entries, entry)
	}
	root.Set("results", entries)

	data, err := root.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// checkerWarnings runs the structural-invariant checker over decl and
// flattens its findings to strings for the JSON report.
func checkerWarnings(decl *ast.Declaration) []string {
	c := visitors.CheckDeclaration(decl)
	warnings := make([]string, 0, len(c.Errors)+len(c.Warnings))
	for _, e := range c.Errors {
		warnings = append(warnings, "error: "+e.Error())
	}
	for _, w := range c.Warnings {
		warnings = append(warnings, "warning: "+w.Error())
	}
	return warnings
}
