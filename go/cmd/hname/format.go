// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
	"unicode"

	"github.com/Fantom-foundation/Wasmkit/go/sc"
)

type entry struct {
	Name  string
	Const string
	Value uint32
}

func makeEntries(names []string) ([]entry, error) {
	res := make([]entry, 0, len(names))
	seen := map[string]string{}
	for _, name := range names {
		ident := constName(name)
		if other, found := seen[ident]; found {
			return nil, fmt.Errorf("names %q and %q map to the same constant %s", other, name, ident)
		}
		seen[ident] = name
		res = append(res, entry{Name: name, Const: ident, Value: uint32(sc.Hn(name))})
	}
	return res, nil
}

// writeListing prints one line per name, holding the name and its hname.
func writeListing(out io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintf(out, "%s 0x%08x\n", name, uint32(sc.Hn(name))); err != nil {
			return err
		}
	}
	return nil
}

// writeGo emits a formatted Go file declaring one constant per name.
func writeGo(out io.Writer, pkg string, names []string) error {
	entries, err := makeEntries(names)
	if err != nil {
		return err
	}
	var buffer bytes.Buffer
	err = goTemplate.Execute(&buffer, struct {
		Package string
		Entries []entry
	}{pkg, entries})
	if err != nil {
		return err
	}
	code, err := format.Source(buffer.Bytes())
	if err != nil {
		return fmt.Errorf("generated invalid code: %w", err)
	}
	_, err = out.Write(code)
	return err
}

// constName derives an exported identifier from a name by dropping all
// characters not valid in identifiers and capitalizing the start of every
// word, e.g. "implements(ScHname,ScHname)->bool" becomes
// "HnImplementsScHnameScHnameBool".
func constName(name string) string {
	var builder strings.Builder
	builder.WriteString("Hn")
	upper := true
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		builder.WriteRune(r)
	}
	return builder.String()
}

var goTemplate = template.Must(template.New("").Parse(`// Code generated by hname. DO NOT EDIT.

package {{.Package}}

import "github.com/Fantom-foundation/Wasmkit/go/sc"

const (
{{- range .Entries }}
	{{.Const}} = sc.Hname({{printf "0x%08x" .Value}}) // {{printf "%q" .Name}}
{{- end }}
)
`))
