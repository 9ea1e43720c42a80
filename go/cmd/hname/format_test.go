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
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestWriteListing_PrintsNameAndHname(t *testing.T) {
	var out bytes.Buffer
	if err := writeListing(&out, []string{"init", "add"}); err != nil {
		t.Fatalf("failed to write listing: %v", err)
	}
	if want, got := "init 0x1f44d644\nadd 0xa90e054b\n", out.String(); want != got {
		t.Errorf("unexpected listing, wanted %q, got %q", want, got)
	}
}

func TestConstName(t *testing.T) {
	tests := map[string]string{
		"init":                              "HnInit",
		"getTotal":                          "HnGetTotal",
		"withdraw_all":                      "HnWithdrawAll",
		"implements(ScHname,ScHname)->bool": "HnImplementsScHnameScHnameBool",
		"":                                  "Hn",
	}
	for name, want := range tests {
		if got := constName(name); want != got {
			t.Errorf("unexpected constant name for %q, wanted %s, got %s", name, want, got)
		}
	}
}

func TestWriteGo_EmitsValidConstants(t *testing.T) {
	var out bytes.Buffer
	if err := writeGo(&out, "contracts", []string{"init", "implements(ScHname,ScHname)->bool"}); err != nil {
		t.Fatalf("failed to write Go code: %v", err)
	}
	code := out.String()

	file, err := parser.ParseFile(token.NewFileSet(), "hnames.go", code, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}
	if want, got := "contracts", file.Name.Name; want != got {
		t.Errorf("unexpected package, wanted %s, got %s", want, got)
	}
	for _, want := range []string{
		"// Code generated by hname. DO NOT EDIT.",
		"sc.Hname(0x1f44d644)",
		"sc.Hname(0xeae53bfb)",
		"HnInit",
		"HnImplementsScHnameScHnameBool",
		`"implements(ScHname,ScHname)->bool"`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code lacks %q:\n%s", want, code)
		}
	}
}

func TestWriteGo_RejectsCollidingConstants(t *testing.T) {
	var out bytes.Buffer
	err := writeGo(&out, "contracts", []string{"get_total", "getTotal"})
	if err == nil || !strings.Contains(err.Error(), "HnGetTotal") {
		t.Errorf("expected collision error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing must be written on errors, got %q", out.String())
	}
}
