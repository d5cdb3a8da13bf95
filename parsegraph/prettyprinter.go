/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parsegraph

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"devt.de/krotik/common/errorutil"

	"devt.de/krotik/bp/ast"
	"devt.de/krotik/bp/token"
)

/*
prettyPrinterMap holds one template per operator tag/arity pair, keyed
"<tag>_<numChildren>", mirroring the template-per-node-shape idiom this
ecosystem's pretty printer uses.
*/
var prettyPrinterMap map[string]*template.Template

func key(tag token.Tag, arity int) string {
	return fmt.Sprintf("%s_%d", tag, arity)
}

func init() {
	prettyPrinterMap = map[string]*template.Template{
		key(token.NodeBRACKETS, 1):   tmpl("brackets", "({{.c1}})"),
		key(token.NodeARRAYLIT, 0):   tmpl("array0", "[]"),
		key(token.NodeTUPLELIT, 0):   tmpl("tuple0", "<>"),
		key(token.NodeDICTLIT, 0):    tmpl("dict0", "{}"),
		key(token.NodeASSIGNMENT, 2): tmpl("assign", "{{.c1}} = {{.c2}}"),

		key(token.NodeDECLWITHVALUE, 3):    tmpl("declwv", "{{.c1}} {{.c2}} = {{.c3}}"),
		key(token.NodeDECLWITHOUTVALUE, 2): tmpl("declwov", "{{.c1}} {{.c2}}"),

		key(token.NodeIFSTMT, 1):    tmpl("if", "IF {{.c1}} DO"),
		key(token.NodeWHILESTMT, 1): tmpl("while", "WHILE {{.c1}} DO"),
		key(token.NodeFORSTMT, 2):   tmpl("for", "FOR {{.c1}} IN {{.c2}} DO"),

		key(token.NodeLENGTHCHECK, 1): tmpl("length", "LENGTH({{.c1}})"),
		key(token.NodeREADBYINDEX, 2): tmpl("readbyindex", "{{.c1}}.READBYINDEX({{.c2}})"),
		key(token.NodeARRAYAPPEND, 2): tmpl("append", "{{.c1}}.APPEND({{.c2}})"),
		key(token.NodePQADDITEM, 3):   tmpl("pqadd", "{{.c1}}.ADDITEM({{.c2}}, {{.c3}})"),
		key(token.NodeSQADDITEM, 2):   tmpl("sqadd", "{{.c1}}.ADDITEM({{.c2}})"),
		key(token.NodeSQREAD, 1):      tmpl("sqread", "{{.c1}}.READITEM"),
		key(token.NodeSQPOP, 1):       tmpl("sqpop", "{{.c1}}.POPITEM"),
		key(token.NodeDICTINSERT, 2):  tmpl("dictinsert", "{{.c1}}.INSERTPAIR({{.c2}})"),
		key(token.NodeDICTLOOKUP, 2):  tmpl("dictlookup", "{{.c1}}.LOOKUPVALUE({{.c2}})"),
		key(token.NodeDICTREMOVE, 2):  tmpl("dictremove", "{{.c1}}.REMOVEPAIR({{.c2}})"),
		key(token.NodeDICTKEYLIST, 1): tmpl("dictkeylist", "{{.c1}}.LISTKEYS"),
		key(token.NodeDICTPAIR, 2):    tmpl("dictpair", "{{.c1}}:{{.c2}}"),

		key(token.NodeBINBOOL, 3):        tmpl("binbool", "{{.c1}} {{.c2}} {{.c3}}"),
		key(token.NodeUNARYBOOL, 2):      tmpl("unarybool", "{{.c1}} {{.c2}}"),
		key(token.NodeBOOLCOMPARISON, 3): tmpl("boolcmp", "{{.c1}} {{.c2}} {{.c3}}"),

		key(token.NodeSUB, 2):    tmpl("sub", "{{.c1}} - {{.c2}}"),
		key(token.NodeADD, 2):    tmpl("add", "{{.c1}} + {{.c2}}"),
		key(token.NodeMUL, 2):    tmpl("mul", "{{.c1}} * {{.c2}}"),
		key(token.NodeDIV, 2):    tmpl("div", "{{.c1}} / {{.c2}}"),
		key(token.NodeINTDIV, 2): tmpl("intdiv", "{{.c1}} // {{.c2}}"),
		key(token.NodeMOD, 2):    tmpl("mod", "{{.c1}} % {{.c2}}"),
	}
}

func tmpl(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(body))
}

/*
PrettyPrint renders an AST back to BP surface syntax (spec.md §8
"round-trip law"). Leaves render their own token text; operator nodes
render via prettyPrinterMap; a variadic-arity operator (array/tuple/
dictionary literal, OUTPUT) is rendered by joining its children with
", " inside the construct's own brackets, for any number of children,
since a per-arity template map cannot cover it.
*/
func PrettyPrint(n *ast.Node) (string, error) {
	if n.IsLeaf {
		return leafText(n), nil
	}

	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		s, err := PrettyPrint(c)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	switch n.Tag {
	case token.NodeARRAYLIT:
		return "[" + strings.Join(parts, ", ") + "]", nil
	case token.NodeTUPLELIT:
		return "<" + strings.Join(parts, ", ") + ">", nil
	case token.NodeDICTLIT:
		return "{" + strings.Join(parts, ", ") + "}", nil
	case token.NodeOUTPUTCALL:
		return "OUTPUT(" + strings.Join(parts, ", ") + ")", nil
	}

	temp, ok := prettyPrinterMap[key(n.Tag, len(parts))]
	errorutil.AssertTrue(ok, fmt.Sprintf("no pretty-print template for %v (arity %d)", n.Tag, len(parts)))

	params := make(map[string]string, len(parts))
	for i, p := range parts {
		params[fmt.Sprintf("c%d", i+1)] = p
	}

	var buf bytes.Buffer
	errorutil.AssertOk(temp.Execute(&buf, params))
	return buf.String(), nil
}

func leafText(n *ast.Node) string {
	t := n.Token
	switch t.Tag {
	case token.NUMBERINT, token.NUMBERFLOAT, token.IDENTIFIER, token.BOOLLIT:
		return t.Payload
	case token.CHARLIT:
		return "'" + t.Payload + "'"
	case token.STRINGLIT:
		return `"` + t.Payload + `"`
	case token.EMPTYLINE:
		return ""
	}
	return t.Tag.String()
}
