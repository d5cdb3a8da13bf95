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

import "devt.de/krotik/bp/token"

var (
	valueDeclarators = MatchSet(
		token.DECLINTEGER, token.DECLFLOAT, token.DECLCHARACTER, token.DECLSTRING,
		token.DECLBOOLEAN, token.DECLARRAY, token.DECLTUPLE, token.DECLDICTIONARY,
	)
	noValueDeclarators = MatchSet(token.DECLSTACK, token.DECLQUEUE, token.DECLPRIORITYQUEUE)
	binaryBoolOps      = MatchSet(token.KWAND, token.KWOR)
	unaryBoolOps       = MatchSet(token.KWNOT)
	allComparators     = MatchSet(
		token.KWISEQUALTO, token.KWISNOTEQUALTO,
		token.KWISGREATERTHAN, token.KWISLESSTHAN,
		token.KWISGREATERTHANOREQUALTO, token.KWISLESSTHANOREQUALTO,
	)
	name = MatchTag(token.IDENTIFIER)
	any  = MatchAny()
)

/*
Catalogue is the ordered list of structure graphs. Order is meaningful
(spec.md §4.2 "Transition selection") and must not be reshuffled:
collection literals and brackets first; assignment; declarations;
control-flow statements; OUTPUT; length; collection-operations; dictionary-
pair; binary boolean logic; unary boolean logic; boolean comparison;
arithmetic in the order -, +, *, /, //, %.
*/
var Catalogue = []*Graph{

	compile(rawGraph{
		opTag: token.NodeARRAYLIT, name: "array", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"C", MatchTag(token.LBRACK), NoCapture}},
			"B": {{"C", any, CaptureTogether}},
			"C": {
				{"D", MatchTag(token.RBRACK), NoCapture},
				{"B", MatchTag(token.COMMA), NoCapture},
				{"C", any, CaptureTogether},
			},
			"D": {{"E", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeTUPLELIT, name: "tuple", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"C", MatchTag(token.LANGLE), NoCapture}},
			"B": {{"C", any, CaptureTogether}},
			"C": {
				{"D", MatchTag(token.RANGLE), NoCapture},
				{"B", MatchTag(token.COMMA), NoCapture},
				{"C", any, CaptureTogether},
			},
			"D": {{"E", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDICTLIT, name: "dictionary", start: "A", end: "D",
		edges: map[string][]rawEdge{
			"A": {{"B", MatchTag(token.LBRACE), NoCapture}},
			"B": {
				{"C", MatchTag(token.RBRACE), NoCapture},
				{"B", MatchTag(token.COMMA), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeBRACKETS, name: "brackets", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", MatchTag(token.LPAREN), NoCapture}},
			"B": {{"C", any, CaptureTogether}},
			"C": {
				{"D", MatchTag(token.RPAREN), NoCapture},
				{"C", any, CaptureTogether},
			},
			"D": {{"E", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeASSIGNMENT, name: "assignment", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", name, CaptureAlone}},
			"B": {{"C", MatchTag(token.OPASSIGN), NoCapture}},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDECLWITHVALUE, name: "declaration-with-value", start: "A", end: "F",
		edges: map[string][]rawEdge{
			"A": {{"B", valueDeclarators, CaptureAlone}},
			"B": {{"C", name, CaptureAlone}},
			"C": {{"D", MatchTag(token.OPASSIGN), NoCapture}},
			"D": {{"E", any, CaptureTogether}},
			"E": {
				{"F", MatchTag(token.END), NoCapture},
				{"E", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDECLWITHOUTVALUE, name: "declaration-without-value", start: "A", end: "D",
		edges: map[string][]rawEdge{
			"A": {{"B", noValueDeclarators, CaptureAlone}},
			"B": {{"C", name, CaptureAlone}},
			"C": {{"D", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeIFSTMT, name: "if", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", MatchTag(token.KWIF), NoCapture}},
			"B": {{"C", any, CaptureTogether}},
			"C": {
				{"D", MatchTag(token.KWDO), NoCapture},
				{"C", any, CaptureTogether},
			},
			"D": {{"E", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeWHILESTMT, name: "while", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", MatchTag(token.KWWHILE), NoCapture}},
			"B": {{"C", any, CaptureTogether}},
			"C": {
				{"D", MatchTag(token.KWDO), NoCapture},
				{"C", any, CaptureTogether},
			},
			"D": {{"E", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeFORSTMT, name: "for", start: "A", end: "G",
		edges: map[string][]rawEdge{
			"A": {{"B", MatchTag(token.KWFOR), NoCapture}},
			"B": {{"C", name, CaptureAlone}},
			"C": {{"D", MatchTag(token.KWIN), NoCapture}},
			"D": {{"E", any, CaptureTogether}},
			"E": {
				{"F", MatchTag(token.KWDO), NoCapture},
				{"E", any, CaptureTogether},
			},
			"F": {{"G", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeOUTPUTCALL, name: "output", start: "A", end: "F",
		edges: map[string][]rawEdge{
			"A": {{"B", MatchTag(token.KWOUTPUT), NoCapture}},
			"B": {{"C", MatchTag(token.LPAREN), NoCapture}},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.RPAREN), NoCapture},
				{"C", MatchTag(token.COMMA), NoCapture},
				{"D", any, CaptureTogether},
			},
			"E": {{"F", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeLENGTHCHECK, name: "length", start: "A", end: "F",
		edges: map[string][]rawEdge{
			"A": {{"B", MatchTag(token.KWLENGTH), NoCapture}},
			"B": {{"C", MatchTag(token.LPAREN), NoCapture}},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.RPAREN), NoCapture},
				{"D", any, CaptureTogether},
			},
			"E": {{"F", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeREADBYINDEX, name: "read-by-index", start: "A", end: "H",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWREADBYINDEX), NoCapture}},
			"D": {{"E", MatchTag(token.LPAREN), NoCapture}},
			"E": {{"F", any, CaptureTogether}},
			"F": {
				{"G", MatchTag(token.RPAREN), NoCapture},
				{"F", any, CaptureTogether},
			},
			"G": {{"H", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeARRAYAPPEND, name: "append", start: "A", end: "H",
		edges: map[string][]rawEdge{
			"A": {{"B", name, CaptureAlone}},
			"B": {{"C", MatchTag(token.DOT), NoCapture}},
			"C": {{"D", MatchTag(token.KWAPPEND), NoCapture}},
			"D": {{"E", MatchTag(token.LPAREN), NoCapture}},
			"E": {{"F", any, CaptureTogether}},
			"F": {
				{"G", MatchTag(token.RPAREN), NoCapture},
				{"F", any, CaptureTogether},
			},
			"G": {{"H", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodePQADDITEM, name: "priorityqueue-add-item", start: "A", end: "J",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWADDITEM), NoCapture}},
			"D": {{"E", MatchTag(token.LPAREN), NoCapture}},
			"E": {{"F", any, CaptureTogether}},
			"F": {
				{"G", MatchTag(token.COMMA), NoCapture},
				{"F", any, CaptureTogether},
			},
			"G": {{"H", any, CaptureTogether}},
			"H": {
				{"I", MatchTag(token.RPAREN), NoCapture},
				{"H", any, CaptureTogether},
			},
			"I": {{"J", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeSQADDITEM, name: "stack-queue-add-item", start: "A", end: "H",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWADDITEM), NoCapture}},
			"D": {{"E", MatchTag(token.LPAREN), NoCapture}},
			"E": {{"F", any, CaptureTogether}},
			"F": {
				{"G", MatchTag(token.RPAREN), NoCapture},
				{"F", any, CaptureTogether},
			},
			"G": {{"H", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeSQREAD, name: "stack-queue-read-item", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWREADITEM), NoCapture}},
			"D": {{"E", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeSQPOP, name: "stack-queue-pop-item", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWPOPITEM), NoCapture}},
			"D": {{"E", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDICTINSERT, name: "dictionary-insert", start: "A", end: "H",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWINSERTPAIR), NoCapture}},
			"D": {{"E", MatchTag(token.LPAREN), NoCapture}},
			"E": {{"F", any, CaptureTogether}},
			"F": {
				{"G", MatchTag(token.RPAREN), NoCapture},
				{"F", any, CaptureTogether},
			},
			"G": {{"H", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDICTLOOKUP, name: "dictionary-lookup", start: "A", end: "H",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWLOOKUPVALUE), NoCapture}},
			"D": {{"E", MatchTag(token.LPAREN), NoCapture}},
			"E": {{"F", any, CaptureTogether}},
			"F": {
				{"G", MatchTag(token.RPAREN), NoCapture},
				{"F", any, CaptureTogether},
			},
			"G": {{"H", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDICTREMOVE, name: "dictionary-remove", start: "A", end: "H",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWREMOVEPAIR), NoCapture}},
			"D": {{"E", MatchTag(token.LPAREN), NoCapture}},
			"E": {{"F", any, CaptureTogether}},
			"F": {
				{"G", MatchTag(token.RPAREN), NoCapture},
				{"F", any, CaptureTogether},
			},
			"G": {{"H", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDICTKEYLIST, name: "dictionary-key-list", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.DOT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", MatchTag(token.KWLISTKEYS), NoCapture}},
			"D": {{"E", MatchTag(token.END), NoCapture}},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDICTPAIR, name: "dictionary-pair", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.COLON), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeBINBOOL, name: "binary-boolean-logic", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", binaryBoolOps, CaptureAlone},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeUNARYBOOL, name: "unary-boolean-logic", start: "A", end: "D",
		edges: map[string][]rawEdge{
			"A": {{"B", unaryBoolOps, CaptureAlone}},
			"B": {{"C", any, CaptureTogether}},
			"C": {
				{"D", MatchTag(token.END), NoCapture},
				{"C", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeBOOLCOMPARISON, name: "boolean-comparison", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", allComparators, CaptureAlone},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeSUB, name: "subtraction", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.OPMINUS), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeADD, name: "addition-or-concatenation", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.OPPLUS), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeMUL, name: "multiplication", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.OPTIMES), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeDIV, name: "division", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.OPDIV), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeINTDIV, name: "integer-division", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.OPDIVINT), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),

	compile(rawGraph{
		opTag: token.NodeMOD, name: "modulo", start: "A", end: "E",
		edges: map[string][]rawEdge{
			"A": {{"B", any, CaptureTogether}},
			"B": {
				{"C", MatchTag(token.OPMOD), NoCapture},
				{"B", any, CaptureTogether},
			},
			"C": {{"D", any, CaptureTogether}},
			"D": {
				{"E", MatchTag(token.END), NoCapture},
				{"D", any, CaptureTogether},
			},
		},
	}),
}
