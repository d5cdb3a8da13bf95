/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package token defines the universal lexeme record produced by the lexer
and consumed by the structure-graph parser.
*/
package token

import "fmt"

/*
Tag identifies the kind of a Token. The enumeration is closed: every
token the lexer can produce, every sentinel the parser recognises and
every control-flow signal the evaluator emits has exactly one Tag.
*/
type Tag int

/*
Token tags.
*/
const (
	// Sentinels

	END Tag = iota
	ANY
	EMPTYLINE
	ERROR

	// Literals

	NUMBERINT
	NUMBERFLOAT
	CHARLIT
	STRINGLIT
	BOOLLIT
	IDENTIFIER

	// Punctuation

	COMMA
	COLON
	DOT

	// Brackets

	LPAREN
	RPAREN
	LBRACK
	RBRACK
	LBRACE
	RBRACE
	LANGLE
	RANGLE

	// Arithmetic operators

	OPASSIGN
	OPPLUS
	OPMINUS
	OPTIMES
	OPDIV
	OPDIVINT
	OPMOD

	// Boolean literal keywords

	KWTRUE
	KWFALSE

	// Declarators

	DECLINTEGER
	DECLFLOAT
	DECLCHARACTER
	DECLSTRING
	DECLBOOLEAN
	DECLARRAY
	DECLTUPLE
	DECLDICTIONARY
	DECLSTACK
	DECLQUEUE
	DECLPRIORITYQUEUE

	// Collection-operation keywords

	KWLENGTH
	KWREADBYINDEX
	KWAPPEND
	KWADDITEM
	KWREADITEM
	KWPOPITEM
	KWINSERTPAIR
	KWLOOKUPVALUE
	KWREMOVEPAIR
	KWLISTKEYS

	// Statement keywords

	KWDO
	KWIF
	KWELSE
	KWENDIF
	KWWHILE
	KWENDWHILE
	KWFOR
	KWIN
	KWENDFOR
	KWOUTPUT

	// Reserved but inactive (spec.md §1 Non-goals)

	KWDEFINE
	KWRETURN

	// Boolean logic

	KWAND
	KWOR
	KWNOT

	// Comparators

	KWISEQUALTO
	KWISNOTEQUALTO
	KWISGREATERTHAN
	KWISLESSTHAN
	KWISGREATERTHANOREQUALTO
	KWISLESSTHANOREQUALTO

	// Control-flow signals (evaluator -> runner)

	OPENIF
	SKIPIF
	ENDIF
	OPENWHILE
	SKIPWHILE
	ENDWHILE
	OPENFOR
	SKIPFOR
	ENDFOR
	OUTPUTREQUEST
	NONACTIONABLE
	ELSESIGNAL

	// One tag per virtual-value kind (carried as summary-token payloads)

	VALINTEGER
	VALFLOAT
	VALCHARACTER
	VALSTRING
	VALBOOLEAN
	VALTUPLE
	VALARRAY
	VALSTACK
	VALQUEUE
	VALPRIORITYQUEUE
	VALDICTIONARYPAIR
	VALDICTIONARY

	// AST operator-node tags, one per structure graph (spec.md §4.2)

	NodeBRACKETS
	NodeARRAYLIT
	NodeTUPLELIT
	NodeDICTLIT
	NodeASSIGNMENT
	NodeDECLWITHVALUE
	NodeDECLWITHOUTVALUE
	NodeIFSTMT
	NodeWHILESTMT
	NodeFORSTMT
	NodeOUTPUTCALL
	NodeLENGTHCHECK
	NodeREADBYINDEX
	NodeARRAYAPPEND
	NodePQADDITEM
	NodeSQADDITEM
	NodeSQREAD
	NodeSQPOP
	NodeDICTINSERT
	NodeDICTLOOKUP
	NodeDICTREMOVE
	NodeDICTKEYLIST
	NodeDICTPAIR
	NodeBINBOOL
	NodeUNARYBOOL
	NodeBOOLCOMPARISON
	NodeSUB
	NodeADD
	NodeMUL
	NodeDIV
	NodeINTDIV
	NodeMOD
)

var tagNames = map[Tag]string{
	END: "END", ANY: "ANY", EMPTYLINE: "EMPTYLINE", ERROR: "ERROR",
	NUMBERINT: "NUMBERINT", NUMBERFLOAT: "NUMBERFLOAT", CHARLIT: "CHARLIT",
	STRINGLIT: "STRINGLIT", BOOLLIT: "BOOLLIT", IDENTIFIER: "IDENTIFIER",
	COMMA: "COMMA", COLON: "COLON", DOT: "DOT",
	LPAREN: "LPAREN", RPAREN: "RPAREN", LBRACK: "LBRACK", RBRACK: "RBRACK",
	LBRACE: "LBRACE", RBRACE: "RBRACE", LANGLE: "LANGLE", RANGLE: "RANGLE",
	OPASSIGN: "=", OPPLUS: "+", OPMINUS: "-", OPTIMES: "*", OPDIV: "/",
	OPDIVINT: "//", OPMOD: "%",
	KWTRUE: "TRUE", KWFALSE: "FALSE",
	DECLINTEGER: "INTEGER", DECLFLOAT: "FLOAT", DECLCHARACTER: "CHARACTER",
	DECLSTRING: "STRING", DECLBOOLEAN: "BOOLEAN", DECLARRAY: "ARRAY",
	DECLTUPLE: "TUPLE", DECLDICTIONARY: "DICTIONARY", DECLSTACK: "STACK",
	DECLQUEUE: "QUEUE", DECLPRIORITYQUEUE: "PRIORITYQUEUE",
	KWLENGTH: "LENGTH", KWREADBYINDEX: "READBYINDEX", KWAPPEND: "APPEND",
	KWADDITEM: "ADDITEM", KWREADITEM: "READITEM", KWPOPITEM: "POPITEM",
	KWINSERTPAIR: "INSERTPAIR", KWLOOKUPVALUE: "LOOKUPVALUE",
	KWREMOVEPAIR: "REMOVEPAIR", KWLISTKEYS: "LISTKEYS",
	KWDO: "DO", KWIF: "IF", KWELSE: "ELSE", KWENDIF: "ENDIF",
	KWWHILE: "WHILE", KWENDWHILE: "ENDWHILE", KWFOR: "FOR", KWIN: "IN",
	KWENDFOR: "ENDFOR", KWOUTPUT: "OUTPUT",
	KWDEFINE: "DEFINE", KWRETURN: "RETURN",
	KWAND: "AND", KWOR: "OR", KWNOT: "NOT",
	KWISEQUALTO: "ISEQUALTO", KWISNOTEQUALTO: "ISNOTEQUALTO",
	KWISGREATERTHAN: "ISGREATERTHAN", KWISLESSTHAN: "ISLESSTHAN",
	KWISGREATERTHANOREQUALTO: "ISGREATERTHANOREQUALTO",
	KWISLESSTHANOREQUALTO:    "ISLESSTHANOREQUALTO",
	OPENIF:                   "OPEN_IF", SKIPIF: "SKIP_IF", ENDIF: "END_IF",
	OPENWHILE: "OPEN_WHILE", SKIPWHILE: "SKIP_WHILE", ENDWHILE: "END_WHILE",
	OPENFOR: "OPEN_FOR", SKIPFOR: "SKIP_FOR", ENDFOR: "END_FOR",
	OUTPUTREQUEST: "OUTPUT_REQUEST", NONACTIONABLE: "NON_ACTIONABLE",
	ELSESIGNAL: "ELSE",
	VALINTEGER: "VAL_INTEGER", VALFLOAT: "VAL_FLOAT", VALCHARACTER: "VAL_CHARACTER",
	VALSTRING: "VAL_STRING", VALBOOLEAN: "VAL_BOOLEAN", VALTUPLE: "VAL_TUPLE",
	VALARRAY: "VAL_ARRAY", VALSTACK: "VAL_STACK", VALQUEUE: "VAL_QUEUE",
	VALPRIORITYQUEUE: "VAL_PRIORITYQUEUE", VALDICTIONARYPAIR: "VAL_DICTIONARYPAIR",
	VALDICTIONARY: "VAL_DICTIONARY",

	NodeBRACKETS: "BRACKETS", NodeARRAYLIT: "ARRAY_LITERAL", NodeTUPLELIT: "TUPLE_LITERAL",
	NodeDICTLIT: "DICTIONARY_LITERAL", NodeASSIGNMENT: "ASSIGNMENT",
	NodeDECLWITHVALUE: "DECLARATION_WITH_VALUE", NodeDECLWITHOUTVALUE: "DECLARATION_WITHOUT_VALUE",
	NodeIFSTMT: "IF_STATEMENT", NodeWHILESTMT: "WHILE_STATEMENT", NodeFORSTMT: "FOR_STATEMENT",
	NodeOUTPUTCALL: "OUTPUT_CALL", NodeLENGTHCHECK: "LENGTH_CHECK", NodeREADBYINDEX: "READ_BY_INDEX",
	NodeARRAYAPPEND: "ARRAY_APPEND", NodePQADDITEM: "PRIORITYQUEUE_ADD_ITEM",
	NodeSQADDITEM: "STACK_QUEUE_ADD_ITEM", NodeSQREAD: "STACK_QUEUE_READ_ITEM",
	NodeSQPOP: "STACK_QUEUE_POP_ITEM", NodeDICTINSERT: "DICTIONARY_INSERT",
	NodeDICTLOOKUP: "DICTIONARY_LOOKUP", NodeDICTREMOVE: "DICTIONARY_REMOVE",
	NodeDICTKEYLIST: "DICTIONARY_KEY_LIST", NodeDICTPAIR: "DICTIONARY_PAIR",
	NodeBINBOOL: "BINARY_BOOLEAN_LOGIC", NodeUNARYBOOL: "UNARY_BOOLEAN_LOGIC",
	NodeBOOLCOMPARISON: "BOOLEAN_COMPARISON", NodeSUB: "SUBTRACTION", NodeADD: "ADDITION",
	NodeMUL: "MULTIPLICATION", NodeDIV: "DIVISION", NodeINTDIV: "INTEGER_DIVISION",
	NodeMOD: "MODULO",
}

/*
String returns a human-readable name for a Tag.
*/
func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Tag(%d)", int(t))
}

/*
ActionableRootNodes is the set of summary-token tags the runner
interprets as imperative instructions (spec.md Glossary).
*/
var ActionableRootNodes = map[Tag]bool{
	OPENIF: true, SKIPIF: true, ENDIF: true, ELSESIGNAL: true,
	OPENWHILE: true, SKIPWHILE: true, ENDWHILE: true,
	OPENFOR: true, SKIPFOR: true, ENDFOR: true,
	OUTPUTREQUEST: true,
}

/*
Value is any virtual-value instance. It is declared as an empty interface
here to avoid an import cycle between token and value; the value package
casts it back to its own concrete types.
*/
type Value interface{}

/*
Token is the universal lexeme record: a tag plus an optional payload. Payload
holds the raw lexeme text for literals and identifiers. Carrier holds an
evaluated virtual value or control-flow payload once a Token is reused as an
evaluator summary token; it is nil for tokens produced directly by the
lexer.
*/
type Token struct {
	Tag     Tag
	Payload string
	Carrier Value
}

/*
New creates a lexer-produced token (no carrier).
*/
func New(tag Tag, payload string) Token {
	return Token{Tag: tag, Payload: payload}
}

/*
WithCarrier creates a summary token carrying an evaluated value or
control-flow payload.
*/
func WithCarrier(tag Tag, carrier Value) Token {
	return Token{Tag: tag, Carrier: carrier}
}

/*
End is the sentinel token every token list is terminated with.
*/
var End = Token{Tag: END}

/*
String returns a readable representation of a Token.
*/
func (t Token) String() string {
	if t.Payload != "" {
		return fmt.Sprintf("%v(%q)", t.Tag, t.Payload)
	}
	return t.Tag.String()
}
