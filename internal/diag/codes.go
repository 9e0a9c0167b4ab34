package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002
	LexBadEscape   Code = 1003

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynExpectExpression  Code = 2003
	SynTrailingTokens    Code = 2004
	SynTooDeep           Code = 2005

	// Вычислительные (strict-режим)
	EvalInfo   Code = 3000
	EvalDomain Code = 3001

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:          "Unknown error",
		LexInfo:              "Lexical information",
		LexUnknownChar:       "Unknown character",
		LexBadNumber:         "Malformed number literal",
		LexBadEscape:         "Backslash must be followed by 'e' or 'pi'",
		SynInfo:              "Syntax information",
		SynUnexpectedToken:   "Unexpected token",
		SynUnclosedDelimiter: "Unclosed delimiter",
		SynExpectExpression:  "Expected expression",
		SynTrailingTokens:    "Trailing tokens after expression",
		SynTooDeep:           "Expression nesting too deep",
		EvalInfo:             "Evaluation information",
		EvalDomain:           "Argument outside function domain",
		ObsInfo:              "Observability information",
		ObsTimings:           "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
