package domquery

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// Sentinel errors of the query engine. Errors returned by the engine wrap
// one of these and may be tested with errors.Is.
var (
	ErrParse              = errors.New("domquery: invalid selector")
	ErrUnknownPseudoClass = errors.New("domquery: unknown pseudo-class")
	ErrUnknownOperator    = errors.New("domquery: unknown operator")
	ErrNoRoot             = errors.New("domquery: no root node and no default document")
	ErrInvalidName        = errors.New("domquery: invalid registration name")
)

// ParseError is returned whenever a selector does not conform to the
// selector grammar. Rest holds the unparsed remainder of the selector,
// starting at the position where parsing got stuck.
type ParseError struct {
	Selector string
	Rest     string
	Msg      string
}

func (e *ParseError) Error() string {
	if e.Rest == "" {
		return fmt.Sprintf("domquery: invalid selector %q: %s", e.Selector, e.Msg)
	}
	return fmt.Sprintf("domquery: invalid selector %q: %s at %q", e.Selector, e.Msg, e.Rest)
}

// Unwrap makes ParseError match ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// UnknownPseudoClassError is returned at match time if a selector references
// a pseudo-class which is not present in the engine's registry.
type UnknownPseudoClassError struct {
	Name string
}

func (e *UnknownPseudoClassError) Error() string {
	return fmt.Sprintf("domquery: unknown pseudo-class %q", e.Name)
}

// Unwrap makes UnknownPseudoClassError match ErrUnknownPseudoClass.
func (e *UnknownPseudoClassError) Unwrap() error {
	return ErrUnknownPseudoClass
}

// UnknownOperatorError is returned at match time if an attribute or style
// token uses an operator which is not present in the engine's registry.
type UnknownOperatorError struct {
	Op string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("domquery: unknown operator %q", e.Op)
}

// Unwrap makes UnknownOperatorError match ErrUnknownOperator.
func (e *UnknownOperatorError) Unwrap() error {
	return ErrUnknownOperator
}

func parseError(sel, rest, msg string) error {
	err := &ParseError{Selector: sel, Rest: rest, Msg: msg}
	tracer().Errorf(err.Error())
	return err
}
