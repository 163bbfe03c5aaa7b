package ldst

import (
	"errors"
	"fmt"

	"github.com/ezrec/ldst/translate"
)

var f = translate.From

var (
	// ErrSyntax is wrapped by every statement-level syntax error.
	ErrSyntax = errors.New(f("syntax error"))

	ErrMnemonicInvalid = fmt.Errorf("%w: %v", ErrSyntax, f("unknown mnemonic"))
	ErrOperandMissing  = fmt.Errorf("%w: %v", ErrSyntax, f("operand missing"))
	ErrOperandExtra    = fmt.Errorf("%w: %v", ErrSyntax, f("excessive arguments"))
	ErrLabelSyntax     = fmt.Errorf("%w: %v", ErrSyntax, f("label must be alone on its line"))
	ErrDefineSyntax    = fmt.Errorf("%w: %v", ErrSyntax, f("DEFINE expects a name and a value"))
	ErrSymbolName      = fmt.Errorf("%w: %v", ErrSyntax, f("invalid symbol name"))
)

// ErrSymbolDuplicate is returned when a symbol is defined twice.
type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("%v is already defined", string(err))
}

func (err ErrSymbolDuplicate) Is(target error) (ok bool) {
	_, ok = target.(ErrSymbolDuplicate)
	return
}

// ErrSymbolUndefined is returned when a symbol is not in the symbol table.
type ErrSymbolUndefined string

func (err ErrSymbolUndefined) Error() string {
	return f("symbol %v is not defined", string(err))
}

func (err ErrSymbolUndefined) Is(target error) (ok bool) {
	_, ok = target.(ErrSymbolUndefined)
	return
}

// ErrLiteralInvalid is returned when a word is not a valid integer literal.
type ErrLiteralInvalid string

func (err ErrLiteralInvalid) Error() string {
	return f("invalid literal %v", string(err))
}

func (err ErrLiteralInvalid) Is(target error) (ok bool) {
	_, ok = target.(ErrLiteralInvalid)
	return
}

// ErrLine locates a pass 1 error in the source.
type ErrLine struct {
	File   string
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	if len(err.File) == 0 {
		return f("line %v '%v' %v", err.LineNo, err.Line, err.Err)
	}
	return f("%v: line %v '%v' %v", err.File, err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// ErrAddress locates a pass 2 error by instruction address.
type ErrAddress struct {
	Address int
	Err     error
}

func (err *ErrAddress) Error() string {
	return err.Err.Error()
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}
