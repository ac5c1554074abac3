// Package docerrors classifies the failures of the render pipeline. Kind.HTTPStatus gives the
// server response code and Error prints the kind as the message prefix.
package docerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind says which pipeline stage rejected a document.
type Kind string

const (
	// KindValidation: nil document or report, or a bad request option.
	KindValidation Kind = "validation"
	// KindParse: JSON/YAML 不合法，或顶层不是对象。
	KindParse Kind = "parse"
	// KindRender: 章节已提取但无法输出，例如通用转储遇到 NaN。
	KindRender Kind = "render"
	// KindUnsupported: 未注册的输出格式或 Content-Type。
	KindUnsupported Kind = "unsupported"
	// KindInternal is what KindOf reports for errors that carry no Kind.
	KindInternal Kind = "internal"
)

// HTTPStatus is the response status for a request that failed with this kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindParse:
		return http.StatusBadRequest
	case KindUnsupported:
		return http.StatusUnsupportedMediaType
	}
	return http.StatusInternalServerError
}

// Error 给底层错误打上流水线阶段。
type Error struct {
	Kind Kind
	Err  error
}

// Error formats as "<kind>: <cause>".
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes the cause, so errors.Is matches ErrUnknownFormat and friends.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New tags err with kind. A nil err is replaced by one whose text is the kind.
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the Kind attached to err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	// ErrUnserializable is returned when the generic dump meets a cyclic or unrepresentable value.
	ErrUnserializable = errors.New("autosview: document is not serializable")
	// ErrUnknownFormat is wrapped by formats.Lookup for names outside the registry.
	ErrUnknownFormat = errors.New("autosview: unknown output format")
)
