package xmldom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
)

var ErrUnbalancedEnd = errors.New("xmldom: End called with no open element")

// Writer emits namespace-qualified XML elements. Namespaces registered via
// DeclarePrefix are written with their prefix; undeclared namespaces fall
// back to an inline xmlns attribute. The first write error is sticky: later
// calls become no-ops and Err reports it.
type Writer struct {
	w        io.Writer
	prefixes map[string]string
	stack    []string
	err      error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:        w,
		prefixes: make(map[string]string),
	}
}

// DeclarePrefix binds a namespace URI to a prefix for subsequent writes.
// Rebinding a namespace replaces the earlier prefix.
func (w *Writer) DeclarePrefix(prefix, namespace string) {
	if prefix == "" || namespace == "" {
		return
	}
	w.prefixes[namespace] = prefix
}

// WriteElement writes <prefix:local>text</prefix:local>. The text is
// XML-escaped. Empty text produces an empty element body, not a skip;
// callers decide whether unset fields are written at all.
func (w *Writer) WriteElement(namespace, local, text string) {
	w.WriteElementAttrs(namespace, local, text, nil)
}

// WriteElementAttrs is WriteElement with attributes on the start tag.
func (w *Writer) WriteElementAttrs(namespace, local, text string, attrs []xml.Attr) {
	w.Start(namespace, local, attrs...)
	w.writeText(text)
	w.End()
}

// Start opens an element; every Start must be paired with an End.
func (w *Writer) Start(namespace, local string, attrs ...xml.Attr) {
	if w.err != nil {
		return
	}
	if local == "" {
		w.err = errors.New("xmldom: empty element name")
		return
	}

	qname, nsAttr := w.qualify(namespace, local)

	w.print("<" + qname)
	if nsAttr != "" {
		w.print(nsAttr)
	}
	for _, attr := range attrs {
		w.print(fmt.Sprintf(" %s=\"%s\"", attr.Name.Local, html.EscapeString(attr.Value)))
	}
	w.print(">")
	w.stack = append(w.stack, qname)
}

// End closes the most recently opened element.
func (w *Writer) End() {
	if w.err != nil {
		return
	}
	if len(w.stack) == 0 {
		w.err = ErrUnbalancedEnd
		return
	}
	qname := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.print("</" + qname + ">")
}

// Err returns the first error encountered while writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) qualify(namespace, local string) (string, string) {
	if namespace == "" {
		return local, ""
	}
	if prefix, ok := w.prefixes[namespace]; ok {
		return prefix + ":" + local, ""
	}
	return local, fmt.Sprintf(" xmlns=\"%s\"", html.EscapeString(namespace))
}

func (w *Writer) writeText(text string) {
	if w.err != nil || text == "" {
		return
	}
	if err := xml.EscapeText(&stickyWriter{w: w}, []byte(text)); err != nil && w.err == nil {
		w.err = err
	}
}

func (w *Writer) print(s string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.w, s); err != nil {
		w.err = err
	}
}

type stickyWriter struct {
	w *Writer
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.w.err != nil {
		return 0, s.w.err
	}
	n, err := s.w.w.Write(p)
	if err != nil {
		s.w.err = err
	}
	return n, err
}
