// Package xmldecode is a small pull-based combinator library that turns a
// forward-only XML event stream into typed values without buffering the
// document.
//
// A Decoder[T] decodes the content of the element the Cursor is currently
// inside; it never consumes that element's end tag. The building blocks are:
//
//   - Characters: the element's text content, used by every scalar decoder.
//   - Element: enter a named child, run a body decoder, consume the end tag.
//   - FoldElements: visit each child element in turn, folding it into an
//     accumulator. Children a step does not consume are skipped, so unknown
//     tags added by the service never break decoding.
//   - Struct: decode a record through its Fields, Attributes or Content
//     methods. Absent children leave the zero value in place.
//   - List, Append, Optional, Into: repeated and optional values, with or
//     without a wrapping parent element.
//
// Tag matching uses local names only; namespaces are ignored.
package xmldecode
