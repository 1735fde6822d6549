// internal/segment/doc.go

/*
Package segment turns raw path text into typed path segments.

A path line is a slash-separated sequence of tokens, e.g. `/Request/Items[]/Item#id`.
Each token decodes into exactly one Segment:

  - `#name`   an attribute reference
  - `name[]`  a repeatable node reference
  - `name`    a plain node reference

Decoding never fails; every string maps onto one of the three forms.
*/
package segment
