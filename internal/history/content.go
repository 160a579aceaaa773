// Package history holds the bounded, most-recent-first clipboard history and
// the content model stored in it.
//
// The Store is the only state shared between the poller, the coordinator and
// the control socket. It is guarded by a single mutex; every method is one
// short critical section and nothing is called out to while it is held.
package history

import "bytes"

// Content is a clipboard payload. The set of kinds is closed: Text and Image
// are the only implementations.
type Content interface {
	// Kind returns "text" or "image".
	Kind() string
	// Size returns the payload size in bytes.
	Size() int

	sealed()
}

// Text is UTF-8 clipboard text.
type Text string

// Image is a raw pixel buffer, kept as the opaque bytes the platform handed us.
type Image []byte

func (Text) Kind() string   { return "text" }
func (t Text) Size() int    { return len(t) }
func (Text) sealed()        {}
func (Image) Kind() string  { return "image" }
func (img Image) Size() int { return len(img) }
func (Image) sealed()       {}

// Equal reports whether a and b are the same kind with the same value.
func Equal(a, b Content) bool {
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Image:
		bv, ok := b.(Image)
		return ok && bytes.Equal(av, bv)
	}
	return a == nil && b == nil
}
