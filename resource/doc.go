// Package resource models the four record kinds a Document's resource
// map can hold. Their internal layouts are deliberately out of scope:
// the codec treats each one as an opaque tag payload it reads and
// re-emits byte-for-byte, keyed by id and tag id.
package resource
