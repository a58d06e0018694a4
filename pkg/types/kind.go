// Package types defines the failure taxonomy shared by retry policies
package types

import (
	"context"
	"errors"
)

// FailureKind classifies why an attempt failed. Kinds form a hierarchy:
// each kind may declare a parent, and predicates match a kind or any of
// its descendants via IsA.
type FailureKind struct {
	name   string
	parent *FailureKind
}

// Built-in kinds. KindFailure is the root of the hierarchy; every other
// kind is a descendant of it.
var (
	// KindFailure is the root kind covering any attempt failure
	KindFailure = &FailureKind{name: "failure"}

	// KindTimeout marks a per-attempt time budget violation
	KindTimeout = &FailureKind{name: "timeout", parent: KindFailure}

	// KindCancelled marks a cancellation of the surrounding context
	KindCancelled = &FailureKind{name: "cancelled", parent: KindFailure}
)

// NewFailureKind creates a user-defined kind. A nil parent attaches the
// kind directly under KindFailure.
func NewFailureKind(name string, parent *FailureKind) *FailureKind {
	if parent == nil {
		parent = KindFailure
	}
	return &FailureKind{name: name, parent: parent}
}

// Name returns the kind name
func (k *FailureKind) Name() string {
	return k.name
}

// Parent returns the parent kind, or nil for the root
func (k *FailureKind) Parent() *FailureKind {
	return k.parent
}

// IsA reports whether k is the given kind or one of its descendants
func (k *FailureKind) IsA(ancestor *FailureKind) bool {
	for cur := k; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

func (k *FailureKind) String() string {
	return k.name
}

// FailureKinder is implemented by errors that carry an explicit kind
type FailureKinder interface {
	FailureKind() *FailureKind
}

// KindOf classifies an error into a failure kind. Errors carrying an
// explicit kind win; context cancellation and timeout-flavored errors are
// recognized next; everything else is a plain KindFailure.
func KindOf(err error) *FailureKind {
	if err == nil {
		return nil
	}

	var kinder FailureKinder
	if errors.As(err, &kinder) {
		return kinder.FailureKind()
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCancelled
	}

	// net-style timeout errors
	var timeouter interface{ Timeout() bool }
	if errors.As(err, &timeouter) && timeouter.Timeout() {
		return KindTimeout
	}

	return KindFailure
}
