// Package book builds the chapter tree of a note collection and renders it
// as a SUMMARY.md table of contents.
package book

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

const pathSegmentSeparator = "/"

// Node is one chapter of the book. The root node carries the book title; every
// other node is named after the directory segment it represents. Files holds
// the full relative paths of the documents directly inside the chapter, and
// Children the subchapters, both in first-appearance order.
type Node struct {
	Name     string
	Files    []string
	Children []*Node

	childrenByName map[string]*Node
}

// MalformedPathError reports a single input path that cannot be placed into
// the chapter tree.
type MalformedPathError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (malformedPath *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path %q: %s", malformedPath.Path, malformedPath.Reason)
}

// Build constructs the chapter tree for the given title from an ordered
// sequence of forward-slash relative paths. Child and file ordering follows
// the first appearance of each name in the input; nothing is sorted or
// normalized. Malformed entries (an empty path, or a path containing an empty
// segment) are rejected individually and reported through the combined error
// while the remaining entries still build, so the returned tree is always
// usable.
func Build(title string, paths []string) (*Node, error) {
	rootNode := newNode(title)
	var buildErrors error
	for _, relativePath := range paths {
		if validationError := validatePath(relativePath); validationError != nil {
			buildErrors = multierr.Append(buildErrors, validationError)
			continue
		}
		rootNode.insert(strings.Split(relativePath, pathSegmentSeparator), relativePath)
	}
	return rootNode, buildErrors
}

func newNode(name string) *Node {
	return &Node{Name: name, childrenByName: make(map[string]*Node)}
}

func validatePath(relativePath string) error {
	if relativePath == "" {
		return &MalformedPathError{Path: relativePath, Reason: "path is empty"}
	}
	for _, segment := range strings.Split(relativePath, pathSegmentSeparator) {
		if segment == "" {
			return &MalformedPathError{Path: relativePath, Reason: "path contains an empty segment"}
		}
	}
	return nil
}

// insert consumes one path segment per level. The final segment always lands
// in Files as the full original path so rendered links stay resolvable from
// the book root regardless of depth.
func (node *Node) insert(segments []string, fullPath string) {
	if len(segments) == 1 {
		node.Files = append(node.Files, fullPath)
		return
	}
	node.child(segments[0]).insert(segments[1:], fullPath)
}

// child returns the existing child with the given name or appends a new one
// at the end of the children sequence. Names are case-sensitive.
func (node *Node) child(name string) *Node {
	if existingChild, found := node.childrenByName[name]; found {
		return existingChild
	}
	createdChild := newNode(name)
	node.childrenByName[name] = createdChild
	node.Children = append(node.Children, createdChild)
	return createdChild
}
