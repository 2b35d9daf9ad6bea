package press

// FindPressed returns the first descendant of root, in depth-first
// pre-order, whose pre-pressed or pressed flag is set. Invisible elements
// are skipped along with their subtrees, and root itself is never a
// candidate. If the first flagged element is excluded, the whole search
// is abandoned and FindPressed returns nil even when a later element
// would match.
func FindPressed(root Element) Element {
	if root == nil {
		return nil
	}
	found, _ := searchChildren(root)
	return found
}

// searchChildren scans parent's children. aborted reports that the search
// reached an excluded flagged element and must not continue at any level.
func searchChildren(parent Element) (found Element, aborted bool) {
	parent.VisitChildren(func(child Element) bool {
		if child == nil || !child.Visible() {
			return true
		}
		if child.PrePressed() || child.Pressed() {
			if IsExcluded(child) {
				aborted = true
			} else {
				found = child
			}
			return false
		}
		found, aborted = searchChildren(child)
		return found == nil && !aborted
	})
	return found, aborted
}
