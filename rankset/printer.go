package rankset

import "strings"

// String renders the tree sideways, one "(key,size,color)" tuple per
// node, right subtree above its parent and left subtree below, with
// '|' marking parent-child junctions. Diagnostic only; the layout is
// not part of any contract.
func (set *RankSet[K]) String() string {
	if set.root == set.niln {
		return "(empty_tree)"
	}
	var sb strings.Builder
	prefix := []byte{' '}
	set.print(&sb, set.root, &prefix)
	sb.WriteString("(key,size,color)")
	return sb.String()
}

func (set *RankSet[K]) print(sb *strings.Builder, x *rsNode[K], prefix *[]byte) {
	p := *prefix
	prefixEnd := p[len(p)-1]
	prefixSize := len(p)
	str := x.str()

	// While rendering the right subtree the connector column of this
	// node is blank for right children and inherited for left ones;
	// it flips for the left subtree below.
	if x.parent.right == x {
		p[prefixSize-1] = ' '
	} else {
		p[prefixSize-1] = prefixEnd
	}
	for i := 0; i < len(str)-1; i++ {
		p = append(p, ' ')
	}
	p[len(p)-1] = '|'
	*prefix = p

	if x.right != set.niln {
		set.print(sb, x.right, prefix)
	}

	p = *prefix
	sb.Write(p[:len(p)-len(str)])
	sb.WriteString(str)
	sb.WriteByte('\n')

	if x.parent.right == x {
		p[prefixSize-1] = prefixEnd
	} else {
		p[prefixSize-1] = ' '
	}

	if x.left != set.niln {
		set.print(sb, x.left, prefix)
	}
	*prefix = (*prefix)[:len(*prefix)-len(str)+1]
}
