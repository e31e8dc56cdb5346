// Branch decomposition: N-input graphs -> minimal set of basis graphs.
package muxgraph

// branchShape keys the unique basis shapes of a graph's stage nodes.
type branchShape struct {
	fanIn int
	tree  bool
}

// BuildBranchGraphs decomposes the graph into the minimal set of
// single-level, single-output basis graphs whose composition reproduces the
// original input->output reachability: one basis shape per distinct
// (fan-in, selection style) found among the stage nodes.
//
// Fan-in-one nodes are plain wires, not multiplexers, and produce no basis
// graph. Iteration over nodes is in ascending NodeID order, so the returned
// sequence is deterministic for a given graph.
func (g *MuxGraph) BuildBranchGraphs() []*MuxGraph {
	seen := make(map[branchShape]struct{})
	var out []*MuxGraph

	// Stage nodes follow the input nodes in the id space.
	for nid := len(g.inputs); nid < len(g.nodes); nid++ {
		in := g.nodes[nid].in
		if len(in) < 2 {
			continue
		}
		tree := false
		for _, eid := range in {
			if g.edges[eid].UseInvertedMem {
				tree = true
				break
			}
		}
		shape := branchShape{fanIn: len(in), tree: tree}
		if _, dup := seen[shape]; dup {
			continue
		}
		seen[shape] = struct{}{}
		if tree {
			out = append(out, buildStages(shape.fanIn, 2, true))
		} else {
			out = append(out, buildStages(shape.fanIn, shape.fanIn, false))
		}
	}

	return out
}
