package config

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// dependencyOrder orders resource names so every resource comes after the
// resources it references. Returns an error naming the resources involved if
// the references form a cycle.
func dependencyOrder(deps map[string][]string) ([]string, error) {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	ids := make(map[string]int64, len(names))
	g := simple.NewDirectedGraph()
	for i, name := range names {
		ids[name] = int64(i)
		g.AddNode(simple.Node(i))
	}
	for name, dd := range deps {
		for _, dep := range dd {
			if dep == name {
				return nil, errors.Errorf("resource %q references itself", name)
			}
			from, ok := ids[dep]
			if !ok {
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(from), simple.Node(ids[name])))
		}
	}

	sorted, err := topo.Sort(g)
	if err != nil {
		un, ok := err.(topo.Unorderable)
		if !ok {
			return nil, err
		}
		var cycle []string
		for _, nodes := range un {
			for _, n := range nodes {
				cycle = append(cycle, names[n.ID()])
			}
		}
		sort.Strings(cycle)
		return nil, errors.Errorf("dependency cycle between %s", strings.Join(cycle, ", "))
	}

	out := make([]string, len(sorted))
	for i, n := range sorted {
		out[i] = names[n.ID()]
	}
	return out, nil
}
