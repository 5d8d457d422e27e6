package routing_test

import (
	"fmt"

	"github.com/katalvlaran/meshnet/layout"
	"github.com/katalvlaran/meshnet/routing"
)

// ExampleFindRoute routes critical traffic across a ring with a chord
// shortcut: the deterministic planner takes the chord in one hop.
func ExampleFindRoute() {
	top := layout.NewTopology()
	ids, _ := layout.Ring(top, 12, 200)
	_ = layout.Chord(top, ids[0], ids[6])

	route, err := routing.FindRoute(top.Snapshot(), ids[0], ids[6], routing.PriorityCritical)
	if err != nil {
		fmt.Println("no route:", err)

		return
	}

	fmt.Println("strategy:", route.Strategy)
	fmt.Println("hops:", route.Hops())
	fmt.Printf("cost: %.0f\n", route.Cost)

	// Output:
	// strategy: shortest
	// hops: 1
	// cost: 400
}

// ExampleFindAllRoutes compares both strategies on the same mesh.
func ExampleFindAllRoutes() {
	top := layout.NewTopology()
	ids, _ := layout.Ring(top, 12, 200)
	_ = layout.Chord(top, ids[0], ids[6])

	routes, _ := routing.FindAllRoutes(top.Snapshot(), ids[0], ids[6],
		routing.WithSeed(1))
	for _, r := range routes {
		fmt.Printf("%s: %d hops\n", r.Strategy, r.Hops())
	}

	// Output:
	// shortest: 1 hops
	// ant-colony: 1 hops
}
