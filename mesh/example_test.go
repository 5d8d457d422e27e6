package mesh_test

import (
	"fmt"

	"github.com/katalvlaran/meshnet/mesh"
)

// ExampleTopology shows the lifecycle of a tiny three-node mesh: create,
// fail, heal, recover, and read the aggregate statistics.
func ExampleTopology() {
	top := mesh.NewTopology(mesh.WithMaxRange(100))

	a := top.AddNode("alpha", 0, 0)
	b := top.AddNode("bravo", 40, 0)
	c := top.AddNode("charlie", 80, 0)

	fmt.Println("online:", top.Stats().OnlineCount)

	// bravo dies; the mesh heals around it.
	top.SimulateFailure(b.ID)
	fmt.Println("alpha-charlie reachable:", top.Reachable(a.ID, c.ID))

	// bravo returns and rejoins its neighborhood.
	top.SimulateRecovery(b.ID)
	fmt.Println("online:", top.Stats().OnlineCount)

	// Output:
	// online: 3
	// alpha-charlie reachable: true
	// online: 3
}
