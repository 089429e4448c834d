package world_test

import (
	"fmt"

	"github.com/katalvlaran/redstone/world"
)

// ExampleWorld places a torch and a short dust run on a stone floor,
// lets adjacency wire the circuit, and reads the settled powers.
func ExampleWorld() {
	w := world.New()
	for z := 0; z < 3; z++ {
		w.Set(world.Vec3{X: 0, Y: 0, Z: z}, world.Stone())
	}
	w.Set(world.Vec3{X: 0, Y: 1, Z: 0}, world.Torch(world.FacingNone))
	w.Set(world.Vec3{X: 0, Y: 1, Z: 1}, world.Dust())
	w.Set(world.Vec3{X: 0, Y: 1, Z: 2}, world.Dust())

	if err := w.Solve(); err != nil {
		fmt.Println("solve:", err)
		return
	}

	for z := 0; z < 3; z++ {
		n := w.Node(world.Vec3{X: 0, Y: 1, Z: z})
		fmt.Printf("%s: power %d\n", n.Name(), n.RedState().Power())
	}
	// Output:
	// torch (0, 1, 0): power 16
	// dust (0, 1, 1): power 15
	// dust (0, 1, 2): power 14
}
