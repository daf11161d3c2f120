package main

import (
	"fmt"
	"log"

	"github.com/samuelfneumann/gridworlds/environment/envconfig"
	"github.com/samuelfneumann/gridworlds/experiment"
	"github.com/samuelfneumann/gridworlds/experiment/trackers"
	"github.com/samuelfneumann/gridworlds/planning"
	"github.com/samuelfneumann/gridworlds/render"
)

func main() {
	var seed uint64 = 192382

	// Create the environment
	config := envconfig.NewConfig(envconfig.CliffGridWorld, false, 100, 1.0)
	g, _, err := config.Create(seed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(render.Text(g, true))

	// Plan with value iteration
	result, err := planning.ValueIteration(g.Dynamics(), planning.Config{
		Discount:      0.99,
		Tolerance:     1e-8,
		MaxIterations: 10_000,
	})
	if err != nil {
		log.Fatal(err)
	}
	values := result.Values.RawVector().Data

	// Experiment
	ret := trackers.NewReturn()
	length := trackers.NewEpisodeLength()
	e := experiment.NewOnline(g, experiment.Greedy(result.Policy), 1_000, ret,
		length)
	if err := e.Run(); err != nil {
		log.Fatal(err)
	}
	fmt.Println(render.Text(g, true))

	returns, lengths := ret.Data(), length.Data()
	fmt.Printf("Episodes: %v  |  Last return: %v  |  Last length: %v\n",
		len(returns), returns[len(returns)-1], lengths[len(lengths)-1])

	if err := render.SavePNG(g, values, 48, "./gridworld.png"); err != nil {
		log.Fatal(err)
	}
	err = render.SaveHeatmap(g, values, "Cliff GridWorld", "./values.png")
	if err != nil {
		log.Fatal(err)
	}
}
