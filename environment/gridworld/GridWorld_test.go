package gridworld

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/gridworlds/environment"
	"github.com/samuelfneumann/gridworlds/environment/mdp"
	ts "github.com/samuelfneumann/gridworlds/timestep"
	"gonum.org/v1/gonum/floats/scalar"
)

func newGridWorld(t *testing.T, c Config, seed uint64) *GridWorld {
	t.Helper()

	g, step, err := New(c, 1.0, seed)
	if err != nil {
		t.Fatal(err)
	}
	if !step.First() || step.Number != 0 {
		t.Fatalf("want first timestep, have %v", step)
	}
	return g
}

func TestGridWorldReachesGoal(t *testing.T) {
	c := GridWorldConfig(DefaultWidth, DefaultHeight, false)
	c.Start = []Cell{{2, 0}}
	g := newGridWorld(t, c, 0)

	if g.Position() != (Cell{2, 0}) {
		t.Fatalf("want start (2, 0), have %v", g.Position())
	}

	wantRewards := []float64{StepReward, StepReward, GoalReward}
	for i, want := range wantRewards {
		step, done, err := g.Step(Right)
		if err != nil {
			t.Fatal(err)
		}
		if step.Reward != want {
			t.Errorf("step %d: want reward %v, have %v", i+1, want,
				step.Reward)
		}
		if done != (i == len(wantRewards)-1) {
			t.Errorf("step %d: want done %v, have %v", i+1, !done, done)
		}
		if step.Number != i+1 || step.Info.Probability != 1.0 {
			t.Errorf("step %d: unexpected timestep %v", i+1, step)
		}
	}

	if g.Position() != (Cell{2, 3}) {
		t.Errorf("want goal (2, 3), have %v", g.Position())
	}
	if step := g.CurrentTimeStep(); !step.Last() ||
		step.EndType() != ts.TerminalStateReached {
		t.Errorf("want last timestep at terminal state, have %v", step)
	}
	if want := -0.04*2 + 1.0; !scalar.EqualWithinAbs(g.Return(), want,
		1e-12) {
		t.Errorf("want return %v, have %v", want, g.Return())
	}
	if g.LastAction() != Right {
		t.Errorf("want last action %v, have %v", Right, g.LastAction())
	}

	// The goal is absorbing
	step, done, err := g.Step(Left)
	if err != nil {
		t.Fatal(err)
	}
	if !done || step.Observation != g.ToState(Cell{2, 3}) {
		t.Errorf("want absorbing goal, have %v", step)
	}
}

func TestCliffDoesNotTerminate(t *testing.T) {
	g := newGridWorld(t, CliffConfig(DefaultCliffWidth, DefaultCliffHeight,
		false), 0)

	if g.Position() != (Cell{3, 0}) {
		t.Fatalf("want start (3, 0), have %v", g.Position())
	}

	for col := 1; col < DefaultCliffWidth-1; col++ {
		step, done, err := g.Step(Right)
		if err != nil {
			t.Fatal(err)
		}
		if step.Reward != CliffReward || done {
			t.Errorf("col %d: want reward %v without termination, have %v "+
				"(done %v)", col, CliffReward, step.Reward, done)
		}
		if g.Position() != (Cell{3, col}) {
			t.Errorf("want position (3, %d), have %v", col, g.Position())
		}
	}

	step, done, err := g.Step(Right)
	if err != nil {
		t.Fatal(err)
	}
	if !done || step.Reward != CliffStepReward {
		t.Errorf("want goal with reward %v, have %v (done %v)",
			CliffStepReward, step.Reward, done)
	}
}

func TestWindPushesAgentUp(t *testing.T) {
	c := WindyConfig(DefaultWindyWidth, DefaultWindyHeight)
	g := newGridWorld(t, c, 0)

	if g.Position() != (Cell{3, 0}) || g.State() != 30 {
		t.Fatalf("want start state 30, have %v", g.State())
	}

	// Calm column: plain move up
	if _, _, err := g.Step(Up); err != nil {
		t.Fatal(err)
	}
	if g.Position() != (Cell{2, 0}) {
		t.Errorf("want (2, 0), have %v", g.Position())
	}

	// Wind of magnitude 1 at the resulting column
	c.Start = []Cell{{3, 3}}
	g = newGridWorld(t, c, 0)
	step, _, err := g.Step(Up)
	if err != nil {
		t.Fatal(err)
	}
	if g.Position() != (Cell{1, 3}) || step.Reward != WindyStepReward {
		t.Errorf("want (1, 3) with reward -1, have %v with reward %v",
			g.Position(), step.Reward)
	}
}

func TestReproducible(t *testing.T) {
	actions := []int{Up, Up, Right, Right, Right, Down, Left, Up, Right,
		Right, Down, Down, Left, Left, Up, Right}

	run := func(seed uint64) []ts.TimeStep {
		g := newGridWorld(t, SlipperyConfig(DefaultWidth, DefaultHeight),
			seed)
		steps := []ts.TimeStep{g.CurrentTimeStep()}
		for _, a := range actions {
			step, done, err := g.Step(a)
			if err != nil {
				t.Fatal(err)
			}
			steps = append(steps, step)
			if done {
				step, err = g.Reset()
				if err != nil {
					t.Fatal(err)
				}
				steps = append(steps, step)
			}
		}
		return steps
	}

	first, second := run(2021), run(2021)
	if len(first) != len(second) {
		t.Fatalf("episodes differ in length: %d != %d", len(first),
			len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("step %d: %v != %v", i, first[i], second[i])
		}
	}
}

func TestSeed(t *testing.T) {
	c := SlipperyConfig(DefaultWidth, DefaultHeight)
	c.Start = []Cell{{0, 0}, {0, 1}, {0, 2}, {2, 0}}

	g1 := newGridWorld(t, c, 1)
	g2 := newGridWorld(t, c, 2)
	g1.Seed(99)
	g2.Seed(99)

	for i := 0; i < 50; i++ {
		s1, err := g1.Reset()
		if err != nil {
			t.Fatal(err)
		}
		s2, err := g2.Reset()
		if err != nil {
			t.Fatal(err)
		}
		if s1 != s2 {
			t.Fatalf("reset %d: %v != %v", i, s1, s2)
		}
		if s1.Info.Probability != 0.25 {
			t.Errorf("want start probability 0.25, have %v",
				s1.Info.Probability)
		}
	}
}

func TestNewSamplesStartOnce(t *testing.T) {
	c := SlipperyConfig(DefaultWidth, DefaultHeight)
	c.Start = []Cell{{0, 0}, {0, 1}, {0, 2}, {2, 0}}
	isd, err := NewUniformStart(c.Start, c)
	if err != nil {
		t.Fatal(err)
	}

	for seed := uint64(0); seed < 20; seed++ {
		g, step, err := New(c, 1.0, seed)
		if err != nil {
			t.Fatal(err)
		}
		m, err := mdp.New(g.Dynamics(), isd, seed)
		if err != nil {
			t.Fatal(err)
		}

		if step.Observation != m.State() {
			t.Errorf("seed %d: want start state %d, have %d", seed,
				m.State(), step.Observation)
		}
		for i := 0; i < 10; i++ {
			tr, err := m.Step(Right)
			if err != nil {
				t.Fatal(err)
			}
			step, _, err := g.Step(Right)
			if err != nil {
				t.Fatal(err)
			}
			if step.Observation != tr.State {
				t.Fatalf("seed %d step %d: want state %d, have %d", seed,
					i, tr.State, step.Observation)
			}
		}
	}
}

func TestStepInvalidAction(t *testing.T) {
	g := newGridWorld(t, GridWorldConfig(DefaultWidth, DefaultHeight,
		false), 0)

	for _, a := range []int{-1, NumActions} {
		if _, _, err := g.Step(a); !errors.Is(err, mdp.ErrInvalidAction) {
			t.Errorf("action %d: want ErrInvalidAction, have %v", a, err)
		}
	}
}

func TestStepLimit(t *testing.T) {
	g := newGridWorld(t, GridWorldConfig(DefaultWidth, DefaultHeight,
		false), 0)
	g.SetEnder(environment.NewStepLimit(5))

	steps := 0
	for done := false; !done; {
		var err error
		var step ts.TimeStep
		step, done, err = g.Step(Left)
		if err != nil {
			t.Fatal(err)
		}
		steps++
		if done && step.EndType() != ts.Timeout {
			t.Errorf("want timeout, have %v", step.EndType())
		}
	}
	if steps != 5 {
		t.Errorf("want 5 steps, have %d", steps)
	}
}

func TestRewards(t *testing.T) {
	c := GridWorldConfig(DefaultWidth, DefaultHeight, false)
	rewards := NewRewards(c)

	if _, err := rewards.R(c.ToState(Cell{1, 1}), Up); !errors.Is(err,
		mdp.ErrUndefinedReward) {
		t.Errorf("want ErrUndefinedReward, have %v", err)
	}
	if _, err := rewards.R(c.NumStates(), Up); !errors.Is(err,
		mdp.ErrInvalidState) {
		t.Errorf("want ErrInvalidState, have %v", err)
	}

	want := map[Cell]float64{
		{0, 0}: StepReward,
		{1, 3}: TerminalReward,
		{2, 3}: GoalReward,
	}
	for cell, value := range want {
		r, err := rewards.R(c.ToState(cell), mdp.NoAction)
		if err != nil {
			t.Fatal(err)
		}
		if r != value {
			t.Errorf("cell %v: want reward %v, have %v", cell, value, r)
		}
	}

	bounds := rewards.Bounds()
	if bounds.Min != TerminalReward || bounds.Max != GoalReward {
		t.Errorf("want bounds [-1, 1], have %v", bounds)
	}
}

func TestCliffRewards(t *testing.T) {
	c := CliffConfig(DefaultCliffWidth, DefaultCliffHeight, false)
	rewards := NewRewards(c)

	for col := 0; col < c.Width; col++ {
		want := CliffStepReward
		if col > 0 && col < c.Width-1 {
			want = CliffReward
		}
		r, _ := rewards.R(c.ToState(Cell{3, col}), Right)
		if r != want {
			t.Errorf("col %d: want reward %v, have %v", col, want, r)
		}
	}

	if hazards := HazardCells(c); len(hazards) != c.Width-2 {
		t.Errorf("want %d hazard cells, have %d", c.Width-2, len(hazards))
	}

	want := map[Cell]CellKind{
		{3, 0}:           Open,
		{3, 1}:           Hazard,
		{3, c.Width - 2}: Hazard,
		{3, c.Width - 1}: Goal,
		{2, 5}:           Open,
	}
	for cell, kind := range want {
		if got := c.Kind(cell); got != kind {
			t.Errorf("cell %v: want %v, have %v", cell, kind, got)
		}
	}
}

func TestSpecs(t *testing.T) {
	g := newGridWorld(t, WindyConfig(DefaultWindyWidth,
		DefaultWindyHeight), 0)

	if spec := g.ActionSpec(); spec.N != NumActions ||
		spec.Cardinality != environment.Discrete {
		t.Errorf("unexpected action spec %v", spec)
	}
	if spec := g.ObservationSpec(); spec.N != 70 {
		t.Errorf("unexpected observation spec %v", spec)
	}
	if spec := g.RewardSpec(); spec.Bounds.Min != -1 || spec.Bounds.Max != -1 {
		t.Errorf("unexpected reward spec %v", spec)
	}
	if r, c := g.Dims(); r != DefaultWindyHeight || c != DefaultWindyWidth {
		t.Errorf("unexpected dimensions (%d, %d)", r, c)
	}
}

func TestCellKinds(t *testing.T) {
	g := newGridWorld(t, GridWorldConfig(DefaultWidth, DefaultHeight,
		false), 0)

	want := map[Cell]CellKind{
		{0, 0}: Open,
		{1, 1}: Illegal,
		{1, 3}: Terminal,
		{2, 3}: Goal,
	}
	for cell, kind := range want {
		if got := g.Kind(cell.Row, cell.Col); got != kind {
			t.Errorf("cell %v: want %v, have %v", cell, kind, got)
		}
	}
	if g.At(0, 0) != 1.0 || g.At(2, 3) != 0.0 {
		t.Error("agent not reported at start cell")
	}
	if len(g.Terminal()) != 1 || len(g.Goal()) != 1 || len(g.Illegal()) != 1 {
		t.Error("unexpected cell sets")
	}
}

func BenchmarkStep(b *testing.B) {
	g, _, _ := New(SlipperyConfig(DefaultWidth, DefaultHeight), 1.0, 0)

	for i := 0; i < b.N; i++ {
		if _, done, _ := g.Step(i % NumActions); done {
			g.Reset()
		}
	}
}
