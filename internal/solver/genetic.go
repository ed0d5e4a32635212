package solver

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"svw.info/sumplete/internal/domain"
	"svw.info/sumplete/internal/ports"
)

// Genetic evolves a population of full inclusion assignments, scored by
// the same absolute-deviation error annealing uses, and writes the best
// individual onto the grid. Individuals live apart from the grid's cell
// states; the grid is only touched when a result is applied.
type Genetic struct {
	PopulationSize int
	Generations    int
	EliteSize      int
	TournamentSize int

	rng *rand.Rand
}

func NewGenetic(rng *rand.Rand) *Genetic {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Genetic{
		PopulationSize: 50,
		Generations:    100,
		EliteSize:      10,
		TournamentSize: 25,
		rng:            rng,
	}
}

func (s *Genetic) Name() string { return NameGenetic }

// individual is a flat N×N inclusion assignment with its cached fitness.
type individual struct {
	genes []bool
	fit   int
}

func (s *Genetic) Attempt(ctx context.Context, g *domain.Grid) (ports.Result, error) {
	start := time.Now()
	n := g.Size()
	genes := n * n

	values := make([]int, genes)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			values[r*n+c], _ = g.Value(r, c)
		}
	}

	fitness := func(ind []bool) int {
		err := 0
		for i := 0; i < n; i++ {
			rowSum, colSum := 0, 0
			for j := 0; j < n; j++ {
				if ind[i*n+j] {
					rowSum += values[i*n+j]
				}
				if ind[j*n+i] {
					colSum += values[j*n+i]
				}
			}
			err += abs(rowSum-g.RowTarget(i)) + abs(colSum-g.ColTarget(i))
		}
		return err
	}

	pop := make([]individual, s.PopulationSize)
	for i := range pop {
		gs := make([]bool, genes)
		for j := range gs {
			gs[j] = s.rng.Intn(2) == 0
		}
		pop[i] = individual{genes: gs, fit: fitness(gs)}
	}

	moves := 0
	done := func(err error) (ports.Result, error) {
		return ports.Result{Solved: g.IsSolved(), Moves: moves, Duration: time.Since(start)}, err
	}
	apply := func(ind []bool) {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				st := domain.Excluded
				if ind[r*n+c] {
					st = domain.Included
				}
				_ = g.SetState(r, c, st)
				moves++
			}
		}
	}

	for gen := 0; gen < s.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return done(err)
		}
		sort.SliceStable(pop, func(a, b int) bool { return pop[a].fit < pop[b].fit })
		if pop[0].fit == 0 {
			apply(pop[0].genes)
			return done(nil)
		}

		next := make([]individual, 0, s.PopulationSize)
		next = append(next, pop[:min(s.EliteSize, len(pop))]...)
		for len(next) < s.PopulationSize {
			p1 := s.tournament(pop)
			p2 := s.tournament(pop)
			child := s.crossover(p1.genes, p2.genes)
			s.mutate(child, n)
			next = append(next, individual{genes: child, fit: fitness(child)})
		}
		pop = next
	}

	// Budget spent: keep the fittest assignment reached rather than
	// leaving the grid untouched.
	sort.SliceStable(pop, func(a, b int) bool { return pop[a].fit < pop[b].fit })
	apply(pop[0].genes)
	if pop[0].fit != 0 {
		return done(ErrBudgetExhausted)
	}
	return done(nil)
}

// tournament samples TournamentSize distinct individuals and keeps the
// fittest.
func (s *Genetic) tournament(pop []individual) individual {
	k := min(s.TournamentSize, len(pop))
	best := -1
	for _, idx := range s.rng.Perm(len(pop))[:k] {
		if best < 0 || pop[idx].fit < pop[best].fit {
			best = idx
		}
	}
	return pop[best]
}

// crossover copies each gene from either parent with equal probability.
func (s *Genetic) crossover(p1, p2 []bool) []bool {
	child := make([]bool, len(p1))
	for i := range child {
		if s.rng.Intn(2) == 0 {
			child[i] = p1[i]
		} else {
			child[i] = p2[i]
		}
	}
	return child
}

// mutate flips one uniformly random gene.
func (s *Genetic) mutate(ind []bool, n int) {
	i := s.rng.Intn(n*n)
	ind[i] = !ind[i]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
