package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/sadopc/focusday/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEnergyFlow_PerSectorPercentage(t *testing.T) {
	sectors := []domain.FocusSector{
		sector("morning",
			task("a", domain.PriorityNormal, true),
			task("b", domain.PriorityNormal, false),
			task("c", domain.PriorityNormal, false),
		),
		sector("empty"),
		sector("done", task("d", domain.PriorityUrgent, true)),
	}

	flow := EnergyFlow(sectors)

	assert.Equal(t, map[string]int{"morning": 33, "empty": 0, "done": 100}, flow)
}

func TestEnergyFlow_RoundsHalfUp(t *testing.T) {
	tasks := make([]domain.Task, 8)
	for i := range tasks {
		tasks[i] = task(taskID(i), domain.PriorityNormal, i < 1)
	}
	// 1/8 = 12.5%
	assert.Equal(t, 13, EnergyFlow([]domain.FocusSector{sector("s", tasks...)})["s"])
}

func TestVibeScore_MeanOfFlow(t *testing.T) {
	assert.Equal(t, 0, VibeScore(nil))
	assert.Equal(t, 0, VibeScore(map[string]int{}))
	assert.Equal(t, 50, VibeScore(map[string]int{"a": 100, "b": 0}))
	assert.Equal(t, 67, VibeScore(map[string]int{"a": 100, "b": 100, "c": 0}))
}

func TestVibeScore_ZeroWhenNoTasks(t *testing.T) {
	sectors := []domain.FocusSector{sector("a"), sector("b"), sector("c")}
	assert.Equal(t, 0, VibeScore(EnergyFlow(sectors)))
}

func TestEnergyAndVibe_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 200; trial++ {
		sectors := make([]domain.FocusSector, rng.Intn(8)+1)
		for i := range sectors {
			n := rng.Intn(6)
			tasks := make([]domain.Task, n)
			for j := range tasks {
				tasks[j] = task(taskID(j), domain.PriorityNormal, rng.Intn(2) == 0)
			}
			sectors[i] = sector(taskID(i), tasks...)
		}

		flow := EnergyFlow(sectors)
		sum := 0
		for _, s := range sectors {
			want := 0
			if len(s.Tasks) > 0 {
				want = int(math.Round(100 * float64(s.Completed()) / float64(len(s.Tasks))))
			}
			assert.Equal(t, want, flow[s.ID], "trial %d sector %s", trial, s.ID)
			sum += flow[s.ID]
		}
		wantVibe := int(math.Round(float64(sum) / float64(len(flow))))
		assert.Equal(t, wantVibe, VibeScore(flow), "trial %d", trial)
	}
}
