package life

// PopulationHistory steps g forward and records the live cell count of
// every generation, starting with g itself. The result has generations+1
// entries; g is not modified.
func PopulationHistory(g *Grid, generations int) []int {
	if generations < 0 {
		generations = 0
	}
	history := make([]int, 0, generations+1)
	history = append(history, g.Population())
	for i := 0; i < generations; i++ {
		g = g.Next()
		history = append(history, g.Population())
	}
	return history
}
