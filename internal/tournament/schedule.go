package tournament

// roundRobinWaves schedules n entrants into waves using the circle method:
// index 0 stays fixed while the rest rotate one slot per wave. Every
// unordered pair appears in exactly one wave, and no entrant appears twice
// within a wave, so all matches of a wave can run concurrently. Odd fields
// are padded with a bye slot whose pairings are skipped.
func roundRobinWaves(n int) [][][2]int {
	if n < 2 {
		return nil
	}
	m := n + n%2
	circle := make([]int, m)
	for i := range circle {
		circle[i] = i
	}

	waves := make([][][2]int, 0, m-1)
	for w := 0; w < m-1; w++ {
		pairs := make([][2]int, 0, m/2)
		for i := 0; i < m/2; i++ {
			a, b := circle[i], circle[m-1-i]
			if a < n && b < n {
				pairs = append(pairs, [2]int{a, b})
			}
		}
		waves = append(waves, pairs)

		last := circle[m-1]
		copy(circle[2:], circle[1:m-1])
		circle[1] = last
	}
	return waves
}
