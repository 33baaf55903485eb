package sonar

// Window sizes for the two parts of the puzzle.
const (
	PartOneWindow = 1
	PartTwoWindow = 3
)

// CountIncreases returns how many readings are strictly greater than the
// reading before them.
func CountIncreases(seq []int) int {
	return CountWindowIncreases(seq, PartOneWindow)
}

// CountWindowIncreases returns how many windows of size readings have a
// strictly larger sum than the window one step earlier. It compares only the
// reading entering and the reading leaving the window.
func CountWindowIncreases(seq []int, size int) int {
	if size < 1 {
		return 0
	}
	n := 0
	for i := size; i < len(seq); i++ {
		if seq[i] > seq[i-size] {
			n++
		}
	}
	return n
}

// WindowSums returns the sum of every contiguous window of size readings.
// The result is empty when seq is shorter than size.
func WindowSums(seq []int, size int) []int {
	if size < 1 || len(seq) < size {
		return nil
	}
	sums := make([]int, 0, len(seq)-size+1)
	sum := 0
	for i, v := range seq {
		sum += v
		if i >= size {
			sum -= seq[i-size]
		}
		if i >= size-1 {
			sums = append(sums, sum)
		}
	}
	return sums
}

// CountSumIncreases counts strictly increasing consecutive window sums by
// computing every sum. It always agrees with CountWindowIncreases.
func CountSumIncreases(seq []int, size int) int {
	sums := WindowSums(seq, size)
	n := 0
	for i := 1; i < len(sums); i++ {
		if sums[i] > sums[i-1] {
			n++
		}
	}
	return n
}

// Part1 is the day 1 part 1 answer.
func Part1(seq []int) int { return CountIncreases(seq) }

// Part2 is the day 1 part 2 answer.
func Part2(seq []int) int { return CountWindowIncreases(seq, PartTwoWindow) }
