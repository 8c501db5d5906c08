package util

import (
	"fmt"
	"strconv"
	"strings"
)

// matrix represents a 2 dimensional matrix.
type matrix struct {
	nRow, nCol int
	data       []int // row-major nRow*nCol array.
}

// matrix returns an n x m matrix.
func newMatrix(n, m int) (x matrix) {
	return matrix{
		nRow: n,
		nCol: m,
		data: make([]int, n*m),
	}
}

// String returns a string representation of a matrix.
func (m matrix) String() (r string) {
	maxLength := 0
	for _, d := range m.data {
		if l := len(strconv.Itoa(d)); l > maxLength {
			maxLength = l
		}
	}

	lines := []string{"\n"}
	for i := 0; i < m.nRow; i++ {
		var parts []string
		for j := 0; j < m.nCol; j++ {
			parts = append(parts, fmt.Sprintf("%0*s", maxLength, strconv.Itoa(m.data[i*m.nCol+j])))
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}

func (m matrix) at(i, j int) int { return m.data[i*m.nCol+j] }

// computeCell computes the cell (i, j) in a Levenshtein matrix. Cells
// (i-1, j-1), (i-1, j) and (i, j-1) must already be filled.
func (m matrix) computeCell(i, j int, r1, r2 []rune) {
	switch {
	case i == 0:
		m.data[j] = j
		return
	case j == 0:
		m.data[i*m.nCol] = i
		return
	}
	if r1[i-1] == r2[j-1] {
		m.data[i*m.nCol+j] = m.at(i-1, j-1)
		return
	}
	minValue := m.at(i-1, j) + 1
	if v := m.at(i-1, j-1) + 1; v < minValue {
		minValue = v
	}
	if v := m.at(i, j-1) + 1; v < minValue {
		minValue = v
	}
	m.data[i*m.nCol+j] = minValue
}

// Levenshtein computes the Levenshtein distance between s1 and s2: the
// number of single-character insertions, deletions, and substitutions it
// takes to transform s1 into s2. Unlike a barcode distance the two strings
// may differ in length. Characters are compared as runes.
func Levenshtein(s1, s2 string) (distance int) {
	r1 := []rune(s1)
	r2 := []rune(s2)
	m := newMatrix(len(r1)+1, len(r2)+1)
	for i := 0; i <= len(r1); i++ {
		for j := 0; j <= len(r2); j++ {
			m.computeCell(i, j, r1, r2)
		}
	}
	return m.at(len(r1), len(r2))
}

// Nearest returns the candidate with the smallest Levenshtein distance to
// s, and that distance. Ties go to the earliest candidate. It returns
// ("", -1) if there are no candidates.
func Nearest(s string, candidates []string) (nearest string, distance int) {
	distance = -1
	for _, c := range candidates {
		if d := Levenshtein(s, c); distance < 0 || d < distance {
			nearest, distance = c, d
		}
	}
	return nearest, distance
}
