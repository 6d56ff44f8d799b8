package world

const (
	dodecahedronRooms = 20

	// Every vertex of the dodecahedron lies on three pentagons, each of
	// which can be walked in two directions.
	dodecahedronClosedWalks = 6
)

// dodecahedronTable is a labelling of the dodecahedron's skeleton.
var dodecahedronTable = [dodecahedronRooms][Tunnels]int{
	{1, 4, 7}, {0, 2, 9}, {1, 3, 11}, {2, 4, 13}, {0, 3, 5},
	{4, 6, 14}, {5, 7, 16}, {0, 6, 8}, {7, 9, 17}, {1, 8, 10},
	{9, 11, 18}, {2, 10, 12}, {11, 13, 19}, {3, 12, 14}, {5, 13, 15},
	{14, 16, 19}, {6, 15, 17}, {8, 16, 18}, {10, 17, 19}, {12, 15, 18},
}

// Dodecahedron returns the reference dodecahedron cave.
func Dodecahedron() *Cave {
	return FromTable(dodecahedronTable[:])
}

// IsDodecahedron reports whether the cave looks like the skeleton of a
// dodecahedron. It compares the number of closed walks of length five
// from every room (the diagonal of A^5 for adjacency matrix A) with the
// dodecahedron's value of 6.
//
// This is a fingerprint, not an isomorphism proof. A different connected
// three-tunnel cave of 20 rooms with the same fingerprint is possible in
// principle and accepted as a false positive. The cave must have passed
// Verify.
func IsDodecahedron(c *Cave) bool {
	n := c.Rooms()
	if n != dodecahedronRooms {
		return false
	}

	a := newMatrix(n)
	for v, row := range c.tunnels {
		for _, t := range row {
			a[v][t] = 1
		}
	}
	a2 := a.square()
	a4 := a2.square()
	a5 := a4.mul(a)
	for v := range n {
		if a5[v][v] != dodecahedronClosedWalks {
			return false
		}
	}
	return true
}

// matrix is a square integer matrix owned by one detection call.
type matrix [][]int

func newMatrix(n int) matrix {
	m := make(matrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	return m
}

func (m matrix) square() matrix {
	return m.mul(m)
}

func (m matrix) mul(o matrix) matrix {
	n := len(m)
	t := newMatrix(n)
	for i := range n {
		for k := range n {
			if m[i][k] == 0 {
				continue
			}
			for j := range n {
				t[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return t
}
