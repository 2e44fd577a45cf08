package subcell

//Grid is a dense 3D array of bins covering one unit cell, each bin holding the
//marks whose wrapped fractional position falls inside it. It is pure storage plus
//index arithmetic: all the geometry (what a mark is, which bin a position maps to)
//is decided by SubCells.
type Grid struct {
	Nu, Nv, Nw int
	Bins       [][]Mark
}

//newGrid sizes the grid so that the bin edge along each cell axis stays >= spacing
//(so a 3x3x3 neighborhood scan around any bin always covers a sphere of radius
//spacing), with at least 3 bins per axis.
func newGrid(a, b, c, spacing float64) *Grid {
	g := &Grid{
		Nu: binCount(a, spacing),
		Nv: binCount(b, spacing),
		Nw: binCount(c, spacing),
	}
	g.Bins = make([][]Mark, g.Nu*g.Nv*g.Nw)
	return g
}

func binCount(length, spacing float64) int {
	n := int(length / spacing) //rounding down keeps the bin edge >= spacing
	if n < 3 {
		//Known approximation: for cells smaller than 3*spacing along an axis this
		//breaks the bin>=spacing guarantee. The 3x3x3 scan then covers the whole
		//axis, so in-cell neighbors are still found; see the package tests.
		n = 3
	}
	return n
}

//IndexQ is the quick index lookup for coordinates already known to be in range.
func (g *Grid) IndexQ(u, v, w int) int {
	return u + g.Nu*(v+g.Nv*w)
}

//IndexN maps any integer coordinates, negative or past the end, to their canonical
//in-range bin. It is total over all integers; no bounds errors.
func (g *Grid) IndexN(u, v, w int) int {
	return g.IndexQ(modn(u, g.Nu), modn(v, g.Nv), modn(w, g.Nw))
}

func modn(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
