package embedview

// Saturation levels encoding selection state. Hue identifies the
// cluster; saturation distinguishes selected points from unselected
// ones while a selection is active, and lightness is fixed.
const (
	saturationIdle     = 0.75 // no selection active
	saturationSelected = 1.0  // inside the tentative or committed selection
	saturationDimmed   = 0.5  // outside an active or committed selection
	paletteLightness   = 0.5
)

// Palette maps cluster ids to hues. Hue is divided evenly across the
// distinct cluster ids observed in a point set — by rank, not by raw
// id value — so id gaps do not skew the spacing.
type Palette struct {
	rank map[int]int
	n    int
}

// NewPalette builds a palette for the distinct cluster ids of ps.
func NewPalette(ps *PointSet) *Palette {
	ids := ps.DistinctClusters()
	rank := make(map[int]int, len(ids))
	for r, id := range ids {
		rank[id] = r
	}
	return &Palette{rank: rank, n: len(ids)}
}

// Hue returns the hue in degrees for the given cluster id.
// Unknown ids map to hue 0.
func (p *Palette) Hue(cluster int) float64 {
	if p.n == 0 {
		return 0
	}
	return 360 / float64(p.n) * float64(p.rank[cluster])
}

// ColorFor returns the display color for a cluster at the given
// saturation.
func (p *Palette) ColorFor(cluster int, saturation float64) RGBA {
	return HSL(p.Hue(cluster), saturation, paletteLightness)
}

// Clusters returns the number of distinct cluster ids in the palette.
func (p *Palette) Clusters() int {
	return p.n
}
