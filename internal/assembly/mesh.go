package assembly

// Vector3 is a point or direction in model space.
type Vector3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Triangle is a single mesh facet.
type Triangle struct {
	Normal Vector3 `yaml:"normal"`
	V1     Vector3 `yaml:"v1"`
	V2     Vector3 `yaml:"v2"`
	V3     Vector3 `yaml:"v3"`
}

// Mesh is the triangle geometry carried by a body. Bodies without geometry
// have a nil mesh and contribute nothing to an export.
type Mesh struct {
	Triangles []Triangle `yaml:"triangles"`
}
