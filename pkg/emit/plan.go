package emit

// File is one planned output: a slash-separated path relative to the project
// root plus its full contents.
type File struct {
	Path    string
	Content []byte
}

// AssetCopy schedules one staged asset for copying into the project tree.
// Source is the absolute staged path, Dest is relative to the project root.
type AssetCopy struct {
	Source string
	Dest   string
}

// Plan is the complete ordered output of one emitter run over one template.
type Plan struct {
	Target string
	Files  []File
	Assets []AssetCopy
}

// NewPlan creates an empty plan for the named target.
func NewPlan(target string) *Plan {
	return &Plan{Target: target}
}

// AddFile appends one planned file.
func (p *Plan) AddFile(path string, content []byte) {
	p.Files = append(p.Files, File{Path: path, Content: content})
}

// AddFileString appends one planned file from string content.
func (p *Plan) AddFileString(path, content string) {
	p.AddFile(path, []byte(content))
}

// AddAsset appends one planned asset copy.
func (p *Plan) AddAsset(source, dest string) {
	p.Assets = append(p.Assets, AssetCopy{Source: source, Dest: dest})
}

// Paths lists the planned file paths in plan order, asset destinations last.
func (p *Plan) Paths() []string {
	paths := make([]string, 0, len(p.Files)+len(p.Assets))
	for _, file := range p.Files {
		paths = append(paths, file.Path)
	}
	for _, asset := range p.Assets {
		paths = append(paths, asset.Dest)
	}
	return paths
}
