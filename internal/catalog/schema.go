package catalog

// CatalogSchema is the top-level YAML catalog structure. A catalog describes
// the full procedural checklist for one case type; per-case state never lives
// here.
type CatalogSchema struct {
	ID    string       `yaml:"id"`
	Name  string       `yaml:"name"`
	Items []ItemConfig `yaml:"items"`
}

// ItemConfig describes one checklist obligation.
type ItemConfig struct {
	ID                string         `yaml:"id"`
	Phase             string         `yaml:"phase"`
	Title             string         `yaml:"title"`
	Description       string         `yaml:"description,omitempty"`
	RequiredLanguages []string       `yaml:"required_languages,omitempty"`
	DueDate           string         `yaml:"due_date,omitempty"` // 2006-01-02
	Actions           []ActionConfig `yaml:"actions,omitempty"`
	Baseline          BaselineConfig `yaml:"baseline,omitempty"`
}

// ActionConfig describes an action a user may trigger from the item.
type ActionConfig struct {
	ID      string        `yaml:"id"`
	Label   string        `yaml:"label"`
	Kind    string        `yaml:"kind"`
	Primary bool          `yaml:"primary,omitempty"`
	Payload PayloadConfig `yaml:"payload,omitempty"`
}

// PayloadConfig carries kind-specific action parameters.
type PayloadConfig struct {
	Language     string `yaml:"language,omitempty"`
	LetterType   string `yaml:"letter_type,omitempty"`
	Scope        string `yaml:"scope,omitempty"`
	DocumentType string `yaml:"document_type,omitempty"`
	EventType    string `yaml:"event_type,omitempty"`
}

// BaselineConfig seeds the starting state of an item: work already done
// before the system existed.
type BaselineConfig struct {
	Status    string            `yaml:"status,omitempty"`
	Languages map[string]string `yaml:"languages,omitempty"`
	Evidence  []EvidenceConfig  `yaml:"evidence,omitempty"`
}

// EvidenceConfig is one baseline proof record.
type EvidenceConfig struct {
	Type     string `yaml:"type"`
	Title    string `yaml:"title"`
	Href     string `yaml:"href,omitempty"`
	Language string `yaml:"language,omitempty"`
	Meta     string `yaml:"meta,omitempty"`
	Date     string `yaml:"date,omitempty"` // 2006-01-02
}
