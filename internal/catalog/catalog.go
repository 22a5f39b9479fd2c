package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/courtops/docket/internal/domain"
	"gopkg.in/yaml.v3"
)

// Catalog is the immutable checklist definition built from a schema. Items
// are grouped by phase in file order. Callers must treat returned items as
// read-only; the session layer clones before mutating.
type Catalog struct {
	ID   string
	Name string

	byPhase map[domain.Phase][]*domain.ChecklistItem
	byID    map[string]*domain.ChecklistItem
	order   []*domain.ChecklistItem
}

// LoadFile reads and builds a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var schema CatalogSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return build(&schema)
}

// Phase returns the ordered catalog items for a phase.
func (c *Catalog) Phase(p domain.Phase) []*domain.ChecklistItem {
	return c.byPhase[p]
}

// Item looks up a catalog item by id.
func (c *Catalog) Item(id string) (*domain.ChecklistItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

// All returns every item in catalog order.
func (c *Catalog) All() []*domain.ChecklistItem {
	return c.order
}

// Len returns the total item count.
func (c *Catalog) Len() int {
	return len(c.order)
}

func build(schema *CatalogSchema) (*Catalog, error) {
	if schema.ID == "" {
		return nil, fmt.Errorf("catalog is missing an id")
	}

	c := &Catalog{
		ID:      schema.ID,
		Name:    schema.Name,
		byPhase: make(map[domain.Phase][]*domain.ChecklistItem),
		byID:    make(map[string]*domain.ChecklistItem),
	}

	for i, cfg := range schema.Items {
		it, err := buildItem(&cfg)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, cfg.ID, err)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %q", it.ID)
		}
		c.byID[it.ID] = it
		c.byPhase[it.Phase] = append(c.byPhase[it.Phase], it)
		c.order = append(c.order, it)
	}

	return c, nil
}

func buildItem(cfg *ItemConfig) (*domain.ChecklistItem, error) {
	if cfg.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	phase, err := domain.ParsePhase(cfg.Phase)
	if err != nil {
		return nil, err
	}

	it := &domain.ChecklistItem{
		ID:          cfg.ID,
		Phase:       phase,
		Title:       cfg.Title,
		Description: cfg.Description,
		Status:      domain.StatusPending,
	}

	for _, l := range cfg.RequiredLanguages {
		it.RequiredLanguages = append(it.RequiredLanguages, domain.Language(l))
	}
	if len(it.RequiredLanguages) > 0 {
		it.Languages = make(map[domain.Language]domain.LanguageStatus, len(it.RequiredLanguages))
		for _, l := range it.RequiredLanguages {
			it.Languages[l] = domain.LangPending
		}
	}

	if cfg.DueDate != "" {
		due, err := time.Parse("2006-01-02", cfg.DueDate)
		if err != nil {
			return nil, fmt.Errorf("invalid due_date %q: %w", cfg.DueDate, err)
		}
		it.DueDate = &due
	}

	for _, a := range cfg.Actions {
		it.Actions = append(it.Actions, domain.ActionDefinition{
			ID:      a.ID,
			Label:   a.Label,
			Kind:    domain.ParseActionKind(a.Kind),
			Primary: a.Primary,
			Payload: domain.ActionPayload{
				Language:     domain.Language(a.Payload.Language),
				LetterType:   a.Payload.LetterType,
				Scope:        a.Payload.Scope,
				DocumentType: a.Payload.DocumentType,
				EventType:    a.Payload.EventType,
			},
		})
	}

	if err := applyBaseline(it, &cfg.Baseline); err != nil {
		return nil, err
	}

	return it, nil
}

func requiresLanguage(it *domain.ChecklistItem, lang domain.Language) bool {
	for _, l := range it.RequiredLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

func applyBaseline(it *domain.ChecklistItem, base *BaselineConfig) error {
	if base.Status != "" {
		switch s := domain.ItemStatus(base.Status); s {
		case domain.StatusPending, domain.StatusPartial, domain.StatusComplete:
			it.Status = s
		default:
			return fmt.Errorf("invalid baseline status %q", base.Status)
		}
	}

	for lang, st := range base.Languages {
		l := domain.Language(lang)
		if !requiresLanguage(it, l) {
			return fmt.Errorf("baseline language %q is not in the item's required set", lang)
		}
		status := domain.LanguageStatus(st)
		switch status {
		case domain.LangPending, domain.LangAwaiting, domain.LangComplete, domain.LangNotApplicable:
		default:
			return fmt.Errorf("invalid baseline language status %q", st)
		}
		if it.Languages == nil {
			it.Languages = make(map[domain.Language]domain.LanguageStatus)
		}
		it.Languages[l] = status
	}

	for i, ev := range base.Evidence {
		record := domain.Evidence{
			ID:       fmt.Sprintf("%s-baseline-%d", it.ID, i),
			Type:     domain.EvidenceType(ev.Type),
			Title:    ev.Title,
			Href:     ev.Href,
			Language: domain.Language(ev.Language),
			Meta:     ev.Meta,
		}
		switch record.Type {
		case domain.EvidenceDocument, domain.EvidenceDistribution, domain.EvidenceEvent:
		default:
			return fmt.Errorf("invalid baseline evidence type %q", ev.Type)
		}
		if ev.Date != "" {
			created, err := time.Parse("2006-01-02", ev.Date)
			if err != nil {
				return fmt.Errorf("invalid baseline evidence date %q: %w", ev.Date, err)
			}
			record.CreatedAt = created
		}
		it.Evidence = append(it.Evidence, record)
	}

	return nil
}
