package selection

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/greensphere/payoff/pkg/models/domain"
)

// Plan is a site plan: one selection per building section of an INI file.
type Plan struct {
	cfg *ini.File
}

func LoadPlan(source interface{}) (*Plan, error) {
	cfg, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("load site plan: %w", err)
	}
	return &Plan{cfg: cfg}, nil
}

// Buildings lists the non-empty sections of the plan
func (p *Plan) Buildings() []string {
	var buildings []string
	for _, section := range p.cfg.Sections() {
		if len(section.Keys()) > 0 {
			buildings = append(buildings, section.Name())
		}
	}
	return buildings
}

func (p *Plan) Selection(building string) (domain.Selection, error) {
	section, err := p.cfg.GetSection(building)
	if err != nil {
		return nil, fmt.Errorf("building %s not found", building)
	}

	sel := make(domain.Selection, len(section.Keys()))
	for _, key := range section.Keys() {
		count, err := key.Int()
		if err != nil {
			return nil, fmt.Errorf("building %s: %s: invalid unit count %q", building, key.Name(), key.String())
		}
		if count < 0 {
			return nil, fmt.Errorf("building %s: %s: unit count must not be negative", building, key.Name())
		}
		sel[domain.SourceID(key.Name())] = count
	}
	return sel, nil
}

// Parse reads an inline selection such as "solarPanels=2,heatPump=1".
func Parse(s string) (domain.Selection, error) {
	sel := domain.Selection{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, raw, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid selection entry %q, expected source=count", part)
		}
		count, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid unit count for %s: %q", id, raw)
		}
		sel[domain.SourceID(strings.TrimSpace(id))] += count
	}
	return sel, nil
}
