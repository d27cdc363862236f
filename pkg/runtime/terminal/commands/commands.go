package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/greensphere/payoff/pkg/models/domain"
)

// ReportHandler renders a report
type ReportHandler interface {
	Handle(report *domain.Report) error
}

func pickReporter(reporters map[string]ReportHandler, format string) (ReportHandler, error) {
	r, ok := reporters[format]
	if !ok {
		names := make([]string, 0, len(reporters))
		for name := range reporters {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unsupported format %q. Supported formats: %s", format, strings.Join(names, ", "))
	}
	return r, nil
}
