package completeness

import (
	"strings"

	"github.com/dealdesk/triage/internal/domain"
)

// minEntityNameLen drops pattern matches too short to be real company
// names ("A Inc" and similar).
const minEntityNameLen = 5

// extractEntities resolves up to three company-like names and assigns them
// positionally: first to buyer, second to seller, third to target. The
// scan runs pattern by pattern over the whole text, dedupes on the exact
// name, and keeps first-encounter order, so repeated mentions never shift
// later slots.
func extractEntities(normText string) domain.Entities {
	seen := make(map[string]struct{})
	names := make([]string, 0, 3)
	for _, re := range companyNamePatterns {
		for _, m := range re.FindAllString(normText, -1) {
			name := strings.TrimSpace(m)
			if len(name) <= minEntityNameLen {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	entities := domain.Entities{
		Buyer:  domain.NewEntityInfo(""),
		Seller: domain.NewEntityInfo(""),
		Target: domain.NewEntityInfo(""),
	}
	if len(names) > 0 {
		entities.Buyer.Name = names[0]
	}
	if len(names) > 1 {
		entities.Seller.Name = names[1]
	}
	if len(names) > 2 {
		entities.Target.Name = names[2]
	}
	return entities
}
