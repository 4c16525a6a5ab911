package skill

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// TechnicalSkill is one skill badge, scoped to the owning user.
// Level is a 1-10 proficiency scale.
type TechnicalSkill struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SkillGroup is one display section of the skills page.
type SkillGroup struct {
	Category string           `json:"category"`
	Skills   []TechnicalSkill `json:"skills"`
}

// GroupByCategory arranges skills into display groups: categories
// alphabetically, names alphabetically within each group.
func GroupByCategory(skills []TechnicalSkill) []SkillGroup {
	byCategory := make(map[string][]TechnicalSkill)
	for _, s := range skills {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	groups := make([]SkillGroup, 0, len(categories))
	for _, category := range categories {
		group := byCategory[category]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Name < group[j].Name
		})
		groups = append(groups, SkillGroup{Category: category, Skills: group})
	}

	return groups
}
