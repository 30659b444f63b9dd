package view

import (
	"sort"

	"github.com/agenticmail/dashboard/internal/normalize"
)

// SkillRow is one builtin skill line.
type SkillRow struct {
	Name        string
	Description string
	Category    normalize.Badge
}

// SkillCategory groups builtin skills under one category.
type SkillCategory struct {
	Name   string
	Skills []SkillRow
}

// InstalledSkill is one community skill installed in the organization.
type InstalledSkill struct {
	ID          string
	Name        string
	Description string
	Status      normalize.Badge
	Enabled     bool
}

// SkillsPage is the skills page model.
type SkillsPage struct {
	Categories []SkillCategory
	Installed  []InstalledSkill
}

// Skills shapes the builtin catalog and installed community skills. The
// catalog arrives either as a categories map or as a flat skills list;
// flat lists group by each skill's category field. Categories sort by
// name for stable iteration.
func Skills(builtin, installed normalize.Map) SkillsPage {
	grouped := map[string][]SkillRow{}
	if categories, ok := builtin["categories"].(normalize.Map); ok && len(categories) > 0 {
		for cat, v := range categories {
			list, ok := v.([]any)
			if !ok {
				continue
			}
			for _, s := range normalize.MapItems(list) {
				grouped[cat] = append(grouped[cat], skillRow(s, cat))
			}
		}
	} else {
		for _, s := range normalize.MapItems(normalize.List(builtin, "skills")) {
			cat := normalize.Str(s, "category")
			if cat == "" {
				cat = "general"
			}
			grouped[cat] = append(grouped[cat], skillRow(s, cat))
		}
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	page := SkillsPage{
		Categories: make([]SkillCategory, 0, len(names)),
		Installed:  []InstalledSkill{},
	}
	for _, name := range names {
		page.Categories = append(page.Categories, SkillCategory{
			Name:   name,
			Skills: grouped[name],
		})
	}

	items := normalize.List(installed, "skills")
	if len(items) == 0 {
		items = normalize.List(installed, "installed")
	}
	for _, s := range normalize.MapItems(items) {
		status := normalize.Str(s, "status")
		page.Installed = append(page.Installed, InstalledSkill{
			ID:          normalize.Str(s, "id"),
			Name:        normalize.Str(s, "name"),
			Description: normalize.Str(s, "description"),
			Status:      normalize.StatusBadge(status),
			Enabled:     status == "enabled",
		})
	}
	return page
}

func skillRow(s normalize.Map, category string) SkillRow {
	return SkillRow{
		Name:        normalize.Str(s, "name"),
		Description: normalize.Str(s, "description"),
		Category:    normalize.StatusBadge(category),
	}
}
