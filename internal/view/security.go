package view

import "github.com/agenticmail/dashboard/internal/normalize"

// DLPRule is one configured data loss prevention rule.
type DLPRule struct {
	ID       string
	Name     string
	Type     string
	Pattern  string
	Action   string
	Severity normalize.Badge
}

// DLPViolation is one recorded rule violation.
type DLPViolation struct {
	Rule     string
	Message  string
	Severity normalize.Badge
	Time     string
}

// DLPPage is the data loss prevention page model.
type DLPPage struct {
	Rules      []DLPRule
	Violations []DLPViolation
}

// DLP shapes the rules and violations responses.
func DLP(rules, violations normalize.Map) DLPPage {
	page := DLPPage{
		Rules:      []DLPRule{},
		Violations: []DLPViolation{},
	}
	for _, r := range normalize.MapItems(normalize.List(rules, "rules")) {
		page.Rules = append(page.Rules, DLPRule{
			ID:       normalize.Str(r, "id"),
			Name:     normalize.Str(r, "name"),
			Type:     normalize.Str(r, "type"),
			Pattern:  normalize.Str(r, "pattern"),
			Action:   normalize.Str(r, "action"),
			Severity: SeverityBadge(normalize.Str(r, "severity")),
		})
	}
	for _, v := range normalize.MapItems(normalize.List(violations, "violations")) {
		page.Violations = append(page.Violations, DLPViolation{
			Rule:     normalize.Str(v, "rule"),
			Message:  normalize.Str(v, "message"),
			Severity: SeverityBadge(normalize.Str(v, "severity")),
			Time:     normalize.Str(v, "timestamp"),
		})
	}
	return page
}

// SeverityBadge classifies a DLP severity the same way risk levels are.
func SeverityBadge(severity string) normalize.Badge {
	return RiskBadge(severity)
}

// Intervention is one guardrail intervention row.
type Intervention struct {
	ID        string
	Agent     string
	Reason    string
	Status    normalize.Badge
	Time      string
	CanResume bool
}

// AnomalyRule is one configured anomaly detection rule.
type AnomalyRule struct {
	ID        string
	Name      string
	Condition string
	Action    normalize.Badge
	Threshold string
}

// GuardrailsPage is the guardrails page model.
type GuardrailsPage struct {
	Interventions []Intervention
	AnomalyRules  []AnomalyRule
}

// Guardrails shapes the interventions and anomaly rules responses. Only
// paused agents offer a resume action.
func Guardrails(interventions, rules normalize.Map) GuardrailsPage {
	page := GuardrailsPage{
		Interventions: []Intervention{},
		AnomalyRules:  []AnomalyRule{},
	}
	for _, i := range normalize.MapItems(normalize.List(interventions, "interventions")) {
		status := normalize.Str(i, "status")
		page.Interventions = append(page.Interventions, Intervention{
			ID:        normalize.Str(i, "id"),
			Agent:     normalize.Str(i, "agent"),
			Reason:    normalize.Str(i, "reason"),
			Status:    normalize.StatusBadge(status),
			Time:      normalize.Str(i, "timestamp"),
			CanResume: status == "paused",
		})
	}
	for _, r := range normalize.MapItems(normalize.List(rules, "rules")) {
		page.AnomalyRules = append(page.AnomalyRules, AnomalyRule{
			ID:        normalize.Str(r, "id"),
			Name:      normalize.Str(r, "name"),
			Condition: normalize.Str(r, "condition"),
			Action:    normalize.StatusBadge(normalize.Str(r, "action")),
			Threshold: normalize.Str(r, "threshold"),
		})
	}
	return page
}

// JournalStats is the stat strip of the journal page.
type JournalStats struct {
	TotalEntries   int
	TotalActions   int
	TotalRollbacks int
}

// JournalPage is the action journal page model.
type JournalPage struct {
	Entries []JournalRow
	Stats   JournalStats
}

// Journal shapes the journal listing plus its stats response.
func Journal(entries, stats normalize.Map) JournalPage {
	return JournalPage{
		Entries: JournalRows(entries),
		Stats: JournalStats{
			TotalEntries:   normalize.Int(stats, "totalEntries"),
			TotalActions:   normalize.Int(stats, "totalActions"),
			TotalRollbacks: normalize.Int(stats, "totalRollbacks"),
		},
	}
}

// SecretRow is one vault secret line. Values never reach the view.
type SecretRow struct {
	ID        string
	Name      string
	Category  normalize.Badge
	CreatedBy string
	Created   string
}

// VaultList shapes the vault secrets response.
func VaultList(data normalize.Map) []SecretRow {
	items := normalize.MapItems(normalize.List(data, "secrets"))
	rows := make([]SecretRow, 0, len(items))
	for _, s := range items {
		rows = append(rows, SecretRow{
			ID:        normalize.Str(s, "id"),
			Name:      normalize.Str(s, "name"),
			Category:  normalize.StatusBadge(normalize.Str(s, "category")),
			CreatedBy: normalize.FirstStr(s, "created_by", "createdBy"),
			Created:   normalize.FirstStr(s, "created_at", "createdAt"),
		})
	}
	return rows
}

// ComplianceReport is one generated report line.
type ComplianceReport struct {
	ID          string
	Name        string
	Type        normalize.Badge
	Status      normalize.Badge
	GeneratedAt string
}

// ComplianceList shapes the compliance reports response.
func ComplianceList(data normalize.Map) []ComplianceReport {
	items := normalize.MapItems(normalize.List(data, "reports"))
	rows := make([]ComplianceReport, 0, len(items))
	for _, r := range items {
		rows = append(rows, ComplianceReport{
			ID:          normalize.Str(r, "id"),
			Name:        normalize.Str(r, "name"),
			Type:        normalize.StatusBadge(normalize.Str(r, "type")),
			Status:      normalize.StatusBadge(normalize.Str(r, "status")),
			GeneratedAt: normalize.Str(r, "generatedAt"),
		})
	}
	return rows
}
