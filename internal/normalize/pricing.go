package normalize

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MergeModelPricing fills the model pricing response with its defaults: an
// empty model list and USD. A modelPricingConfig wrapper key is unwrapped
// when present.
func MergeModelPricing(raw Map) Map {
	cfg := unwrap(raw, "modelPricingConfig")
	models, ok := cfg["models"].([]any)
	if !ok {
		models = []any{}
	}
	currency := Str(cfg, "currency")
	if currency == "" {
		currency = "USD"
	}
	return Map{"models": models, "currency": currency}
}

// ModelPricingFromForm rebuilds the pricing payload from the settings form.
// Existing rows arrive as indexed mp_* fields counted by mp_model_count; a
// trailing mp_new_* row is appended when both its provider and model id are
// set. Rows missing either are dropped.
func ModelPricingFromForm(form url.Values) Map {
	count, _ := strconv.Atoi(form.Get("mp_model_count"))
	models := []any{}
	for i := 0; i < count; i++ {
		if m, ok := pricingRow(form, fmt.Sprintf("mp_%%s_%d", i)); ok {
			models = append(models, m)
		}
	}
	if m, ok := pricingRow(form, "mp_new_%s"); ok {
		models = append(models, m)
	}

	currency := form.Get("mp_currency")
	if currency == "" {
		currency = "USD"
	}
	return Map{"models": models, "currency": currency}
}

func pricingRow(form url.Values, pattern string) (Map, bool) {
	field := func(name string) string {
		return strings.TrimSpace(form.Get(fmt.Sprintf(pattern, name)))
	}
	provider := field("provider")
	modelID := field("modelId")
	if provider == "" || modelID == "" {
		return nil, false
	}
	return Map{
		"provider":             provider,
		"modelId":              modelID,
		"displayName":          field("displayName"),
		"inputCostPerMillion":  formFloat(field("input")),
		"outputCostPerMillion": formFloat(field("output")),
		"contextWindow":        formIntString(field("context")),
	}, true
}

func formFloat(value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return f
}

func formIntString(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
