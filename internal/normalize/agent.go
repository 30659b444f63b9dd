package normalize

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// AgentView is the display-ready projection of a raw agent record.
type AgentView struct {
	DisplayName   string
	Email         string
	AvatarInitial string
	Model         string
}

// Internal agent identifiers are UUID-shaped and must never leak into the
// email column.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ResolveAgent computes the full display projection of a raw agent record.
func ResolveAgent(agent Map) AgentView {
	name := ResolveDisplayName(agent)
	return AgentView{
		DisplayName:   name,
		Email:         ResolveEmail(agent),
		AvatarInitial: AvatarInitial(name),
		Model:         ResolveModel(agent),
	}
}

// ResolveDisplayName picks the agent display name, first non-empty wins:
// config.identity.name > config.name > config.displayName > name.
func ResolveDisplayName(agent Map) string {
	config := Child(agent, "config")
	identity := Child(config, "identity")
	if v := Str(identity, "name"); v != "" {
		return v
	}
	if v := Str(config, "name"); v != "" {
		return v
	}
	if v := Str(config, "displayName"); v != "" {
		return v
	}
	return Str(agent, "name")
}

// ResolveEmail picks the agent email address, first non-empty wins:
// config.identity.email > config.email > email. A resolved value that is
// UUID-shaped is an internal identifier, not an address, and is suppressed.
func ResolveEmail(agent Map) string {
	config := Child(agent, "config")
	identity := Child(config, "identity")
	email := Str(identity, "email")
	if email == "" {
		email = Str(config, "email")
	}
	if email == "" {
		email = Str(agent, "email")
	}
	if uuidPattern.MatchString(email) {
		return ""
	}
	return email
}

// AvatarInitial returns the uppercased first character of name, or "?"
// when no name resolved.
func AvatarInitial(name string) string {
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// ModelRefKind discriminates the two wire shapes of config.model.
type ModelRefKind int

const (
	ModelRefAbsent ModelRefKind = iota
	ModelRefScalar
	ModelRefStructured
)

// ModelRef is the config.model field, which arrives either as a plain
// string or as an object carrying modelId and provider.
type ModelRef struct {
	Kind     ModelRefKind
	Value    string
	ModelID  string
	Provider string
}

// DecodeModelRef classifies a raw config.model value.
func DecodeModelRef(v any) ModelRef {
	switch m := v.(type) {
	case nil:
		return ModelRef{Kind: ModelRefAbsent}
	case Map:
		return ModelRef{
			Kind:     ModelRefStructured,
			ModelID:  Str(m, "modelId"),
			Provider: Str(m, "provider"),
		}
	case string:
		return ModelRef{Kind: ModelRefScalar, Value: m}
	default:
		return ModelRef{Kind: ModelRefScalar, Value: fmt.Sprintf("%v", m)}
	}
}

// Display returns the model string to show: modelId over provider for the
// structured shape, the raw value for the scalar shape, "" when absent.
func (r ModelRef) Display() string {
	switch r.Kind {
	case ModelRefStructured:
		if r.ModelID != "" {
			return r.ModelID
		}
		return r.Provider
	case ModelRefScalar:
		return r.Value
	default:
		return ""
	}
}

// ResolveModel extracts the display model string from config.model.
func ResolveModel(agent Map) string {
	return DecodeModelRef(Child(agent, "config")["model"]).Display()
}
