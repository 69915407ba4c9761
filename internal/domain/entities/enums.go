package entities

import "strings"

type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "principiante"
	SkillLevelIntermediate SkillLevel = "intermedio"
	SkillLevelAdvanced     SkillLevel = "avanzado"

	DefaultSkillLevel = SkillLevelIntermediate
)

var skillLevelAliases = map[string]SkillLevel{
	"principiante": SkillLevelBeginner,
	"beginner":     SkillLevelBeginner,
	"intermedio":   SkillLevelIntermediate,
	"intermediate": SkillLevelIntermediate,
	"avanzado":     SkillLevelAdvanced,
	"advanced":     SkillLevelAdvanced,
}

// ParseSkillLevel normalizes a storage value or its English name. An empty
// value yields the default level.
func ParseSkillLevel(raw string) (SkillLevel, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return DefaultSkillLevel, true
	}
	level, ok := skillLevelAliases[key]
	return level, ok
}

type Complexity string

const (
	ComplexityEasy   Complexity = "facil"
	ComplexityMedium Complexity = "media"
	ComplexityHard   Complexity = "dificil"

	DefaultComplexity = ComplexityMedium
)

var complexityAliases = map[string]Complexity{
	"facil":   ComplexityEasy,
	"fácil":   ComplexityEasy,
	"easy":    ComplexityEasy,
	"media":   ComplexityMedium,
	"medium":  ComplexityMedium,
	"dificil": ComplexityHard,
	"difícil": ComplexityHard,
	"hard":    ComplexityHard,
}

// ParseComplexity normalizes a storage value or its English name. An empty
// value yields the default complexity.
func ParseComplexity(raw string) (Complexity, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return DefaultComplexity, true
	}
	c, ok := complexityAliases[key]
	return c, ok
}

// MembershipRole labels a participant's relation to a team.
type MembershipRole string

const (
	RoleMember MembershipRole = "miembro"
	RoleLeader MembershipRole = "lider"
	RoleMentor MembershipRole = "mentor"
)

var roleAliases = map[string]MembershipRole{
	"miembro": RoleMember,
	"member":  RoleMember,
	"lider":   RoleLeader,
	"líder":   RoleLeader,
	"leader":  RoleLeader,
	"mentor":  RoleMentor,
}

func ParseMembershipRole(raw string) (MembershipRole, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return RoleMember, true
	}
	role, ok := roleAliases[key]
	return role, ok
}
