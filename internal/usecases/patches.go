package usecases

import (
	"github.com/volatiletech/null/v8"
	"hackathon-catalog.backend/internal/domain/entities"
)

// Partial-update payloads. Only Valid null fields are applied. A nil list
// means the field was absent; an empty non-nil list clears it. Enum values
// arrive already normalized to their storage form.

type ParticipantPatch struct {
	Name       null.String
	Email      null.String
	SkillLevel null.String
	Skills     []string
}

func (p ParticipantPatch) apply(b *entities.ParticipantBase) {
	if p.Name.Valid {
		b.Name = p.Name.String
	}
	if p.Email.Valid {
		b.Email = p.Email.String
	}
	if p.SkillLevel.Valid {
		b.SkillLevel = entities.SkillLevel(p.SkillLevel.String)
	}
	if p.Skills != nil {
		b.Skills = p.Skills
	}
}

type StudentPatch struct {
	ParticipantPatch
	Grade                null.String
	Institution          null.String
	WeeklyAvailableHours null.Int
}

func (p StudentPatch) Apply(s *entities.Student) {
	p.apply(&s.ParticipantBase)
	if p.Grade.Valid {
		s.Grade = p.Grade.String
	}
	if p.Institution.Valid {
		s.Institution = p.Institution.String
	}
	if p.WeeklyAvailableHours.Valid {
		s.WeeklyAvailableHours = p.WeeklyAvailableHours.Int
	}
}

type MentorPatch struct {
	ParticipantPatch
	Specialty          null.String
	YearsExperience    null.Int
	AvailabilityWindow null.String
}

func (p MentorPatch) Apply(m *entities.Mentor) {
	p.apply(&m.ParticipantBase)
	if p.Specialty.Valid {
		m.Specialty = p.Specialty.String
	}
	if p.YearsExperience.Valid {
		m.YearsExperience = p.YearsExperience.Int
	}
	if p.AvailabilityWindow.Valid {
		m.AvailabilityWindow = p.AvailabilityWindow.String
	}
}

type ChallengePatch struct {
	Title          null.String
	Description    null.String
	Complexity     null.String
	KnowledgeAreas []string
}

func (p ChallengePatch) apply(b *entities.ChallengeBase) {
	if p.Title.Valid {
		b.Title = p.Title.String
	}
	if p.Description.Valid {
		b.Description = p.Description.String
	}
	if p.Complexity.Valid {
		b.Complexity = entities.Complexity(p.Complexity.String)
	}
	if p.KnowledgeAreas != nil {
		b.KnowledgeAreas = p.KnowledgeAreas
	}
}

type ExperimentalChallengePatch struct {
	ChallengePatch
	PedagogicalApproach null.String
}

func (p ExperimentalChallengePatch) Apply(c *entities.ExperimentalChallenge) {
	p.apply(&c.ChallengeBase)
	if p.PedagogicalApproach.Valid {
		c.PedagogicalApproach = p.PedagogicalApproach.String
	}
}

type RealChallengePatch struct {
	ChallengePatch
	CollaboratingEntity null.String
}

func (p RealChallengePatch) Apply(c *entities.RealChallenge) {
	p.apply(&c.ChallengeBase)
	if p.CollaboratingEntity.Valid {
		c.CollaboratingEntity = p.CollaboratingEntity.String
	}
}
