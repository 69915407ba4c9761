package repositories

import (
	"hackathon-catalog.backend/internal/domain/entities"
	domainRepos "hackathon-catalog.backend/internal/domain/repositories"
	"hackathon-catalog.backend/internal/infrastructure/procedures"
)

func NewStudentRepository(gw procedures.Gateway) domainRepos.StudentRepository {
	return &catalogRepository[*entities.Student]{
		gw: gw,
		procs: procedureSet{
			create: procedures.CreateStudent,
			get:    procedures.GetStudentByID,
			update: procedures.UpdateStudent,
			delete: procedures.DeleteStudent,
			list:   procedures.ListStudents,
		},
		params:  studentParams,
		hydrate: hydrateStudent,
	}
}

func NewMentorRepository(gw procedures.Gateway) domainRepos.MentorRepository {
	return &catalogRepository[*entities.Mentor]{
		gw: gw,
		procs: procedureSet{
			create: procedures.CreateMentor,
			get:    procedures.GetMentorByID,
			update: procedures.UpdateMentor,
			delete: procedures.DeleteMentor,
			list:   procedures.ListMentors,
		},
		params:  mentorParams,
		hydrate: hydrateMentor,
	}
}

func participantParams(b *entities.ParticipantBase) ([]procedures.Param, error) {
	skills, err := procedures.EncodeList(b.Skills)
	if err != nil {
		return nil, err
	}
	return []procedures.Param{
		procedures.P("id", b.ID),
		procedures.P("nombre", b.Name),
		procedures.P("email", b.Email),
		procedures.P("nivel_habilidad", string(b.SkillLevel)),
		procedures.P("habilidades", skills),
	}, nil
}

func studentParams(s *entities.Student) ([]procedures.Param, error) {
	params, err := participantParams(&s.ParticipantBase)
	if err != nil {
		return nil, err
	}
	return append(params,
		procedures.P("grado", s.Grade),
		procedures.P("institucion", s.Institution),
		procedures.P("tiempo_disponible", int64(s.WeeklyAvailableHours)),
	), nil
}

func mentorParams(m *entities.Mentor) ([]procedures.Param, error) {
	params, err := participantParams(&m.ParticipantBase)
	if err != nil {
		return nil, err
	}
	return append(params,
		procedures.P("especialidad", m.Specialty),
		procedures.P("experiencia", int64(m.YearsExperience)),
		procedures.P("disponibilidad", m.AvailabilityWindow),
	), nil
}

func hydrateParticipant(row procedures.Row) (entities.ParticipantBase, error) {
	id, err := row.Int64("id")
	if err != nil {
		return entities.ParticipantBase{}, err
	}
	skills, err := row.StringList("habilidades")
	if err != nil {
		return entities.ParticipantBase{}, err
	}
	// A level outside the known set reads as the default so the entity
	// stays writable by a partial update.
	level, ok := entities.ParseSkillLevel(row.String("nivel_habilidad"))
	if !ok {
		level = entities.DefaultSkillLevel
	}
	return entities.ParticipantBase{
		ID:         id,
		Name:       row.String("nombre"),
		Email:      row.String("email"),
		SkillLevel: level,
		Skills:     skills,
	}, nil
}

func hydrateStudent(row procedures.Row) (*entities.Student, error) {
	base, err := hydrateParticipant(row)
	if err != nil {
		return nil, err
	}
	return &entities.Student{
		ParticipantBase:      base,
		Grade:                row.String("grado"),
		Institution:          row.String("institucion"),
		WeeklyAvailableHours: row.Int("tiempo_disponible_semanal"),
	}, nil
}

func hydrateMentor(row procedures.Row) (*entities.Mentor, error) {
	base, err := hydrateParticipant(row)
	if err != nil {
		return nil, err
	}
	return &entities.Mentor{
		ParticipantBase:    base,
		Specialty:          row.String("especialidad"),
		YearsExperience:    row.Int("experiencia_anos"),
		AvailabilityWindow: row.String("disponibilidad_horaria"),
	}, nil
}
