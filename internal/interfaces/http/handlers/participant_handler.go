package handlers

import (
	"github.com/volatiletech/null/v8"
	"hackathon-catalog.backend/internal/domain/entities"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/usecases"
)

type (
	StudentHandler = CatalogHandler[*entities.Student]
	MentorHandler  = CatalogHandler[*entities.Mentor]
)

func NewStudentHandler(svc CatalogService[*entities.Student]) *StudentHandler {
	return &StudentHandler{
		svc: svc,
		codec: codec[*entities.Student]{
			decodeCreate: func(p payload) (*entities.Student, error) {
				patch, err := decodeStudentPatch(p)
				if err != nil {
					return nil, err
				}
				s := &entities.Student{ParticipantBase: newParticipantBase()}
				patch.Apply(s)
				return s, nil
			},
			decodePatch: func(p payload) (usecases.Patch[*entities.Student], error) {
				return decodeStudentPatch(p)
			},
		},
	}
}

func NewMentorHandler(svc CatalogService[*entities.Mentor]) *MentorHandler {
	return &MentorHandler{
		svc: svc,
		codec: codec[*entities.Mentor]{
			decodeCreate: func(p payload) (*entities.Mentor, error) {
				patch, err := decodeMentorPatch(p)
				if err != nil {
					return nil, err
				}
				m := &entities.Mentor{ParticipantBase: newParticipantBase()}
				patch.Apply(m)
				return m, nil
			},
			decodePatch: func(p payload) (usecases.Patch[*entities.Mentor], error) {
				return decodeMentorPatch(p)
			},
		},
	}
}

func newParticipantBase() entities.ParticipantBase {
	return entities.ParticipantBase{SkillLevel: entities.DefaultSkillLevel, Skills: []string{}}
}

func decodeParticipantPatch(p payload) (usecases.ParticipantPatch, error) {
	var (
		patch usecases.ParticipantPatch
		err   error
	)
	if patch.Name, err = p.String("nombre"); err != nil {
		return patch, err
	}
	if patch.Email, err = p.String("email"); err != nil {
		return patch, err
	}
	level, err := p.String("nivel_habilidad", "nivelHabilidad")
	if err != nil {
		return patch, err
	}
	if level.Valid {
		parsed, ok := entities.ParseSkillLevel(level.String)
		if !ok {
			return patch, domainerrors.Validation("nivel_habilidad debe ser uno de: principiante intermedio avanzado")
		}
		patch.SkillLevel = null.StringFrom(string(parsed))
	}
	if patch.Skills, err = p.List("habilidades"); err != nil {
		return patch, err
	}
	return patch, nil
}

func decodeStudentPatch(p payload) (usecases.StudentPatch, error) {
	base, err := decodeParticipantPatch(p)
	if err != nil {
		return usecases.StudentPatch{}, err
	}
	patch := usecases.StudentPatch{ParticipantPatch: base}
	if patch.Grade, err = p.String("grado"); err != nil {
		return patch, err
	}
	if patch.Institution, err = p.String("institucion", "intitucion"); err != nil {
		return patch, err
	}
	hours, err := p.Int("tiempo_disponible_semanal", "tiempoDisponibleSemanal")
	if err != nil {
		return patch, err
	}
	if hours.Valid {
		patch.WeeklyAvailableHours = null.IntFrom(int(hours.Int64))
	}
	return patch, nil
}

func decodeMentorPatch(p payload) (usecases.MentorPatch, error) {
	base, err := decodeParticipantPatch(p)
	if err != nil {
		return usecases.MentorPatch{}, err
	}
	patch := usecases.MentorPatch{ParticipantPatch: base}
	if patch.Specialty, err = p.String("especialidad"); err != nil {
		return patch, err
	}
	years, err := p.Int("experiencia")
	if err != nil {
		return patch, err
	}
	if years.Valid {
		patch.YearsExperience = null.IntFrom(int(years.Int64))
	}
	if patch.AvailabilityWindow, err = p.String("disponibilidad_horaria", "disponibilidadHoraria"); err != nil {
		return patch, err
	}
	return patch, nil
}
