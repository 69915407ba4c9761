package handlers

import (
	"github.com/volatiletech/null/v8"
	"hackathon-catalog.backend/internal/domain/entities"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/usecases"
)

type (
	ExperimentalChallengeHandler = CatalogHandler[*entities.ExperimentalChallenge]
	RealChallengeHandler         = CatalogHandler[*entities.RealChallenge]
)

func NewExperimentalChallengeHandler(svc CatalogService[*entities.ExperimentalChallenge]) *ExperimentalChallengeHandler {
	return &ExperimentalChallengeHandler{
		svc: svc,
		codec: codec[*entities.ExperimentalChallenge]{
			decodeCreate: func(p payload) (*entities.ExperimentalChallenge, error) {
				patch, err := decodeExperimentalPatch(p)
				if err != nil {
					return nil, err
				}
				c := &entities.ExperimentalChallenge{ChallengeBase: newChallengeBase()}
				patch.Apply(c)
				return c, nil
			},
			decodePatch: func(p payload) (usecases.Patch[*entities.ExperimentalChallenge], error) {
				return decodeExperimentalPatch(p)
			},
		},
	}
}

func NewRealChallengeHandler(svc CatalogService[*entities.RealChallenge]) *RealChallengeHandler {
	return &RealChallengeHandler{
		svc: svc,
		codec: codec[*entities.RealChallenge]{
			decodeCreate: func(p payload) (*entities.RealChallenge, error) {
				patch, err := decodeRealPatch(p)
				if err != nil {
					return nil, err
				}
				c := &entities.RealChallenge{ChallengeBase: newChallengeBase()}
				patch.Apply(c)
				return c, nil
			},
			decodePatch: func(p payload) (usecases.Patch[*entities.RealChallenge], error) {
				return decodeRealPatch(p)
			},
		},
	}
}

func newChallengeBase() entities.ChallengeBase {
	return entities.ChallengeBase{Complexity: entities.DefaultComplexity, KnowledgeAreas: []string{}}
}

func decodeChallengePatch(p payload) (usecases.ChallengePatch, error) {
	var (
		patch usecases.ChallengePatch
		err   error
	)
	if patch.Title, err = p.String("titulo"); err != nil {
		return patch, err
	}
	if patch.Description, err = p.String("descripcion"); err != nil {
		return patch, err
	}
	complexity, err := p.String("complejidad")
	if err != nil {
		return patch, err
	}
	if complexity.Valid {
		parsed, ok := entities.ParseComplexity(complexity.String)
		if !ok {
			return patch, domainerrors.Validation("complejidad debe ser uno de: facil media dificil")
		}
		patch.Complexity = null.StringFrom(string(parsed))
	}
	if patch.KnowledgeAreas, err = p.List("areas_conocimiento", "areasConocimiento"); err != nil {
		return patch, err
	}
	return patch, nil
}

func decodeExperimentalPatch(p payload) (usecases.ExperimentalChallengePatch, error) {
	base, err := decodeChallengePatch(p)
	if err != nil {
		return usecases.ExperimentalChallengePatch{}, err
	}
	patch := usecases.ExperimentalChallengePatch{ChallengePatch: base}
	patch.PedagogicalApproach, err = p.String("enfoque_pedagogico", "enfoquePedagogico")
	return patch, err
}

func decodeRealPatch(p payload) (usecases.RealChallengePatch, error) {
	base, err := decodeChallengePatch(p)
	if err != nil {
		return usecases.RealChallengePatch{}, err
	}
	patch := usecases.RealChallengePatch{ChallengePatch: base}
	patch.CollaboratingEntity, err = p.String("entidad_colaboradora", "entidadColaboradora")
	return patch, err
}
