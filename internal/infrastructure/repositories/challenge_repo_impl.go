package repositories

import (
	"hackathon-catalog.backend/internal/domain/entities"
	domainRepos "hackathon-catalog.backend/internal/domain/repositories"
	"hackathon-catalog.backend/internal/infrastructure/procedures"
)

func NewExperimentalChallengeRepository(gw procedures.Gateway) domainRepos.ExperimentalChallengeRepository {
	return &catalogRepository[*entities.ExperimentalChallenge]{
		gw: gw,
		procs: procedureSet{
			create: procedures.CreateExperimentalChallenge,
			get:    procedures.GetExperimentalChallengeByID,
			update: procedures.UpdateExperimentalChallenge,
			delete: procedures.DeleteExperimentalChallenge,
			list:   procedures.ListExperimentalChallenges,
		},
		params: func(c *entities.ExperimentalChallenge) ([]procedures.Param, error) {
			params, err := challengeParams(&c.ChallengeBase)
			if err != nil {
				return nil, err
			}
			return append(params, procedures.P("enfoque_pedagogico", c.PedagogicalApproach)), nil
		},
		hydrate: func(row procedures.Row) (*entities.ExperimentalChallenge, error) {
			base, err := hydrateChallenge(row)
			if err != nil {
				return nil, err
			}
			return &entities.ExperimentalChallenge{
				ChallengeBase:       base,
				PedagogicalApproach: row.String("enfoque_pedagogico"),
			}, nil
		},
	}
}

func NewRealChallengeRepository(gw procedures.Gateway) domainRepos.RealChallengeRepository {
	return &catalogRepository[*entities.RealChallenge]{
		gw: gw,
		procs: procedureSet{
			create: procedures.CreateRealChallenge,
			get:    procedures.GetRealChallengeByID,
			update: procedures.UpdateRealChallenge,
			delete: procedures.DeleteRealChallenge,
			list:   procedures.ListRealChallenges,
		},
		params: func(c *entities.RealChallenge) ([]procedures.Param, error) {
			params, err := challengeParams(&c.ChallengeBase)
			if err != nil {
				return nil, err
			}
			return append(params, procedures.P("entidad_colaboradora", c.CollaboratingEntity)), nil
		},
		hydrate: func(row procedures.Row) (*entities.RealChallenge, error) {
			base, err := hydrateChallenge(row)
			if err != nil {
				return nil, err
			}
			return &entities.RealChallenge{
				ChallengeBase:       base,
				CollaboratingEntity: row.String("entidad_colaboradora"),
			}, nil
		},
	}
}

func challengeParams(b *entities.ChallengeBase) ([]procedures.Param, error) {
	areas, err := procedures.EncodeList(b.KnowledgeAreas)
	if err != nil {
		return nil, err
	}
	return []procedures.Param{
		procedures.P("id", b.ID),
		procedures.P("titulo", b.Title),
		procedures.P("descripcion", b.Description),
		procedures.P("complejidad", string(b.Complexity)),
		procedures.P("areas_conocimiento", areas),
	}, nil
}

func hydrateChallenge(row procedures.Row) (entities.ChallengeBase, error) {
	id, err := row.Int64("id")
	if err != nil {
		return entities.ChallengeBase{}, err
	}
	areas, err := row.StringList("areas_conocimiento")
	if err != nil {
		return entities.ChallengeBase{}, err
	}
	complexity, ok := entities.ParseComplexity(row.String("complejidad"))
	if !ok {
		complexity = entities.DefaultComplexity
	}
	return entities.ChallengeBase{
		ID:             id,
		Title:          row.String("titulo"),
		Description:    row.String("descripcion"),
		Complexity:     complexity,
		KnowledgeAreas: areas,
	}, nil
}
