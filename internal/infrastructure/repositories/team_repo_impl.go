package repositories

import (
	"context"
	"fmt"

	"hackathon-catalog.backend/internal/domain/entities"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	domainRepos "hackathon-catalog.backend/internal/domain/repositories"
	"hackathon-catalog.backend/internal/infrastructure/procedures"
)

type TeamRepository struct {
	gw procedures.Gateway
}

var _ domainRepos.TeamRepository = (*TeamRepository)(nil)

func NewTeamRepository(gw procedures.Gateway) *TeamRepository {
	return &TeamRepository{gw: gw}
}

// Create issues the team-row call and returns the id the procedure reports
// for the new row. A completed call without a usable id returns
// ErrTeamIDNotReturned: the row was written, but members cannot be attached.
func (r *TeamRepository) Create(ctx context.Context, team *entities.Team) (int64, error) {
	rows, err := r.gw.Call(ctx, procedures.CreateTeam,
		procedures.P("id", int64(0)),
		procedures.P("nombre", team.Name),
		procedures.P("hackathon_id", team.HackathonID),
	)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("%s: %w", procedures.CreateTeam, domainRepos.ErrTeamIDNotReturned)
	}
	id, err := rows[0].Int64("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s: %w: invalid id in result: %v", procedures.CreateTeam, domainRepos.ErrTeamIDNotReturned, err)
	}
	return id, nil
}

func (r *TeamRepository) AttachMember(ctx context.Context, m entities.Membership) error {
	_, err := r.gw.Call(ctx, procedures.AttachTeamMember,
		procedures.P("equipo_id", m.TeamID),
		procedures.P("participante_id", m.ParticipantID),
		procedures.P("rol", string(m.Role)),
	)
	return err
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*entities.Team, error) {
	rows, err := r.gw.Call(ctx, procedures.GetTeamByID, procedures.P("id", id))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return hydrateTeam(rows[0])
}

// ListMemberIDs returns participant ids in the order storage yields them.
func (r *TeamRepository) ListMemberIDs(ctx context.Context, teamID int64) ([]int64, error) {
	rows, err := r.gw.Call(ctx, procedures.ListTeamMembers, procedures.P("equipo_id", teamID))
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		id, err := row.Int64("id")
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", procedures.ListTeamMembers, domainerrors.ErrPersistenceFailure, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*entities.Team, error) {
	rows, err := r.gw.Call(ctx, procedures.ListTeams)
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Team, 0, len(rows))
	for _, row := range rows {
		team, err := hydrateTeam(row)
		if err != nil {
			return nil, err
		}
		items = append(items, team)
	}
	return items, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.Team) error {
	_, err := r.gw.Call(ctx, procedures.UpdateTeam,
		procedures.P("id", team.ID),
		procedures.P("nombre", team.Name),
		procedures.P("hackathon_id", team.HackathonID),
	)
	return err
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.gw.Call(ctx, procedures.DeleteTeam, procedures.P("id", id))
	return err
}

// hydrateTeam builds the scalar part of a team; MemberIDs stays empty until
// the membership listing fills it.
func hydrateTeam(row procedures.Row) (*entities.Team, error) {
	id, err := row.Int64("id")
	if err != nil {
		return nil, fmt.Errorf("decode team row: %w: %w", domainerrors.ErrPersistenceFailure, err)
	}
	hackathonID, err := row.Int64("hackathon_id")
	if err != nil {
		return nil, fmt.Errorf("decode team %d: %w: %w", id, domainerrors.ErrPersistenceFailure, err)
	}
	return &entities.Team{
		ID:          id,
		Name:        row.String("nombre"),
		HackathonID: hackathonID,
		MemberIDs:   []int64{},
	}, nil
}
