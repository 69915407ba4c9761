package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"hackathon-catalog.backend/internal/domain/entities"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/domain/repositories"
	"hackathon-catalog.backend/internal/metrics"
	"hackathon-catalog.backend/pkg/logger"
)

// TeamUsecase coordinates the team procedures. Creating a team writes the
// team row and then attaches each member with its own call on the same
// connection; nothing is rolled back when an attachment fails.
type TeamUsecase struct {
	teamRepo repositories.TeamRepository
	session  repositories.Session
}

func NewTeamUsecase(teamRepo repositories.TeamRepository, session repositories.Session) *TeamUsecase {
	return &TeamUsecase{
		teamRepo: teamRepo,
		session:  session,
	}
}

type CreateTeamInput struct {
	Name        string
	HackathonID *int64
	MemberIDs   []int64
}

// MemberFailure records one attachment that did not succeed.
type MemberFailure struct {
	ParticipantID int64
	Err           error
}

type CreateTeamResult struct {
	TeamID        int64
	Attached      []int64
	FailedMembers []MemberFailure
}

// Partial reports whether the team row exists but some members were not
// attached.
func (r *CreateTeamResult) Partial() bool {
	return len(r.FailedMembers) > 0
}

// Create persists the team row, then attaches MemberIDs in order with the
// default role. Duplicate ids are attempted as given.
func (u *TeamUsecase) Create(ctx context.Context, input CreateTeamInput) (*CreateTeamResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.Validation("nombre es obligatorio")
	}
	if input.HackathonID == nil {
		return nil, domainerrors.Validation("hackathon_id es obligatorio")
	}
	for _, id := range input.MemberIDs {
		if id <= 0 {
			return nil, domainerrors.Validation(fmt.Sprintf("participante_ids contiene un id inválido: %d", id))
		}
	}

	team := &entities.Team{Name: name, HackathonID: *input.HackathonID}
	if err := team.Validate(); err != nil {
		return nil, domainerrors.Validation(err.Error())
	}

	result := &CreateTeamResult{
		Attached:      []int64{},
		FailedMembers: []MemberFailure{},
	}
	err := u.session.Do(ctx, func(ctx context.Context) error {
		teamID, err := u.teamRepo.Create(ctx, team)
		if errors.Is(err, repositories.ErrTeamIDNotReturned) {
			// The row exists; without its id no member can be attached.
			logger.Warn(ctx, "Team created without a returned id", zap.Error(err))
			for _, participantID := range input.MemberIDs {
				metrics.TeamMemberAttachFailures.Inc()
				result.FailedMembers = append(result.FailedMembers, MemberFailure{ParticipantID: participantID, Err: err})
			}
			return nil
		}
		if err != nil {
			return err
		}
		result.TeamID = teamID

		for _, participantID := range input.MemberIDs {
			membership := entities.Membership{TeamID: teamID, ParticipantID: participantID, Role: entities.RoleMember}
			if err := u.teamRepo.AttachMember(ctx, membership); err != nil {
				metrics.TeamMemberAttachFailures.Inc()
				logger.Warn(ctx, "Team member attach failed",
					zap.Int64("team_id", teamID),
					zap.Int64("participant_id", participantID),
					zap.Error(err),
				)
				result.FailedMembers = append(result.FailedMembers, MemberFailure{ParticipantID: participantID, Err: err})
				continue
			}
			result.Attached = append(result.Attached, participantID)
		}
		return nil
	})
	if err != nil {
		return nil, persistenceError("create team", err)
	}

	if result.Partial() {
		logger.Warn(ctx, "Team created with missing members",
			zap.Int64("team_id", result.TeamID),
			zap.Int("attached", len(result.Attached)),
			zap.Int("failed", len(result.FailedMembers)),
		)
	}
	return result, nil
}

// GetByID reads the team row and then its membership. A missing team is
// ErrNotFound; a team with no members has an empty MemberIDs.
func (u *TeamUsecase) GetByID(ctx context.Context, id int64) (*entities.Team, error) {
	team, err := u.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, persistenceError("get team", err)
	}
	if err := u.loadMembers(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// List reads every team row, then one membership listing per team.
func (u *TeamUsecase) List(ctx context.Context) ([]*entities.Team, error) {
	teams, err := u.teamRepo.List(ctx)
	if err != nil {
		return nil, persistenceError("list teams", err)
	}
	for _, team := range teams {
		if err := u.loadMembers(ctx, team); err != nil {
			return nil, err
		}
	}
	return teams, nil
}

func (u *TeamUsecase) loadMembers(ctx context.Context, team *entities.Team) error {
	ids, err := u.teamRepo.ListMemberIDs(ctx, team.ID)
	if err != nil {
		return persistenceError(fmt.Sprintf("list members of team %d", team.ID), err)
	}
	team.MemberIDs = ids
	return nil
}

// UpdateTeamInput carries the fields of a partial update. Invalid (absent)
// fields keep their stored value.
type UpdateTeamInput struct {
	ID                int64
	Name              null.String
	HackathonID       null.Int64
	MemberIDsSupplied bool
}

type UpdateTeamResult struct {
	Team *entities.Team
	// MembershipUnchanged is set when the caller sent member ids, which an
	// update never applies.
	MembershipUnchanged bool
}

func (u *TeamUsecase) Update(ctx context.Context, input UpdateTeamInput) (*UpdateTeamResult, error) {
	if input.ID <= 0 {
		return nil, domainerrors.Validation("id es obligatorio")
	}

	team, err := u.teamRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("equipo %d no encontrado", input.ID))
		}
		return nil, persistenceError("load team", err)
	}

	if input.Name.Valid {
		team.Name = strings.TrimSpace(input.Name.String)
	}
	if input.HackathonID.Valid {
		team.HackathonID = input.HackathonID.Int64
	}
	if err := team.Validate(); err != nil {
		return nil, domainerrors.Validation(err.Error())
	}

	if err := u.teamRepo.Update(ctx, team); err != nil {
		return nil, persistenceError("update team", err)
	}
	return &UpdateTeamResult{Team: team, MembershipUnchanged: input.MemberIDsSupplied}, nil
}

// Delete reports the outcome of the delete call only.
func (u *TeamUsecase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domainerrors.Validation("id es obligatorio")
	}
	if err := u.teamRepo.Delete(ctx, id); err != nil {
		return persistenceError("delete team", err)
	}
	return nil
}

// AttachMember adds one participant to an existing team.
func (u *TeamUsecase) AttachMember(ctx context.Context, teamID, participantID int64, role entities.MembershipRole) error {
	membership := entities.Membership{TeamID: teamID, ParticipantID: participantID, Role: role}
	if err := membership.Validate(); err != nil {
		return domainerrors.Validation(err.Error())
	}

	return u.session.Do(ctx, func(ctx context.Context) error {
		if _, err := u.teamRepo.GetByID(ctx, teamID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound(fmt.Sprintf("equipo %d no encontrado", teamID))
			}
			return persistenceError("load team", err)
		}
		if err := u.teamRepo.AttachMember(ctx, membership); err != nil {
			return persistenceError("attach member", err)
		}
		return nil
	})
}
