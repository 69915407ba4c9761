package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"hackathon-catalog.backend/internal/domain/entities"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
	"hackathon-catalog.backend/internal/domain/repositories"
	"hackathon-catalog.backend/internal/interfaces/http/response"
	"hackathon-catalog.backend/internal/usecases"
)

// TeamService is the team coordinator surface the handler needs.
type TeamService interface {
	Create(ctx context.Context, input usecases.CreateTeamInput) (*usecases.CreateTeamResult, error)
	GetByID(ctx context.Context, id int64) (*entities.Team, error)
	List(ctx context.Context) ([]*entities.Team, error)
	Update(ctx context.Context, input usecases.UpdateTeamInput) (*usecases.UpdateTeamResult, error)
	Delete(ctx context.Context, id int64) error
	AttachMember(ctx context.Context, teamID, participantID int64, role entities.MembershipRole) error
}

type TeamHandler struct {
	svc TeamService
}

func NewTeamHandler(svc TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

var (
	teamHackathonFields = []string{"hackathon_id", "hackathonId"}
	teamMemberFields    = []string{"participante_ids", "participanteIds"}
)

// GetTeams returns one team (or null) when ?id is given, else every team.
// GET /api/equipos
func (h *TeamHandler) GetTeams(c *gin.Context) {
	ctx := c.Request.Context()
	if raw, ok := c.GetQuery("id"); ok {
		id, err := parseQueryID(raw)
		if err != nil {
			response.Error(c, err)
			return
		}
		team, err := h.svc.GetByID(ctx, id)
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Success(c, http.StatusOK, nil)
			return
		}
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, team)
		return
	}

	teams, err := h.svc.List(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	if teams == nil {
		teams = []*entities.Team{}
	}
	response.Success(c, http.StatusOK, teams)
}

// CreateTeam writes the team and attaches the listed participants.
// POST /api/equipos
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	p, err := readPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	name, err := p.String("nombre")
	if err != nil {
		response.Error(c, err)
		return
	}
	hackathonID, err := p.Int(teamHackathonFields...)
	if err != nil {
		response.Error(c, err)
		return
	}
	memberIDs, err := p.IDList(teamMemberFields...)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := usecases.CreateTeamInput{Name: name.String, MemberIDs: memberIDs}
	if hackathonID.Valid {
		input.HackathonID = &hackathonID.Int64
	}

	result, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		response.Mutation(c, err, nil)
		return
	}

	failed := make([]gin.H, 0, len(result.FailedMembers))
	for _, f := range result.FailedMembers {
		failed = append(failed, gin.H{"participante_id": f.ParticipantID, "error": memberFailureMessage(f.Err)})
	}
	response.Mutation(c, nil, gin.H{
		"id":             result.TeamID,
		"attached":       result.Attached,
		"failed_members": failed,
	})
}

// memberFailureMessage is the client-facing cause of a failed attachment.
// Driver detail stays in the coordinator's log entry.
func memberFailureMessage(err error) string {
	if errors.Is(err, repositories.ErrTeamIDNotReturned) {
		return "id del equipo no devuelto"
	}
	return "no se pudo agregar el participante"
}

// UpdateTeam changes the team's scalar fields. Membership is never modified
// here; a body carrying member ids gets "membership_unchanged": true back.
// PUT /api/equipos
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	p, err := readPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := requireID(p)
	if err != nil {
		response.Error(c, err)
		return
	}

	input := usecases.UpdateTeamInput{ID: id, MemberIDsSupplied: p.has(teamMemberFields...)}
	if input.Name, err = p.String("nombre"); err != nil {
		response.Error(c, err)
		return
	}
	if input.HackathonID, err = p.Int(teamHackathonFields...); err != nil {
		response.Error(c, err)
		return
	}
	if _, err = p.IDList(teamMemberFields...); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.svc.Update(c.Request.Context(), input)
	var extra gin.H
	if err == nil && result.MembershipUnchanged {
		extra = gin.H{"membership_unchanged": true}
	}
	response.Mutation(c, err, extra)
}

// DeleteTeam reports the outcome of the delete call.
// DELETE /api/equipos
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	p, err := readPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := requireID(p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Mutation(c, h.svc.Delete(c.Request.Context(), id), nil)
}

// AttachMember adds one participant to an existing team.
// POST /api/equipos/miembros
func (h *TeamHandler) AttachMember(c *gin.Context) {
	p, err := readPayload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	teamID, err := p.Int("equipo_id", "equipoId")
	if err != nil {
		response.Error(c, err)
		return
	}
	participantID, err := p.Int("participante_id", "participanteId")
	if err != nil {
		response.Error(c, err)
		return
	}
	rawRole, err := p.String("rol")
	if err != nil {
		response.Error(c, err)
		return
	}
	role, ok := entities.ParseMembershipRole(rawRole.String)
	if !ok {
		response.Error(c, domainerrors.Validation("rol debe ser uno de: miembro lider mentor"))
		return
	}

	err = h.svc.AttachMember(c.Request.Context(), teamID.Int64, participantID.Int64, role)
	response.Mutation(c, err, nil)
}
