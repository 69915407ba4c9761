package repositories

import (
	"context"
	"errors"

	"hackathon-catalog.backend/internal/domain/entities"
)

// ErrTeamIDNotReturned means the team-row call completed but reported no
// usable id for the new row.
var ErrTeamIDNotReturned = errors.New("team id not returned")

// TeamRepository exposes the team procedures one call per method. GetByID and
// List return the scalar team row only; membership comes from ListMemberIDs.
type TeamRepository interface {
	Create(ctx context.Context, team *entities.Team) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Team, error)
	List(ctx context.Context) ([]*entities.Team, error)
	ListMemberIDs(ctx context.Context, teamID int64) ([]int64, error)
	AttachMember(ctx context.Context, membership entities.Membership) error
	Update(ctx context.Context, team *entities.Team) error
	Delete(ctx context.Context, id int64) error
}
