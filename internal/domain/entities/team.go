package entities

// Team groups participants for one hackathon. MemberIDs is always the
// membership read from storage for this request, never a client-supplied copy.
type Team struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre" validate:"required"`
	HackathonID int64   `json:"hackathon_id,string"`
	MemberIDs   []int64 `json:"participante_ids"`
}

func (t *Team) Validate() error { return validateStruct(t) }

// Membership links one participant to one team under a role.
type Membership struct {
	TeamID        int64          `validate:"gt=0"`
	ParticipantID int64          `validate:"gt=0"`
	Role          MembershipRole `validate:"oneof=miembro lider mentor"`
}

func (m Membership) Validate() error { return validateStruct(m) }
