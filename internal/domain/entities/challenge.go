package entities

type ChallengeKind string

const (
	ChallengeKindExperimental ChallengeKind = "experimental"
	ChallengeKindReal         ChallengeKind = "real"
)

// ChallengeBase holds the fields every challenge kind shares.
type ChallengeBase struct {
	ID             int64      `json:"id"`
	Title          string     `json:"titulo" validate:"required"`
	Description    string     `json:"descripcion" validate:"required"`
	Complexity     Complexity `json:"complejidad" validate:"oneof=facil media dificil"`
	KnowledgeAreas []string   `json:"areas_conocimiento"`
}

// Challenge is implemented only by *ExperimentalChallenge and *RealChallenge.
type Challenge interface {
	Kind() ChallengeKind
	Base() *ChallengeBase
}

type ExperimentalChallenge struct {
	ChallengeBase
	PedagogicalApproach string `json:"enfoque_pedagogico" validate:"required"`
}

func (e *ExperimentalChallenge) Kind() ChallengeKind  { return ChallengeKindExperimental }
func (e *ExperimentalChallenge) Base() *ChallengeBase { return &e.ChallengeBase }
func (e *ExperimentalChallenge) Validate() error      { return validateStruct(e) }

type RealChallenge struct {
	ChallengeBase
	CollaboratingEntity string `json:"entidad_colaboradora" validate:"required"`
}

func (r *RealChallenge) Kind() ChallengeKind  { return ChallengeKindReal }
func (r *RealChallenge) Base() *ChallengeBase { return &r.ChallengeBase }
func (r *RealChallenge) Validate() error      { return validateStruct(r) }
