package entities

type ParticipantKind string

const (
	ParticipantKindStudent ParticipantKind = "estudiante"
	ParticipantKindMentor  ParticipantKind = "mentor"
)

// ParticipantBase holds the fields every participant kind shares.
type ParticipantBase struct {
	ID         int64      `json:"id"`
	Name       string     `json:"nombre" validate:"required"`
	Email      string     `json:"email" validate:"required"`
	SkillLevel SkillLevel `json:"nivel_habilidad" validate:"oneof=principiante intermedio avanzado"`
	Skills     []string   `json:"habilidades"`
}

// Participant is implemented only by *Student and *Mentor.
type Participant interface {
	Kind() ParticipantKind
	Base() *ParticipantBase
}

type Student struct {
	ParticipantBase
	Grade                string `json:"grado"`
	Institution          string `json:"institucion"`
	WeeklyAvailableHours int    `json:"tiempo_disponible_semanal" validate:"min=0"`
}

func (s *Student) Kind() ParticipantKind  { return ParticipantKindStudent }
func (s *Student) Base() *ParticipantBase { return &s.ParticipantBase }
func (s *Student) Validate() error        { return validateStruct(s) }

type Mentor struct {
	ParticipantBase
	Specialty          string `json:"especialidad" validate:"required"`
	YearsExperience    int    `json:"experiencia" validate:"min=0"`
	AvailabilityWindow string `json:"disponibilidad_horaria"`
}

func (m *Mentor) Kind() ParticipantKind  { return ParticipantKindMentor }
func (m *Mentor) Base() *ParticipantBase { return &m.ParticipantBase }
func (m *Mentor) Validate() error        { return validateStruct(m) }
