package entities

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs the struct tags and flattens the first violations into
// a message that names the wire field.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := wireNames[fe.StructField()]
	if field == "" {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return field + " es obligatorio"
	case "oneof":
		return field + " debe ser uno de: " + fe.Param()
	case "min", "gte":
		return field + " debe ser mayor o igual a " + fe.Param()
	case "gt":
		return field + " debe ser mayor que " + fe.Param()
	default:
		return field + " no es válido"
	}
}

var wireNames = map[string]string{
	"Name":                 "nombre",
	"Email":                "email",
	"SkillLevel":           "nivel_habilidad",
	"WeeklyAvailableHours": "tiempo_disponible_semanal",
	"Specialty":            "especialidad",
	"YearsExperience":      "experiencia",
	"Title":                "titulo",
	"Description":          "descripcion",
	"Complexity":           "complejidad",
	"PedagogicalApproach":  "enfoque_pedagogico",
	"CollaboratingEntity":  "entidad_colaboradora",
	"HackathonID":          "hackathon_id",
	"TeamID":               "equipo_id",
	"ParticipantID":        "participante_id",
	"Role":                 "rol",
}
