package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hackathon-catalog.backend/internal/infrastructure/procedures"
	"hackathon-catalog.backend/internal/infrastructure/procedures/proceduretest"
	"hackathon-catalog.backend/internal/infrastructure/repositories"
	"hackathon-catalog.backend/internal/usecases"
)

const studentsPath = "/api/estudiantes"

func studentRow() procedures.Row {
	return procedures.Row{
		"id": int64(3), "nombre": "Ana", "email": "ana@example.com", "nivel_habilidad": "avanzado",
		"habilidades": `["go","sql"]`, "grado": "11", "institucion": "Colegio Central", "tiempo_disponible_semanal": int64(10),
	}
}

func newStudentRouter(rec *proceduretest.Recorder) http.Handler {
	uc := usecases.NewStudentUsecase(repositories.NewStudentRepository(rec))
	return newResourceRouter(studentsPath, NewStudentHandler(uc))
}

func TestStudentHandler_GetByID(t *testing.T) {
	rec := proceduretest.NewRecorder().Returns(procedures.GetStudentByID, studentRow())
	w := doJSON(t, newStudentRouter(rec), http.MethodGet, studentsPath+"?id=3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": 3, "nombre": "Ana", "email": "ana@example.com", "nivel_habilidad": "avanzado",
		"habilidades": ["go","sql"], "grado": "11", "institucion": "Colegio Central", "tiempo_disponible_semanal": 10
	}`, w.Body.String())
}

func TestStudentHandler_GetMissingIsNull(t *testing.T) {
	w := doJSON(t, newStudentRouter(proceduretest.NewRecorder()), http.MethodGet, studentsPath+"?id=99", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestStudentHandler_GetNonPositiveIDIsNull(t *testing.T) {
	for _, raw := range []string{"0", "-4"} {
		rec := proceduretest.NewRecorder()
		w := doJSON(t, newStudentRouter(rec), http.MethodGet, studentsPath+"?id="+raw, nil)
		require.Equal(t, http.StatusOK, w.Code, raw)
		assert.Equal(t, "null", w.Body.String(), raw)
		assert.Empty(t, rec.Calls(), raw)
	}
}

func TestStudentHandler_GetNonIntegerID(t *testing.T) {
	rec := proceduretest.NewRecorder()
	w := doJSON(t, newStudentRouter(rec), http.MethodGet, studentsPath+"?id=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
	assert.Empty(t, rec.Calls())
}

func TestStudentHandler_ListEmptyIsArray(t *testing.T) {
	w := doJSON(t, newStudentRouter(proceduretest.NewRecorder()), http.MethodGet, studentsPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestStudentHandler_ListFailureIs500(t *testing.T) {
	rec := proceduretest.NewRecorder().Fails(procedures.ListStudents)
	w := doJSON(t, newStudentRouter(rec), http.MethodGet, studentsPath, nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestStudentHandler_CreateAcceptsCamelCaseAndAliases(t *testing.T) {
	rec := proceduretest.NewRecorder()
	w := doJSON(t, newStudentRouter(rec), http.MethodPost, studentsPath, map[string]any{
		"nombre":                  "Ana",
		"email":                   "ana@example.com",
		"nivelHabilidad":          "beginner",
		"habilidades":             []string{"go"},
		"intitucion":              "Colegio Central",
		"tiempoDisponibleSemanal": "8",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	calls := rec.CallsTo(procedures.CreateStudent)
	require.Len(t, calls, 1)
	assert.Equal(t, "principiante", calls[0].Param("nivel_habilidad"))
	assert.Equal(t, "Colegio Central", calls[0].Param("institucion"))
	assert.Equal(t, int64(8), calls[0].Param("tiempo_disponible"))
}

func TestStudentHandler_SnakeCaseWins(t *testing.T) {
	rec := proceduretest.NewRecorder()
	w := doJSON(t, newStudentRouter(rec), http.MethodPost, studentsPath, map[string]any{
		"nombre":                    "Ana",
		"email":                     "ana@example.com",
		"tiempo_disponible_semanal": 4,
		"tiempoDisponibleSemanal":   9,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(4), rec.CallsTo(procedures.CreateStudent)[0].Param("tiempo_disponible"))
	assert.Equal(t, "intermedio", rec.CallsTo(procedures.CreateStudent)[0].Param("nivel_habilidad"))
}

func TestStudentHandler_CreateRejectsBadInputWithoutCalls(t *testing.T) {
	cases := map[string]any{
		"missing email":      map[string]any{"nombre": "Ana"},
		"skills as string":   map[string]any{"nombre": "Ana", "email": "a@b.c", "habilidades": "go, sql"},
		"unknown level":      map[string]any{"nombre": "Ana", "email": "a@b.c", "nivel_habilidad": "experto"},
		"non integer hours":  map[string]any{"nombre": "Ana", "email": "a@b.c", "tiempo_disponible_semanal": "mucho"},
		"body is not object": `["Ana"]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := proceduretest.NewRecorder()
			w := doJSON(t, newStudentRouter(rec), http.MethodPost, studentsPath, body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			assert.Contains(t, decodeBody(t, w), "error")
			assert.Empty(t, rec.Calls())
		})
	}
}

func TestStudentHandler_CreateRejectsOversizedBody(t *testing.T) {
	rec := proceduretest.NewRecorder()
	body := `{"nombre":"Ana","email":"a@b.c","institucion":"` + strings.Repeat("x", maxPayloadBytes) + `"}`
	w := doJSON(t, newStudentRouter(rec), http.MethodPost, studentsPath, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "supera")
	assert.Empty(t, rec.Calls())
}

func TestStudentHandler_CreatePersistenceFailure(t *testing.T) {
	rec := proceduretest.NewRecorder().Fails(procedures.CreateStudent)
	w := doJSON(t, newStudentRouter(rec), http.MethodPost, studentsPath, map[string]any{"nombre": "Ana", "email": "a@b.c"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
}

func TestStudentHandler_UpdatePartial(t *testing.T) {
	rec := proceduretest.NewRecorder().Returns(procedures.GetStudentByID, studentRow())
	w := doJSON(t, newStudentRouter(rec), http.MethodPut, studentsPath, map[string]any{"id": 3, "grado": "12"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	update := rec.CallsTo(procedures.UpdateStudent)[0]
	assert.Equal(t, "12", update.Param("grado"))
	assert.Equal(t, "Ana", update.Param("nombre"))
	assert.JSONEq(t, `["go","sql"]`, update.Param("habilidades").(string))
}

func TestStudentHandler_UpdateWithUnknownStoredLevel(t *testing.T) {
	row := studentRow()
	row["nivel_habilidad"] = "experto"
	rec := proceduretest.NewRecorder().Returns(procedures.GetStudentByID, row)
	w := doJSON(t, newStudentRouter(rec), http.MethodPut, studentsPath, map[string]any{"id": 3, "grado": "12"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	updates := rec.CallsTo(procedures.UpdateStudent)
	require.Len(t, updates, 1)
	assert.Equal(t, "12", updates[0].Param("grado"))
	assert.Equal(t, "intermedio", updates[0].Param("nivel_habilidad"))
}

func TestStudentHandler_UpdateErrors(t *testing.T) {
	rec := proceduretest.NewRecorder()
	r := newStudentRouter(rec)

	w := doJSON(t, r, http.MethodPut, studentsPath, map[string]any{"grado": "12"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(t, r, http.MethodPut, studentsPath, map[string]any{"id": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, rec.Calls())

	w = doJSON(t, r, http.MethodPut, studentsPath, map[string]any{"id": 3, "habilidades": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, rec.Calls())

	w = doJSON(t, r, http.MethodPut, studentsPath, map[string]any{"id": 77, "grado": "12"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestStudentHandler_Delete(t *testing.T) {
	rec := proceduretest.NewRecorder()
	r := newStudentRouter(rec)

	w := doJSON(t, r, http.MethodDelete, studentsPath, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, studentsPath, map[string]any{"id": "3"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, int64(3), rec.CallsTo(procedures.DeleteStudent)[0].Param("id"))
}

func TestMentorHandler_CreateAndGet(t *testing.T) {
	rec := proceduretest.NewRecorder().Returns(procedures.ListMentors, procedures.Row{
		"id": int64(2), "nombre": "Luis", "email": "luis@example.com", "nivel_habilidad": "avanzado",
		"habilidades": `[]`, "especialidad": "Backend", "experiencia_anos": int64(8), "disponibilidad_horaria": "Lun",
	})
	r := newResourceRouter("/api/mentores", NewMentorHandler(usecases.NewMentorUsecase(repositories.NewMentorRepository(rec))))

	w := doJSON(t, r, http.MethodPost, "/api/mentores", map[string]any{
		"nombre": "Luis", "email": "luis@example.com", "especialidad": "Backend",
		"experiencia": 8, "disponibilidadHoraria": "Lun 9-12",
	})
	require.Equal(t, http.StatusOK, w.Code)
	call := rec.CallsTo(procedures.CreateMentor)[0]
	assert.Equal(t, "Lun 9-12", call.Param("disponibilidad"))
	assert.Equal(t, int64(8), call.Param("experiencia"))

	w = doJSON(t, r, http.MethodPost, "/api/mentores", map[string]any{"nombre": "Luis", "email": "luis@example.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "especialidad")

	w = doJSON(t, r, http.MethodGet, "/api/mentores", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{
		"id": 2, "nombre": "Luis", "email": "luis@example.com", "nivel_habilidad": "avanzado", "habilidades": [],
		"especialidad": "Backend", "experiencia": 8, "disponibilidad_horaria": "Lun"
	}]`, w.Body.String())
}

func TestChallengeHandlers(t *testing.T) {
	rec := proceduretest.NewRecorder()
	exp := newResourceRouter("/api/retos_experimentales",
		NewExperimentalChallengeHandler(usecases.NewExperimentalChallengeUsecase(repositories.NewExperimentalChallengeRepository(rec))))
	reals := newResourceRouter("/api/retos_reales",
		NewRealChallengeHandler(usecases.NewRealChallengeUsecase(repositories.NewRealChallengeRepository(rec))))

	w := doJSON(t, exp, http.MethodPost, "/api/retos_experimentales", map[string]any{
		"titulo": "Robótica", "descripcion": "Brazo", "complejidad": "hard",
		"areasConocimiento": []string{"fisica"}, "enfoquePedagogico": "STEAM",
	})
	require.Equal(t, http.StatusOK, w.Code)
	call := rec.CallsTo(procedures.CreateExperimentalChallenge)[0]
	assert.Equal(t, "dificil", call.Param("complejidad"))
	assert.Equal(t, `["fisica"]`, call.Param("areas_conocimiento"))

	w = doJSON(t, reals, http.MethodPost, "/api/retos_reales", map[string]any{
		"titulo": "Agua", "descripcion": "Potabilizar", "areas_conocimiento": "quimica", "entidad_colaboradora": "Alcaldía",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, rec.CallsTo(procedures.CreateRealChallenge))

	w = doJSON(t, reals, http.MethodPost, "/api/retos_reales", map[string]any{
		"titulo": "Agua", "descripcion": "Potabilizar", "complejidad": "extrema", "entidad_colaboradora": "Alcaldía",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, reals, http.MethodPost, "/api/retos_reales", map[string]any{
		"titulo": "Agua", "descripcion": "Potabilizar", "entidadColaboradora": "Alcaldía",
	})
	require.Equal(t, http.StatusOK, w.Code)
	call = rec.CallsTo(procedures.CreateRealChallenge)[0]
	assert.Equal(t, "media", call.Param("complejidad"))
	assert.Equal(t, "[]", call.Param("areas_conocimiento"))
}
