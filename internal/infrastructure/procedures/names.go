package procedures

// Stored procedure names.
const (
	CreateTeam       = "sp_crear_equipo"
	AttachTeamMember = "sp_agregar_participante_equipo"
	GetTeamByID      = "sp_obtener_equipo_por_id"
	ListTeamMembers  = "sp_obtener_participantes_equipo"
	UpdateTeam       = "sp_actualizar_equipo"
	DeleteTeam       = "sp_eliminar_equipo"
	ListTeams        = "sp_listar_equipos"

	CreateStudent  = "sp_crear_estudiante"
	GetStudentByID = "sp_obtener_estudiante_por_id"
	UpdateStudent  = "sp_actualizar_estudiante"
	DeleteStudent  = "sp_eliminar_estudiante"
	ListStudents   = "sp_listar_estudiantes"

	CreateMentor  = "sp_crear_mentor_tecnico"
	GetMentorByID = "sp_obtener_mentor_por_id"
	UpdateMentor  = "sp_actualizar_mentor_tecnico"
	DeleteMentor  = "sp_eliminar_mentor_tecnico"
	ListMentors   = "sp_listar_mentores"

	CreateExperimentalChallenge  = "sp_crear_reto_experimental"
	GetExperimentalChallengeByID = "sp_obtener_reto_experimental_por_id"
	UpdateExperimentalChallenge  = "sp_actualizar_reto_experimental"
	DeleteExperimentalChallenge  = "sp_eliminar_reto_experimental"
	ListExperimentalChallenges   = "sp_listar_retos_experimentales"

	CreateRealChallenge  = "sp_crear_reto_real"
	GetRealChallengeByID = "sp_obtener_reto_real_por_id"
	UpdateRealChallenge  = "sp_actualizar_reto_real"
	DeleteRealChallenge  = "sp_eliminar_reto_real"
	ListRealChallenges   = "sp_listar_retos_reales"
)
