package proceduretest

import (
	"fmt"
	"sort"
	"sync"

	"hackathon-catalog.backend/internal/infrastructure/procedures"
)

// TeamStore answers the team procedures from memory the way the real ones
// behave: the create call returns the new id, membership is listed in
// ascending participant order, duplicate attachments are rejected.
type TeamStore struct {
	mu      sync.Mutex
	nextID  int64
	teams   map[int64]procedures.Row
	members map[int64]map[int64]string

	// FailAttach makes attaching these participant ids fail.
	FailAttach map[int64]bool
}

// InstallTeamStore registers the store's handlers on r.
func InstallTeamStore(r *Recorder) *TeamStore {
	s := &TeamStore{
		teams:      map[int64]procedures.Row{},
		members:    map[int64]map[int64]string{},
		FailAttach: map[int64]bool{},
	}
	r.On(procedures.CreateTeam, s.create).
		On(procedures.AttachTeamMember, s.attach).
		On(procedures.GetTeamByID, s.get).
		On(procedures.ListTeamMembers, s.listMembers).
		On(procedures.UpdateTeam, s.update).
		On(procedures.DeleteTeam, s.delete).
		On(procedures.ListTeams, s.list)
	return s
}

// Members returns the stored membership of a team in ascending order.
func (s *TeamStore) Members(teamID int64) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedMembers(teamID)
}

func (s *TeamStore) create(params []procedures.Param) ([]procedures.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.teams[id] = procedures.Row{
		"id":           id,
		"nombre":       value(params, "nombre"),
		"hackathon_id": value(params, "hackathon_id"),
	}
	s.members[id] = map[int64]string{}
	return []procedures.Row{{"id": id}}, nil
}

func (s *TeamStore) attach(params []procedures.Param) ([]procedures.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	teamID := intValue(params, "equipo_id")
	pid := intValue(params, "participante_id")
	if s.FailAttach[pid] {
		return nil, Failure(procedures.AttachTeamMember)
	}
	set, ok := s.members[teamID]
	if !ok {
		return nil, fmt.Errorf("%w: team %d does not exist", Failure(procedures.AttachTeamMember), teamID)
	}
	if _, dup := set[pid]; dup {
		return nil, fmt.Errorf("%w: duplicate member %d", Failure(procedures.AttachTeamMember), pid)
	}
	set[pid], _ = value(params, "rol").(string)
	return []procedures.Row{}, nil
}

func (s *TeamStore) get(params []procedures.Param) ([]procedures.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.teams[intValue(params, "id")]
	if !ok {
		return []procedures.Row{}, nil
	}
	return []procedures.Row{copyRow(row)}, nil
}

func (s *TeamStore) listMembers(params []procedures.Param) ([]procedures.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.sortedMembers(intValue(params, "equipo_id"))
	rows := make([]procedures.Row, len(ids))
	for i, id := range ids {
		rows[i] = procedures.Row{"id": id}
	}
	return rows, nil
}

func (s *TeamStore) update(params []procedures.Param) ([]procedures.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := intValue(params, "id")
	if _, ok := s.teams[id]; !ok {
		return []procedures.Row{}, nil
	}
	s.teams[id] = procedures.Row{
		"id":           id,
		"nombre":       value(params, "nombre"),
		"hackathon_id": value(params, "hackathon_id"),
	}
	return []procedures.Row{}, nil
}

func (s *TeamStore) delete(params []procedures.Param) ([]procedures.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := intValue(params, "id")
	delete(s.teams, id)
	delete(s.members, id)
	return []procedures.Row{}, nil
}

func (s *TeamStore) list([]procedures.Param) ([]procedures.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.teams))
	for id := range s.teams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	rows := make([]procedures.Row, len(ids))
	for i, id := range ids {
		rows[i] = copyRow(s.teams[id])
	}
	return rows, nil
}

func (s *TeamStore) sortedMembers(teamID int64) []int64 {
	ids := make([]int64, 0, len(s.members[teamID]))
	for id := range s.members[teamID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func value(params []procedures.Param, name string) any {
	for _, p := range params {
		if p.Name == name {
			return p.Value
		}
	}
	return nil
}

func intValue(params []procedures.Param, name string) int64 {
	n, _ := procedures.Row{name: value(params, name)}.Int64(name)
	return n
}

func copyRow(row procedures.Row) procedures.Row {
	out := make(procedures.Row, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}
