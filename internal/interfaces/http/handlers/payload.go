package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"
	domainerrors "hackathon-catalog.backend/internal/domain/errors"
)

// payload is a decoded JSON object body. Getters take the accepted spellings
// of a field in priority order (snake_case first) and treat JSON null as an
// absent field.
type payload map[string]json.RawMessage

// maxPayloadBytes caps a request body; catalog records are a few hundred bytes.
const maxPayloadBytes = 1 << 20

func readPayload(c *gin.Context) (payload, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domainerrors.Validation(fmt.Sprintf("el cuerpo supera %d bytes", maxPayloadBytes))
		}
		return nil, domainerrors.Validation("no se pudo leer el cuerpo de la petición")
	}
	p := payload{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, domainerrors.Validation("el cuerpo debe ser un objeto JSON")
	}
	return p, nil
}

func (p payload) lookup(names ...string) (json.RawMessage, string, bool) {
	for _, name := range names {
		raw, ok := p[name]
		if !ok || string(bytes.TrimSpace(raw)) == "null" {
			continue
		}
		return raw, name, true
	}
	return nil, names[0], false
}

// has reports whether any spelling of the field is present, null included.
func (p payload) has(names ...string) bool {
	for _, name := range names {
		if _, ok := p[name]; ok {
			return true
		}
	}
	return false
}

// String accepts a JSON string or number and trims it.
func (p payload) String(names ...string) (null.String, error) {
	raw, name, ok := p.lookup(names...)
	if !ok {
		return null.String{}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return null.StringFrom(strings.TrimSpace(s)), nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return null.StringFrom(n.String()), nil
	}
	return null.String{}, domainerrors.Validation(name + " debe ser texto")
}

// Int accepts a JSON integer or a decimal string.
func (p payload) Int(names ...string) (null.Int64, error) {
	raw, name, ok := p.lookup(names...)
	if !ok {
		return null.Int64{}, nil
	}
	n, err := parseInt(raw)
	if err != nil {
		return null.Int64{}, domainerrors.Validation(name + " debe ser un número entero")
	}
	return null.Int64From(n), nil
}

// List requires a JSON array of strings. An absent field is nil; a present
// one is never nil.
func (p payload) List(names ...string) ([]string, error) {
	raw, name, ok := p.lookup(names...)
	if !ok {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domainerrors.Validation(name + " debe ser una lista de textos")
	}
	if items == nil {
		items = []string{}
	}
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items, nil
}

// IDList requires a JSON array whose elements are integers or decimal
// strings.
func (p payload) IDList(names ...string) ([]int64, error) {
	raw, name, ok := p.lookup(names...)
	if !ok {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, domainerrors.Validation(name + " debe ser una lista")
	}
	ids := make([]int64, 0, len(elems))
	for _, elem := range elems {
		id, err := parseInt(elem)
		if err != nil {
			return nil, domainerrors.Validation(fmt.Sprintf("%s contiene un valor no entero: %s", name, elem))
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseInt(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.ParseInt(n.String(), 10, 64)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

// requireID reads the positive id every PUT and DELETE body carries.
func requireID(p payload) (int64, error) {
	id, err := p.Int("id")
	if err != nil {
		return 0, err
	}
	if !id.Valid || id.Int64 <= 0 {
		return 0, domainerrors.Validation("id es obligatorio")
	}
	return id.Int64, nil
}
