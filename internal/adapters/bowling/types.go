package bowling

import (
	"encoding/json"
	"strconv"
)

// Resource es el JSON que devuelve el backend, tal cual: objeto, lista o escalar.
// El cliente no conoce su forma. Un *Resource nil es "sin resultado".
type Resource struct {
	v any
}

// GameResource y RollResult son lo mismo con distinto origen.
type (
	GameResource = *Resource
	RollResult   = *Resource
)

// NewResource envuelve un valor ya decodificado (map, slice, string, float64, bool).
func NewResource(v any) *Resource { return &Resource{v: v} }

type rollDTO struct {
	PlayerID string `json:"playerId"`
	Pins     int    `json:"pins"`
}

// decodeResource acepta cualquier JSON; "null" queda como nil.
func decodeResource(b []byte) (*Resource, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return &Resource{v: v}, nil
}

// Value devuelve el JSON decodificado.
func (r *Resource) Value() any {
	if r == nil {
		return nil
	}
	return r.v
}

// Object devuelve el recurso como objeto, si lo es.
func (r *Resource) Object() (map[string]any, bool) {
	m, ok := r.Value().(map[string]any)
	return m, ok
}

// ID busca el identificador con los nombres que usan los backends conocidos.
func (r *Resource) ID() string {
	for _, k := range []string{"id", "gameId", "game_id"} {
		if s := r.String(k); s != "" {
			return s
		}
	}
	return ""
}

// String lee key como texto; los números se formatean sin decimales de más.
// Si el recurso no es un objeto devuelve "".
func (r *Resource) String(key string) string {
	m, ok := r.Object()
	if !ok {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	return ""
}

// Decode vuelca el recurso en el esquema propio del que llama.
func (r *Resource) Decode(out any) error {
	b, err := json.Marshal(r.Value())
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// Pretty: JSON indentado, para mostrar.
func (r *Resource) Pretty() string {
	b, err := json.MarshalIndent(r.Value(), "", "  ")
	if err != nil {
		return "null"
	}
	return string(b)
}

func (r *Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}
