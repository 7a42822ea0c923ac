package candidate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Status is the closed set of review states a candidate can be in.
// Values are case-sensitive and match the wire format exactly.
type Status string

const (
	StatusPending     Status = "pending"
	StatusShortlisted Status = "shortlisted"
	StatusReview      Status = "review"
	StatusRejected    Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusShortlisted, StatusReview, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// SkillScore is one skill/proficiency pair. Proficiency is 0-100.
type SkillScore struct {
	Name  string
	Score int
}

// Skills is a skill-name to proficiency mapping that remembers insertion
// order. It marshals to a plain JSON object, keys in order of first
// occurrence, so stored and exported candidates keep the order the skills
// appeared in on intake.
type Skills []SkillScore

func (s Skills) Get(name string) (int, bool) {
	for _, it := range s {
		if it.Name == name {
			return it.Score, true
		}
	}
	return 0, false
}

// Set overwrites an existing entry in place or appends a new one.
func (s Skills) Set(name string, score int) Skills {
	for i, it := range s {
		if it.Name == name {
			s[i].Score = score
			return s
		}
	}
	return append(s, SkillScore{Name: name, Score: score})
}

func (s Skills) Names() []string {
	out := make([]string, 0, len(s))
	for _, it := range s {
		out = append(out, it.Name)
	}
	return out
}

func (s Skills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(it.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", it.Score)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Skills) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("skills: expected JSON object, got %v", tok)
	}

	out := Skills{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: non-string key %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		num, ok := valTok.(json.Number)
		if !ok {
			return fmt.Errorf("skills: non-numeric score for %q", key)
		}
		f, err := num.Float64()
		if err != nil {
			return err
		}
		out = out.Set(key, int(f))
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*s = out
	return nil
}

// Experience is one prior engagement parsed from the intake CSV. Any of the
// three parts may be empty when the source token was incomplete.
type Experience struct {
	Company string `json:"company,omitempty"`
	Role    string `json:"role,omitempty"`
	Years   string `json:"years,omitempty"`
}

// Candidate is the persisted intake record. Score, Skills and Experience are
// fixed at ingestion; only Status and Notes change afterwards.
type Candidate struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Position   string       `json:"position"`
	Score      int          `json:"score"`
	Skills     Skills       `json:"skills"`
	Status     Status       `json:"status"`
	Experience []Experience `json:"experience,omitempty"`
	Notes      string       `json:"notes"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// Insert carries the fields the ingestion pipeline provides; the store
// assigns ID and CreatedAt.
type Insert struct {
	Name       string
	Email      string
	Position   string
	Score      int
	Skills     Skills
	Status     Status
	Experience []Experience
	Notes      string
}
