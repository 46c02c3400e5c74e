package form

import (
	"encoding/json"
	"fmt"
)

// Op is the kind of a Change.
type Op string

const (
	OpSet    Op = "set"
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

// Change is one edit to a form, as sent by a client.
//
//	{"op":"set","field":"name","value":"Jane"}
//	{"op":"add","section":"skills","entry":{"name":"Go","level":"5"}}
//	{"op":"update","section":"skills","index":0,"entry":{...}}
//	{"op":"remove","section":"experience","index":1}
type Change struct {
	Op      Op              `json:"op"`
	Field   string          `json:"field,omitempty"`
	Value   string          `json:"value,omitempty"`
	Section Section         `json:"section,omitempty"`
	Index   *int            `json:"index,omitempty"`
	Entry   json.RawMessage `json:"entry,omitempty"`
}

// Apply performs c on the form.
func (f *Form) Apply(c Change) error {
	switch c.Op {
	case OpSet:
		return f.Set(c.Field, c.Value)
	case OpAdd:
		return f.Add(c.Section, c.Entry)
	case OpUpdate:
		i, err := c.index()
		if err != nil {
			return err
		}
		return f.Update(c.Section, i, c.Entry)
	case OpRemove:
		i, err := c.index()
		if err != nil {
			return err
		}
		return f.Remove(c.Section, i)
	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, c.Op)
}

// At returns a pointer to i for building update and remove changes.
func At(i int) *int { return &i }

func (c Change) index() (int, error) {
	if c.Index == nil {
		return 0, fmt.Errorf("%w: %s", ErrIndexRequired, c.Op)
	}
	return *c.Index, nil
}
