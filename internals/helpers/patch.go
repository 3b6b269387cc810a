package helper

import "encoding/json"

/*
PatchField adalah util 3-state untuk PATCH/merge-patch:
- field tidak dikirim  -> Present=false
- field dikirim nilai  -> Present=true,  Value != nil
- field dikirim null   -> Present=true,  Value == nil

Fields must be declared by value (not *PatchField) so a JSON null still reaches UnmarshalJSON.
*/
type PatchField[T any] struct {
	Present bool `json:"-"`
	Value   *T   `json:"-"`
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) IsNull() bool       { return p.Present && p.Value == nil }
func (p PatchField[T]) ShouldUpdate() bool { return p.Present }

// Set builds a present field, mostly for tests and seeds.
func Set[T any](v T) PatchField[T] { return PatchField[T]{Present: true, Value: &v} }
