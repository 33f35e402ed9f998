package cmd

import (
	"errors"
	"strings"
)

// Parser turns raw tokens into Args according to an ordered slot list.
// It stops at the first failing slot.
type Parser struct {
	slots []Slot
}

// NewParser validates slots and returns a parser over them.
func NewParser(slots ...Slot) (*Parser, error) {
	p := &Parser{}
	for _, s := range slots {
		if err := p.add(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Parser) add(s Slot) error {
	if s.Name == "" {
		return ErrSlotOrder
	}
	if len(s.Types) == 0 {
		return ErrSlotOrder
	}
	for _, existing := range p.slots {
		if existing.Name == s.Name {
			return ErrSlotOrder
		}
	}
	if n := len(p.slots); n > 0 {
		last := p.slots[n-1]
		if last.terminal() {
			return ErrSlotOrder
		}
		if last.Optional && !s.Optional {
			return ErrSlotOrder
		}
	}
	p.slots = append(p.slots, s)
	return nil
}

// Slots returns a copy of the declared slots.
func (p *Parser) Slots() []Slot {
	return append([]Slot(nil), p.slots...)
}

// Required reports whether at least one slot must be supplied.
func (p *Parser) Required() bool {
	return len(p.slots) > 0 && !p.slots[0].Optional
}

// Parse resolves raw against the slots. Args is only populated when no
// error is returned.
func (p *Parser) Parse(raw []string) (Args, []ErrorRecord) {
	tokens := Tokenize(raw)
	fail := func(kind ErrorKind, slot, token int, detail string) (Args, []ErrorRecord) {
		return Args{}, []ErrorRecord{{
			Kind:       kind,
			SlotIndex:  slot,
			TokenIndex: token,
			Tokens:     raw,
			Detail:     detail,
		}}
	}

	if len(tokens) == 0 && p.Required() {
		return fail(NoArguments, 0, 0, "")
	}

	var args Args
	cursor := 0
	for i, slot := range p.slots {
		if cursor >= len(tokens) {
			if !slot.Optional {
				return fail(InsufficientArguments, i, cursor, "")
			}
			break
		}
		value, next, failed, err := slot.consume(tokens, cursor)
		if err != nil {
			if errors.Is(err, ErrRejected) {
				return fail(InvalidArguments, i, failed, strings.TrimPrefix(err.Error(), ErrRejected.Error()+": "))
			}
			return fail(InvalidArgValue, i, failed, "")
		}
		args.set(slot.Name, value)
		cursor = next
	}

	if cursor < len(tokens) {
		return fail(TooManyArguments, len(p.slots), cursor, "")
	}
	return args, nil
}
