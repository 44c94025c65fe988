package main

import (
	"context"
	"fmt"
	"time"
)

// Draft carries the caller-collected fields of a record that has not been
// stamped with its identifier and creation time yet.
type Draft interface {
	Kind() Kind
	draftID() string
	build(id string, at time.Time) Record
}

// CreateYCHRequest is the payload for recording a won auction slot.
type CreateYCHRequest struct {
	ID        string `json:"id"`
	Customer  string `json:"customer"`
	Reference string `json:"reference"`
	Art       string `json:"art"`
	Slot      string `json:"slot"`
	Contact   string `json:"contact"`
	Price     string `json:"price"`
	Payment   string `json:"payment"`
}

func (CreateYCHRequest) Kind() Kind { return KindYCH }

func (d CreateYCHRequest) draftID() string { return d.ID }

func (d CreateYCHRequest) build(id string, at time.Time) Record {
	return YCH{
		ID:        id,
		Date:      at,
		Customer:  d.Customer,
		Reference: d.Reference,
		Art:       d.Art,
		Slot:      d.Slot,
		Contact:   d.Contact,
		Price:     d.Price,
		Payment:   d.Payment,
	}
}

// CreateCommissionRequest is the payload for recording a commission.
type CreateCommissionRequest struct {
	ID          string `json:"id"`
	Art         string `json:"art"`
	Customer    string `json:"customer"`
	Contact     string `json:"contact"`
	Price       string `json:"price"`
	Payment     string `json:"payment"`
	Description string `json:"description"`
}

func (CreateCommissionRequest) Kind() Kind { return KindCommission }

func (d CreateCommissionRequest) draftID() string { return d.ID }

func (d CreateCommissionRequest) build(id string, at time.Time) Record {
	return Commission{
		ID:          id,
		Date:        at,
		Art:         d.Art,
		Customer:    d.Customer,
		Contact:     d.Contact,
		Price:       d.Price,
		Payment:     d.Payment,
		Description: d.Description,
	}
}

// CreateRequestRequest is the payload for recording an art request.
type CreateRequestRequest struct {
	ID          string `json:"id"`
	Customer    string `json:"customer"`
	Contact     string `json:"contact"`
	Art         string `json:"art"`
	Description string `json:"description"`
}

func (CreateRequestRequest) Kind() Kind { return KindRequest }

func (d CreateRequestRequest) draftID() string { return d.ID }

func (d CreateRequestRequest) build(id string, at time.Time) Record {
	return Request{
		ID:          id,
		Date:        at,
		Customer:    d.Customer,
		Contact:     d.Contact,
		Art:         d.Art,
		Description: d.Description,
	}
}

// Stamp turns a draft into a record. The draft's own id is kept when set;
// otherwise ids supplies one. The creation time always comes from clock.
func Stamp(ctx context.Context, d Draft, ids IDGenerator, clock Clock) (Record, error) {
	id := d.draftID()
	if id == "" {
		var err error
		id, err = ids.NextID(ctx, d.Kind())
		if err != nil {
			return nil, fmt.Errorf("generate %s id: %w", d.Kind(), err)
		}
	}
	return d.build(id, clock.Now()), nil
}
