package main

import (
	"strings"
	"time"
)

// Kind identifies one of the record schemas.
type Kind string

const (
	KindUnknown    Kind = ""
	KindYCH        Kind = "ych"
	KindCommission Kind = "commission"
	KindRequest    Kind = "request"
)

// Extension returns the stable file extension for the kind, without the dot.
func (k Kind) Extension() string {
	switch k {
	case KindYCH:
		return "amy"
	case KindCommission:
		return "amc"
	case KindRequest:
		return "amr"
	}
	return ""
}

// KindFromExtension maps a file extension (with or without the leading dot) to its kind.
func KindFromExtension(ext string) Kind {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, k := range []Kind{KindYCH, KindCommission, KindRequest} {
		if k.Extension() == ext {
			return k
		}
	}
	return KindUnknown
}

// Record is implemented by every record kind that can be persisted or rendered.
type Record interface {
	Kind() Kind
	// NameParts returns the fields the file name is computed from, in order.
	NameParts() []string
}

// FileName computes the lower-cased file name a record is persisted under.
func FileName(r Record) string {
	return strings.ToLower(strings.Join(r.NameParts(), " - ")) + "." + r.Kind().Extension()
}

// YCH is a slot won by a customer in an art auction.
type YCH struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Customer  string    `json:"customer"`
	Reference string    `json:"reference"`
	Art       string    `json:"art"`
	Slot      string    `json:"slot"`
	Contact   string    `json:"contact"`
	Price     string    `json:"price"`
	Payment   string    `json:"payment"`
}

func (YCH) Kind() Kind { return KindYCH }

func (y YCH) NameParts() []string { return []string{y.Art, y.Slot, y.Customer} }

// Commission is a paid, described piece of art ordered by a customer.
type Commission struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Art         string    `json:"art"`
	Customer    string    `json:"customer"`
	Contact     string    `json:"contact"`
	Price       string    `json:"price"`
	Payment     string    `json:"payment"`
	Description string    `json:"description"`
}

func (Commission) Kind() Kind { return KindCommission }

func (c Commission) NameParts() []string { return []string{c.Art, c.Customer} }

// Request is an unpaid art request.
type Request struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Customer    string    `json:"customer"`
	Contact     string    `json:"contact"`
	Art         string    `json:"art"`
	Description string    `json:"description"`
}

func (Request) Kind() Kind { return KindRequest }

func (r Request) NameParts() []string { return []string{r.Art, r.Customer} }
