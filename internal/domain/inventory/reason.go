package inventory

import (
	"strings"

	"github.com/chukwumela909/Web-App-sub001/internal/domain"
)

// Reason motivo de ajuste manual de stock.
type Reason string

// Vocabulario fijo de motivos de ajuste.
const (
	ReasonCountCorrection Reason = "COUNT_CORRECTION"
	ReasonDamaged         Reason = "DAMAGED"
	ReasonExpired         Reason = "EXPIRED"
	ReasonTheft           Reason = "THEFT"
	ReasonInitial         Reason = "INITIAL"
	ReasonReturn          Reason = "RETURN"
	ReasonOther           Reason = "OTHER"
)

var reasonLabels = map[Reason]string{
	ReasonCountCorrection: "Stock count correction",
	ReasonDamaged:         "Damaged goods",
	ReasonExpired:         "Expired products",
	ReasonTheft:           "Theft/Loss",
	ReasonInitial:         "Initial stock setup",
	ReasonReturn:          "Customer return",
	ReasonOther:           "Other",
}

// Reasons devuelve el vocabulario en orden de presentación.
func Reasons() []Reason {
	return []Reason{
		ReasonCountCorrection, ReasonDamaged, ReasonExpired, ReasonTheft,
		ReasonInitial, ReasonReturn, ReasonOther,
	}
}

// Label texto legible del motivo.
func (r Reason) Label() string {
	return reasonLabels[r]
}

// ParseReason acepta el código ("DAMAGED") o la etiqueta ("Damaged goods"), sin distinguir mayúsculas.
func ParseReason(s string) (Reason, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.ErrInvalidReason
	}
	for _, r := range Reasons() {
		if strings.EqualFold(s, string(r)) || strings.EqualFold(s, r.Label()) {
			return r, nil
		}
	}
	return "", domain.ErrInvalidReason
}
