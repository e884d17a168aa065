package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyCertificateName is returned when no volunteer name is given.
var ErrEmptyCertificateName = errors.New("volunteer name is required")

// Certificate is a rendered completion certificate.
type Certificate struct {
	Serial   string
	Name     string
	IssuedAt time.Time
	Body     string
}

// RenderCertificate produces a plain-text completion certificate for a
// volunteer, stamped with a unique serial.
func RenderCertificate(name string, issuedAt time.Time) (Certificate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Certificate{}, ErrEmptyCertificateName
	}

	serial := uuid.NewString()
	body := fmt.Sprintf(
		"CERTIFICATE OF APPRECIATION\n\nThis certifies that\n\n    %s\n\nhas completed their volunteer service.\n\nIssued %s\nSerial %s\n",
		name,
		issuedAt.Format("January 2, 2006"),
		serial,
	)

	return Certificate{
		Serial:   serial,
		Name:     name,
		IssuedAt: issuedAt,
		Body:     body,
	}, nil
}
