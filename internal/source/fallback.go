// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package source

import "github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"

// fallbackEvents is the fixed, version-controlled collection substituted
// when the upstream source fails, so the events page never renders an
// empty state purely due to transport failure. Dates are intentionally
// far future so the entries stay visible in upcoming views until the
// upstream recovers.
var fallbackEvents = []models.Event{
	{
		ID:                  "fallback-1",
		Name:                "Ogólnopolski Kongres Kardiologiczny",
		Description:         "Trzydniowy kongres poświęcony diagnostyce i terapii chorób układu krążenia.",
		Date:                "2027-03-12",
		Time:                "09:00",
		Location:            "Warszawa, Centrum Expo XXI",
		LocationMode:        models.LocationInPerson,
		Category:            "Kardiologia",
		EventType:           models.TypeConference,
		Price:               "Bilet od 499 zł",
		MaxParticipants:     1200,
		CurrentParticipants: 415,
	},
	{
		ID:                  "fallback-2",
		Name:                "Webinar: Antybiotykoterapia w POZ",
		Description:         "Racjonalna antybiotykoterapia w praktyce lekarza rodzinnego.",
		Date:                "2027-01-20",
		Time:                "18:00",
		Location:            "Online",
		LocationMode:        models.LocationOnline,
		Category:            "Medycyna rodzinna",
		EventType:           models.TypeWebinar,
		Price:               "Bezpłatne",
		IsFree:              true,
		MaxParticipants:     2000,
		CurrentParticipants: 780,
	},
	{
		ID:                  "fallback-3",
		Name:                "Konferencja Onkologia Praktyczna",
		Description:         "Standardy postępowania w onkologii klinicznej — sesje przypadków.",
		Date:                "2027-05-08",
		Time:                "10:00",
		Location:            "Kraków, ICE",
		LocationMode:        models.LocationInPerson,
		Category:            "Onkologia",
		EventType:           models.TypeConference,
		Price:               "350 zł",
		MaxParticipants:     600,
		CurrentParticipants: 190,
	},
	{
		ID:                  "fallback-4",
		Name:                "Webinar: Diabetologia — nowe technologie",
		Description:         "Systemy ciągłego monitorowania glikemii i pompy insulinowe w praktyce.",
		Date:                "2027-02-03",
		Time:                "17:30",
		Location:            "Online",
		LocationMode:        models.LocationOnline,
		Category:            "Diabetologia",
		EventType:           models.TypeWebinar,
		Price:               "Bezpłatne",
		IsFree:              true,
		MaxParticipants:     1500,
		CurrentParticipants: 310,
	},
}

// Fallback returns a fresh copy of the fixed fallback collection, so
// callers can never mutate the canonical records.
func Fallback() []models.Event {
	out := make([]models.Event, len(fallbackEvents))
	copy(out, fallbackEvents)
	return out
}
