// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package engine

import (
	"time"

	"github.com/dlamedica/dlamedicaplwebapp-sub007/internal/models"
)

// testNow anchors every date-sensitive test: today = 2024-03-01.
var testNow = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

// testEvents is a small mixed collection exercising every filter axis.
var testEvents = []models.Event{
	{
		ID:                  "e1",
		Name:                "Kongres Kardiologii Interwencyjnej",
		Description:         "Coroczne spotkanie kardiologów interwencyjnych",
		Date:                "2024-03-03",
		Time:                "09:00",
		Location:            "Warszawa",
		LocationMode:        models.LocationInPerson,
		Category:            "Kardiologia",
		EventType:           models.TypeConference,
		Price:               "Bilet od 299 zł",
		MaxParticipants:     500,
		CurrentParticipants: 320,
	},
	{
		ID:                  "e2",
		Name:                "Webinar: EKG w praktyce",
		Description:         "Interpretacja zapisu EKG dla lekarzy POZ",
		Date:                "2024-03-05",
		Time:                "18:00",
		Location:            "Online",
		LocationMode:        models.LocationOnline,
		Category:            "Kardiologia",
		EventType:           models.TypeWebinar,
		Price:               "Bezpłatne",
		IsFree:              true,
		MaxParticipants:     1000,
		CurrentParticipants: 640,
	},
	{
		ID:                  "e3",
		Name:                "Konferencja Onkologiczna",
		Description:         "Nowości w leczeniu systemowym nowotworów",
		Date:                "2024-04-15",
		Time:                "10:00",
		Location:            "Kraków",
		LocationMode:        models.LocationInPerson,
		Category:            "Onkologia",
		EventType:           models.TypeConference,
		Price:               "450 zł",
		MaxParticipants:     300,
		CurrentParticipants: 120,
	},
	{
		ID:                  "e4",
		Name:                "Szkolenie z resuscytacji",
		Description:         "Warsztaty ALS dla zespołów ratownictwa",
		Date:                "2024-02-20",
		Time:                "08:00",
		Location:            "Gdańsk",
		LocationMode:        models.LocationInPerson,
		Category:            "Medycyna ratunkowa",
		EventType:           models.TypeConference,
		Price:               "Udział darmowy",
		IsFree:              true,
		MaxParticipants:     40,
		CurrentParticipants: 40,
	},
	{
		ID:           "e5",
		Name:         "Webinar: Telemedycyna w POZ",
		Description:  "Organizacja teleporad i dokumentacja",
		Date:         "2024-06-10",
		Time:         "17:00",
		Location:     "Online",
		LocationMode: models.LocationOnline,
		Category:     "Organizacja ochrony zdrowia",
		EventType:    models.TypeWebinar,
		Price:        "???",
	},
	{
		ID:                  "e6",
		Name:                "Sympozjum Diabetologiczne",
		Description:         "Insulinoterapia i nowe technologie",
		Date:                "not-a-date",
		Time:                "12:00",
		Location:            "Poznań",
		LocationMode:        models.LocationInPerson,
		Category:            "Diabetologia",
		EventType:           models.TypeConference,
		Price:               "199 zł",
		MaxParticipants:     200,
		CurrentParticipants: 35,
	},
}

// ids projects a collection onto its identifiers for compact assertions.
func ids(events []models.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
