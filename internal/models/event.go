// DlaMedica Events - Event Discovery Engine for the dlamedica.pl portal
// Copyright 2026 DlaMedica
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dlamedica/dlamedicaplwebapp-sub007

package models

import "time"

// LocationMode distinguishes online from in-person events.
type LocationMode string

const (
	// LocationOnline marks events held remotely (webinars, streams).
	LocationOnline LocationMode = "online"
	// LocationInPerson marks events held at a physical venue.
	LocationInPerson LocationMode = "in-person"
)

// EventType classifies the format of an event. The set is extensible;
// conference and webinar are the types the portal currently publishes.
type EventType string

const (
	TypeConference EventType = "conference"
	TypeWebinar    EventType = "webinar"
)

// DateLayout is the wire format for Event.Date.
const DateLayout = "2006-01-02"

// Event is the immutable unit processed by the discovery engine.
//
// Records are fetched once per browsing session and held in memory; the
// engine never mutates a record, only derives new collections from it.
// Date and Time stay in their wire form: the backing CMS delivers them as
// plain strings and no timezone is modeled. Date ordering is the primary
// event ordering, with ties broken by the Time string lexically.
//
// Price is a display string that may encode "free" or a numeric amount
// with currency noise ("Bilet od 299 zł"). IsFree is the derived flag:
// when set, the numeric price is 0 regardless of the text.
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Date is the calendar date in DateLayout form ("2024-03-01").
	Date string `json:"date"`
	// Time is the local clock time ("18:00"). Compared lexically.
	Time string `json:"time"`

	Location     string       `json:"location"`
	LocationMode LocationMode `json:"locationMode"`

	Category  string    `json:"category"`
	EventType EventType `json:"eventType"`

	Price  string `json:"price"`
	IsFree bool   `json:"isFree"`

	// Participant counts are optional; zero means absent. Violations of
	// CurrentParticipants <= MaxParticipants are tolerated, not rejected.
	MaxParticipants     int `json:"maxParticipants,omitempty"`
	CurrentParticipants int `json:"currentParticipants,omitempty"`
}

// Day parses the event's calendar date with the time of day zeroed in loc.
// The second return value is false when the date does not parse; callers
// must then classify the event as far future (it is never "past" and never
// satisfies a constrained date window).
func (e Event) Day(loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, e.Date, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
